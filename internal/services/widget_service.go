package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"reviewdeck_backend/internal/appErrors"
	"reviewdeck_backend/internal/email"
	"reviewdeck_backend/internal/logger"
	"reviewdeck_backend/internal/models"
	"reviewdeck_backend/internal/repositories"
	"reviewdeck_backend/internal/services/dto"
	"reviewdeck_backend/internal/widgetconfig"
)

type WidgetService interface {
	CreateWidget(ctx context.Context, companyID string, req *dto.CreateWidgetRequest) (*dto.WidgetResponse, error)
	GetWidget(ctx context.Context, companyID, widgetID string) (*dto.WidgetResponse, error)
	ListWidgets(ctx context.Context, companyID string) (*dto.WidgetListResponse, error)
	UpdateWidget(ctx context.Context, companyID, widgetID string, req *dto.UpdateWidgetRequest) (*dto.WidgetResponse, error)
	UpdateWidgetConfig(ctx context.Context, companyID, widgetID string, rawConfig []byte) (*dto.WidgetResponse, error)
	PublishWidget(ctx context.Context, companyID, widgetID string) (*dto.WidgetResponse, error)
	UnpublishWidget(ctx context.Context, companyID, widgetID string) (*dto.WidgetResponse, error)
	DeleteWidget(ctx context.Context, companyID, widgetID string) error
}

type widgetService struct {
	db         *gorm.DB
	widgetRepo repositories.WidgetRepository
	emailer    email.Provider
}

func NewWidgetService(db *gorm.DB, widgetRepo repositories.WidgetRepository, emailer email.Provider) WidgetService {
	return &widgetService{
		db:         db,
		widgetRepo: widgetRepo,
		emailer:    emailer,
	}
}

func (s *widgetService) CreateWidget(ctx context.Context, companyID string, req *dto.CreateWidgetRequest) (*dto.WidgetResponse, error) {
	db := s.db.WithContext(ctx)

	doc := widgetconfig.CreateDefault(req.Template)
	if req.Type != "" {
		doc.Layout.Type = widgetconfig.LayoutType(req.Type)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	widget := &models.Widget{
		CompanyID: companyID,
		Name:      req.Name,
		Type:      string(doc.Layout.Type),
		Status:    models.WidgetStatusDraft,
		Config:    datatypes.JSON(raw),
	}
	if err := s.widgetRepo.CreateWidget(db, widget); err != nil {
		return nil, mapRepoError(err)
	}
	return buildWidgetResponse(widget), nil
}

func (s *widgetService) GetWidget(ctx context.Context, companyID, widgetID string) (*dto.WidgetResponse, error) {
	widget, err := s.ownedWidget(ctx, companyID, widgetID)
	if err != nil {
		return nil, err
	}
	return buildWidgetResponse(widget), nil
}

func (s *widgetService) ListWidgets(ctx context.Context, companyID string) (*dto.WidgetListResponse, error) {
	db := s.db.WithContext(ctx)

	widgets, err := s.widgetRepo.FindWidgetsByCompany(db, companyID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	total, err := s.widgetRepo.CountWidgetsByCompany(db, companyID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	out := make([]*dto.WidgetResponse, len(widgets))
	for i := range widgets {
		out[i] = buildWidgetResponse(&widgets[i])
	}
	return &dto.WidgetListResponse{Widgets: out, Total: total}, nil
}

func (s *widgetService) UpdateWidget(ctx context.Context, companyID, widgetID string, req *dto.UpdateWidgetRequest) (*dto.WidgetResponse, error) {
	widget, err := s.ownedWidget(ctx, companyID, widgetID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Type != nil {
		fields["type"] = *req.Type
		// Keep the config's layout kind in step with the widget type.
		doc := widgetconfig.NormalizeJSON(widget.Config)
		doc.Layout.Type = widgetconfig.LayoutType(*req.Type)
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		fields["config"] = datatypes.JSON(raw)
	}
	if len(fields) == 0 {
		return buildWidgetResponse(widget), nil
	}

	db := s.db.WithContext(ctx)
	if err := s.widgetRepo.UpdateWidgetFields(db, widgetID, fields); err != nil {
		return nil, mapRepoError(err)
	}
	widget, err = s.widgetRepo.FindWidgetByID(db, widgetID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return buildWidgetResponse(widget), nil
}

func (s *widgetService) UpdateWidgetConfig(ctx context.Context, companyID, widgetID string, rawConfig []byte) (*dto.WidgetResponse, error) {
	if _, err := s.ownedWidget(ctx, companyID, widgetID); err != nil {
		return nil, err
	}

	// Authoring input is corrected, never rejected.
	doc := widgetconfig.NormalizeJSON(rawConfig)
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	db := s.db.WithContext(ctx)
	fields := map[string]interface{}{
		"config": datatypes.JSON(raw),
		"type":   string(doc.Layout.Type),
	}
	if err := s.widgetRepo.UpdateWidgetFields(db, widgetID, fields); err != nil {
		return nil, mapRepoError(err)
	}
	widget, err := s.widgetRepo.FindWidgetByID(db, widgetID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return buildWidgetResponse(widget), nil
}

func (s *widgetService) PublishWidget(ctx context.Context, companyID, widgetID string) (*dto.WidgetResponse, error) {
	widget, err := s.ownedWidget(ctx, companyID, widgetID)
	if err != nil {
		return nil, err
	}
	if widget.IsPublished() {
		return nil, appErrors.AlreadyPublished()
	}

	fields := map[string]interface{}{"status": models.WidgetStatusPublished}
	if widget.PublishedAt == nil {
		// First publication only; later republishes keep the original time.
		fields["published_at"] = time.Now()
	}

	db := s.db.WithContext(ctx)
	if err := s.widgetRepo.UpdateWidgetFields(db, widgetID, fields); err != nil {
		return nil, mapRepoError(err)
	}
	widget, err = s.widgetRepo.FindWidgetByID(db, widgetID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	s.notifyPublished(ctx, widget)

	return buildWidgetResponse(widget), nil
}

func (s *widgetService) UnpublishWidget(ctx context.Context, companyID, widgetID string) (*dto.WidgetResponse, error) {
	widget, err := s.ownedWidget(ctx, companyID, widgetID)
	if err != nil {
		return nil, err
	}
	if !widget.IsPublished() {
		return nil, appErrors.NotPublished()
	}

	db := s.db.WithContext(ctx)
	// published_at stays; it records the first publication.
	fields := map[string]interface{}{"status": models.WidgetStatusDraft}
	if err := s.widgetRepo.UpdateWidgetFields(db, widgetID, fields); err != nil {
		return nil, mapRepoError(err)
	}
	widget, err = s.widgetRepo.FindWidgetByID(db, widgetID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return buildWidgetResponse(widget), nil
}

func (s *widgetService) DeleteWidget(ctx context.Context, companyID, widgetID string) error {
	if _, err := s.ownedWidget(ctx, companyID, widgetID); err != nil {
		return err
	}
	if err := s.widgetRepo.DeleteWidget(s.db.WithContext(ctx), widgetID); err != nil {
		return mapRepoError(err)
	}
	return nil
}

// ownedWidget loads a widget and checks company ownership. A widget owned by
// another company reads as not found.
func (s *widgetService) ownedWidget(ctx context.Context, companyID, widgetID string) (*models.Widget, error) {
	widget, err := s.widgetRepo.FindWidgetByID(s.db.WithContext(ctx), widgetID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if widget.CompanyID != companyID {
		return nil, appErrors.WidgetNotFound()
	}
	return widget, nil
}

// notifyPublished emails the company contact, best effort.
func (s *widgetService) notifyPublished(ctx context.Context, widget *models.Widget) {
	company, err := s.widgetRepo.FindCompanyByID(s.db.WithContext(ctx), widget.CompanyID)
	if err != nil {
		logger.Warn("publish notification skipped", "widget_id", widget.ID, "error", err)
		return
	}
	go func() {
		subject := fmt.Sprintf("Your widget %q is live", widget.Name)
		body := fmt.Sprintf("<p>The review widget <b>%s</b> is now published and serving its embed payload.</p>", widget.Name)
		if err := s.emailer.Send(company.ContactEmail, subject, body); err != nil {
			logger.Warn("publish notification failed", "widget_id", widget.ID, "error", err)
		}
	}()
}

func buildWidgetResponse(w *models.Widget) *dto.WidgetResponse {
	resp := &dto.WidgetResponse{
		ID:          w.ID,
		CompanyID:   w.CompanyID,
		Name:        w.Name,
		Type:        w.Type,
		Status:      string(w.Status),
		PublishedAt: w.PublishedAt,
		Config:      widgetconfig.NormalizeJSON(w.Config),
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
	if w.Summary != nil {
		resp.Summary = &dto.SummaryResponse{
			AvgRating:    w.Summary.AvgRating,
			TotalReviews: w.Summary.TotalReviews,
			LastSyncedAt: w.Summary.LastSyncedAt,
		}
	}
	return resp
}
