package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewdeck_backend/internal/appErrors"
	"reviewdeck_backend/internal/models"
)

func TestRefresh_WritesComputedAggregate(t *testing.T) {
	widgets := newFakeWidgetRepo()
	widgets.widgets["w1"] = &models.Widget{
		BaseModel: models.BaseModel{ID: "w1"},
		CompanyID: "c1",
		Status:    models.WidgetStatusDraft,
	}
	summaries := &fakeSummaryRepo{avgRating: 4.25, totalReviews: 12}
	svc := NewSummaryService(newTestDB(), widgets, summaries)

	// Drafts refresh too; only payload reads are gated on publication.
	resp, err := svc.Refresh(context.Background(), "w1")
	require.NoError(t, err)

	assert.Equal(t, 4.25, resp.AvgRating)
	assert.Equal(t, int64(12), resp.TotalReviews)
	assert.False(t, resp.LastSyncedAt.IsZero())

	require.NotNil(t, summaries.upserted)
	assert.Equal(t, "w1", summaries.upserted.WidgetID)
	assert.Equal(t, 4.25, summaries.upserted.AvgRating)
}

func TestRefresh_UnknownWidget(t *testing.T) {
	svc := NewSummaryService(newTestDB(), newFakeWidgetRepo(), &fakeSummaryRepo{})

	_, err := svc.Refresh(context.Background(), "missing")
	var appErr *appErrors.AppError
	require.True(t, appErrors.As(err, &appErr))
	assert.Equal(t, appErrors.CodeWidgetNotFound, appErr.Code)
}

func TestRefresh_EmptyWidgetZeroesOut(t *testing.T) {
	widgets := newFakeWidgetRepo()
	widgets.widgets["w1"] = &models.Widget{BaseModel: models.BaseModel{ID: "w1"}, CompanyID: "c1"}
	summaries := &fakeSummaryRepo{}
	svc := NewSummaryService(newTestDB(), widgets, summaries)

	resp, err := svc.Refresh(context.Background(), "w1")
	require.NoError(t, err)

	assert.Zero(t, resp.AvgRating)
	assert.Zero(t, resp.TotalReviews)
}
