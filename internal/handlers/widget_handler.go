package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewdeck_backend/internal/auth"
	"reviewdeck_backend/internal/middleware"
	"reviewdeck_backend/internal/services"
	"reviewdeck_backend/internal/services/dto"
)

type WidgetHandler struct {
	*BaseHandler
	widgetService services.WidgetService
}

func NewWidgetHandler(base *BaseHandler, widgetService services.WidgetService) *WidgetHandler {
	return &WidgetHandler{
		BaseHandler:   base,
		widgetService: widgetService,
	}
}

func (h *WidgetHandler) RegisterRoutes(r *gin.RouterGroup) {
	widgets := r.Group("/widgets")
	widgets.Use(middleware.AuthMiddleware())
	{
		read := widgets.Group("")
		read.Use(middleware.RequirePermission(auth.ActionWidgetsRead))
		{
			read.GET("", h.ListWidgets)
			read.GET("/:widgetId", h.GetWidget)
		}

		write := widgets.Group("")
		write.Use(middleware.RequirePermission(auth.ActionWidgetsWrite))
		{
			write.POST("", h.CreateWidget)
			write.PUT("/:widgetId", h.UpdateWidget)
			write.PUT("/:widgetId/config", h.UpdateWidgetConfig)
			write.DELETE("/:widgetId", h.DeleteWidget)
		}

		publish := widgets.Group("")
		publish.Use(middleware.RequirePermission(auth.ActionWidgetsPublish))
		{
			publish.POST("/:widgetId/publish", h.PublishWidget)
			publish.POST("/:widgetId/unpublish", h.UnpublishWidget)
		}
	}
}

// CreateWidget godoc
// @Summary Create a widget
// @Description Creates a draft widget with a default or template-based configuration
// @Tags widgets
// @Accept json
// @Produce json
// @Param widget body dto.CreateWidgetRequest true "Widget attributes"
// @Success 201 {object} dto.WidgetResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /widgets [post]
func (h *WidgetHandler) CreateWidget(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeCompanyID(c)
	if !ok {
		return
	}

	var req dto.CreateWidgetRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	widget, err := h.widgetService.CreateWidget(c.Request.Context(), companyID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, widget)
}

// ListWidgets godoc
// @Summary List the company's widgets
// @Tags widgets
// @Produce json
// @Success 200 {object} dto.WidgetListResponse
// @Security BearerAuth
// @Router /widgets [get]
func (h *WidgetHandler) ListWidgets(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeCompanyID(c)
	if !ok {
		return
	}

	list, err := h.widgetService.ListWidgets(c.Request.Context(), companyID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetWidget godoc
// @Summary Get one widget
// @Tags widgets
// @Produce json
// @Param widgetId path string true "Widget ID"
// @Success 200 {object} dto.WidgetResponse
// @Failure 404 {object} models.ErrorResponse "Widget not found"
// @Security BearerAuth
// @Router /widgets/{widgetId} [get]
func (h *WidgetHandler) GetWidget(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeCompanyID(c)
	if !ok {
		return
	}

	widget, err := h.widgetService.GetWidget(c.Request.Context(), companyID, c.Param("widgetId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, widget)
}

// UpdateWidget godoc
// @Summary Update widget attributes
// @Description Renames the widget or changes its type; a type change is mirrored into the config
// @Tags widgets
// @Accept json
// @Produce json
// @Param widgetId path string true "Widget ID"
// @Param widget body dto.UpdateWidgetRequest true "Fields to change"
// @Success 200 {object} dto.WidgetResponse
// @Failure 404 {object} models.ErrorResponse "Widget not found"
// @Security BearerAuth
// @Router /widgets/{widgetId} [put]
func (h *WidgetHandler) UpdateWidget(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeCompanyID(c)
	if !ok {
		return
	}

	var req dto.UpdateWidgetRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	widget, err := h.widgetService.UpdateWidget(c.Request.Context(), companyID, c.Param("widgetId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, widget)
}

// UpdateWidgetConfig godoc
// @Summary Replace the widget configuration
// @Description The submitted config is normalized field by field; invalid values fall back to defaults instead of failing the request
// @Tags widgets
// @Accept json
// @Produce json
// @Param widgetId path string true "Widget ID"
// @Param config body dto.UpdateWidgetConfigRequest true "Raw configuration document"
// @Success 200 {object} dto.WidgetResponse
// @Failure 404 {object} models.ErrorResponse "Widget not found"
// @Security BearerAuth
// @Router /widgets/{widgetId}/config [put]
func (h *WidgetHandler) UpdateWidgetConfig(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeCompanyID(c)
	if !ok {
		return
	}

	var req dto.UpdateWidgetConfigRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	widget, err := h.widgetService.UpdateWidgetConfig(c.Request.Context(), companyID, c.Param("widgetId"), req.Config)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, widget)
}

// PublishWidget godoc
// @Summary Publish a widget
// @Tags widgets
// @Produce json
// @Param widgetId path string true "Widget ID"
// @Success 200 {object} dto.WidgetResponse
// @Failure 404 {object} models.ErrorResponse "Widget not found"
// @Failure 409 {object} models.ErrorResponse "Widget is already published"
// @Security BearerAuth
// @Router /widgets/{widgetId}/publish [post]
func (h *WidgetHandler) PublishWidget(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeCompanyID(c)
	if !ok {
		return
	}

	widget, err := h.widgetService.PublishWidget(c.Request.Context(), companyID, c.Param("widgetId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, widget)
}

// UnpublishWidget godoc
// @Summary Unpublish a widget
// @Description Takes the widget back to draft; the first publication timestamp is kept
// @Tags widgets
// @Produce json
// @Param widgetId path string true "Widget ID"
// @Success 200 {object} dto.WidgetResponse
// @Failure 404 {object} models.ErrorResponse "Widget not found"
// @Failure 409 {object} models.ErrorResponse "Widget is not published"
// @Security BearerAuth
// @Router /widgets/{widgetId}/unpublish [post]
func (h *WidgetHandler) UnpublishWidget(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeCompanyID(c)
	if !ok {
		return
	}

	widget, err := h.widgetService.UnpublishWidget(c.Request.Context(), companyID, c.Param("widgetId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, widget)
}

// DeleteWidget godoc
// @Summary Delete a widget
// @Description Removes the widget with its locations, overrides and summary
// @Tags widgets
// @Param widgetId path string true "Widget ID"
// @Success 204 "No content"
// @Failure 404 {object} models.ErrorResponse "Widget not found"
// @Security BearerAuth
// @Router /widgets/{widgetId} [delete]
func (h *WidgetHandler) DeleteWidget(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeCompanyID(c)
	if !ok {
		return
	}

	if err := h.widgetService.DeleteWidget(c.Request.Context(), companyID, c.Param("widgetId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
