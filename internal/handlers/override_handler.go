package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewdeck_backend/internal/auth"
	"reviewdeck_backend/internal/middleware"
	"reviewdeck_backend/internal/services"
	"reviewdeck_backend/internal/services/dto"
)

// OverrideHandler exposes per-review moderation. The raw imported review is
// never edited; the override sits alongside it.
type OverrideHandler struct {
	*BaseHandler
	overrideService services.OverrideService
}

func NewOverrideHandler(base *BaseHandler, overrideService services.OverrideService) *OverrideHandler {
	return &OverrideHandler{
		BaseHandler:     base,
		overrideService: overrideService,
	}
}

func (h *OverrideHandler) RegisterRoutes(r *gin.RouterGroup) {
	overrides := r.Group("/reviews/:reviewId/override")
	overrides.Use(middleware.AuthMiddleware())
	{
		overrides.GET("", middleware.RequirePermission(auth.ActionWidgetsRead), h.GetOverride)

		write := overrides.Group("")
		write.Use(middleware.RequirePermission(auth.ActionOverridesWrite))
		{
			write.PUT("", h.PutOverride)
			write.DELETE("", h.ClearOverride)
		}
	}
}

func (h *OverrideHandler) PutOverride(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeCompanyID(c)
	if !ok {
		return
	}

	var req dto.PutOverrideRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	override, err := h.overrideService.PutOverride(c.Request.Context(), companyID, c.Param("reviewId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, override)
}

func (h *OverrideHandler) GetOverride(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeCompanyID(c)
	if !ok {
		return
	}

	override, err := h.overrideService.GetOverride(c.Request.Context(), companyID, c.Param("reviewId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, override)
}

func (h *OverrideHandler) ClearOverride(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeCompanyID(c)
	if !ok {
		return
	}

	if err := h.overrideService.ClearOverride(c.Request.Context(), companyID, c.Param("reviewId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
