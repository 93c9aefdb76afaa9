package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewdeck_backend/internal/auth"
	"reviewdeck_backend/internal/middleware"
	"reviewdeck_backend/internal/services/dto"
	"reviewdeck_backend/internal/widgetconfig"
)

// ConfigHandler serves the stateless configuration authoring helpers used by
// the widget editor: dry-run normalization, template presets and the
// baseline document.
type ConfigHandler struct {
	*BaseHandler
}

func NewConfigHandler(base *BaseHandler) *ConfigHandler {
	return &ConfigHandler{BaseHandler: base}
}

func (h *ConfigHandler) RegisterRoutes(r *gin.RouterGroup) {
	configs := r.Group("/widget-configs")
	configs.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.ActionWidgetsRead))
	{
		configs.POST("/normalize", h.NormalizeConfig)
		configs.GET("/default", h.DefaultConfig)
		configs.GET("/templates", h.ListTemplates)
	}
}

// NormalizeConfig runs the editor's draft through the normalizer without
// persisting anything, so the UI can preview the canonical result.
func (h *ConfigHandler) NormalizeConfig(c *gin.Context) {
	var req dto.NormalizeConfigRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, widgetconfig.NormalizeJSON(req.Config))
}

// DefaultConfig returns the baseline document, or a template preset when
// ?template= names one. Unknown template names fall back to the baseline.
func (h *ConfigHandler) DefaultConfig(c *gin.Context) {
	c.JSON(http.StatusOK, widgetconfig.CreateDefault(c.Query("template")))
}

func (h *ConfigHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, dto.TemplateListResponse{Templates: widgetconfig.TemplateNames()})
}
