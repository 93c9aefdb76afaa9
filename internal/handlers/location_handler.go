package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewdeck_backend/internal/auth"
	"reviewdeck_backend/internal/middleware"
	"reviewdeck_backend/internal/services"
	"reviewdeck_backend/internal/services/dto"
)

type LocationHandler struct {
	*BaseHandler
	locationService services.LocationService
}

func NewLocationHandler(base *BaseHandler, locationService services.LocationService) *LocationHandler {
	return &LocationHandler{
		BaseHandler:     base,
		locationService: locationService,
	}
}

func (h *LocationHandler) RegisterRoutes(r *gin.RouterGroup) {
	byWidget := r.Group("/widgets/:widgetId/locations")
	byWidget.Use(middleware.AuthMiddleware())
	{
		byWidget.GET("", middleware.RequirePermission(auth.ActionWidgetsRead), h.ListLocations)
		byWidget.POST("", middleware.RequirePermission(auth.ActionWidgetsWrite), h.AddLocation)
	}

	locations := r.Group("/locations")
	locations.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.ActionWidgetsWrite))
	{
		locations.PUT("/:locationId", h.UpdateLocation)
		locations.DELETE("/:locationId", h.DeleteLocation)
	}
}

func (h *LocationHandler) AddLocation(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeCompanyID(c)
	if !ok {
		return
	}

	var req dto.AddLocationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	location, err := h.locationService.AddLocation(c.Request.Context(), companyID, c.Param("widgetId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, location)
}

func (h *LocationHandler) ListLocations(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeCompanyID(c)
	if !ok {
		return
	}

	list, err := h.locationService.ListLocations(c.Request.Context(), companyID, c.Param("widgetId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeCompanyID(c)
	if !ok {
		return
	}

	var req dto.UpdateLocationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	location, err := h.locationService.UpdateLocation(c.Request.Context(), companyID, c.Param("locationId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeCompanyID(c)
	if !ok {
		return
	}

	if err := h.locationService.DeleteLocation(c.Request.Context(), companyID, c.Param("locationId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
