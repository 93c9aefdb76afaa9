package handlers

import (
	"github.com/gin-gonic/gin"

	"reviewdeck_backend/internal/appErrors"
	"reviewdeck_backend/internal/logger"
	"reviewdeck_backend/internal/middleware"
	"reviewdeck_backend/internal/validator"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidate_JSON binds the body and runs the platform's validation
// rules. It writes the error response itself and reports success.
func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.Warn("failed to bind request body", "path", c.Request.URL.Path, "error", err)
		appErrors.HandleError(c, appErrors.ValidationError("invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.Warn("validation failed", "path", c.Request.URL.Path, "errors", vErr.Errors)
			appErrors.HandleError(c, appErrors.ValidationError(vErr.Errors))
		} else {
			logger.Error("validator failure", "path", c.Request.URL.Path, "error", err)
			appErrors.HandleError(c, appErrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	var appErr *appErrors.AppError
	if appErrors.As(err, &appErr) {
		logger.Warn("service error",
			"code", appErr.Code,
			"message", appErr.Message,
			"path", c.Request.URL.Path,
		)
		appErrors.HandleError(c, appErr)
		return
	}
	logger.Error("unexpected service error", "path", c.Request.URL.Path, "error", err)
	appErrors.HandleError(c, appErrors.InternalError(err))
}

// GetAndAuthorizeCompanyID pulls the caller's company from the auth claims.
// Every admin operation is scoped by it.
func (h *BaseHandler) GetAndAuthorizeCompanyID(c *gin.Context) (string, bool) {
	companyID := middleware.GetCompanyID(c)
	if companyID == "" {
		logger.Warn("unauthorized access: company not in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		appErrors.HandleError(c, appErrors.Unauthorized("user not authenticated"))
		return "", false
	}
	return companyID, true
}
