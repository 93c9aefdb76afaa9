package appErrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes the error as a JSON response. Internal details are
// stripped from 5xx responses so embedding pages never see them.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	out := appErr
	if appErr.HTTPCode >= http.StatusInternalServerError {
		out = New(appErr.Code, appErr.Message, appErr.HTTPCode)
	}

	c.JSON(out.HTTPCode, ErrorResponse{Error: out})
}
