package appErrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

type ErrorCode string

// AppError is the application error shape carried from services to handlers.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func As(err error, target **AppError) bool {
	return stderrors.As(err, target)
}

// --- common constructors ---

func WidgetNotFound() *AppError {
	return New(CodeWidgetNotFound, "widget not found", http.StatusNotFound)
}

func LocationNotFound() *AppError {
	return New(CodeLocationNotFound, "location not found", http.StatusNotFound)
}

func ReviewNotFound() *AppError {
	return New(CodeReviewNotFound, "review not found", http.StatusNotFound)
}

func OverrideNotFound() *AppError {
	return New(CodeOverrideNotFound, "override not found", http.StatusNotFound)
}

func DuplicateLocation() *AppError {
	return New(CodeDuplicateLocation, "this place is already linked to the widget", http.StatusConflict)
}

func AlreadyPublished() *AppError {
	return New(CodeAlreadyPublished, "widget is already published", http.StatusConflict)
}

func NotPublished() *AppError {
	return New(CodeNotPublished, "widget is not published", http.StatusConflict)
}

func ValidationError(details interface{}) *AppError {
	return &AppError{
		Code:     CodeValidationFailed,
		Message:  "validation failed",
		Details:  details,
		HTTPCode: http.StatusBadRequest,
	}
}

func Unauthorized(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func Forbidden(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

// DatabaseError wraps a storage failure. The core never retries; the error
// propagates to the caller unchanged.
func DatabaseError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "storage operation failed", http.StatusInternalServerError)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "internal server error", http.StatusInternalServerError)
}
