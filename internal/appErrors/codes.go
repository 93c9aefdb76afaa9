package appErrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Resources. Absent and unpublished widgets share one code so the
	// embed boundary never reveals draft existence.
	CodeWidgetNotFound   ErrorCode = "WIDGET_NOT_FOUND"
	CodeLocationNotFound ErrorCode = "LOCATION_NOT_FOUND"
	CodeReviewNotFound   ErrorCode = "REVIEW_NOT_FOUND"
	CodeOverrideNotFound ErrorCode = "OVERRIDE_NOT_FOUND"
	CodeSummaryNotFound  ErrorCode = "SUMMARY_NOT_FOUND"

	// Business logic
	CodeDuplicateLocation ErrorCode = "DUPLICATE_LOCATION"
	CodeAlreadyPublished  ErrorCode = "ALREADY_PUBLISHED"
	CodeNotPublished      ErrorCode = "NOT_PUBLISHED"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
