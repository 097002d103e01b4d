package apperror

// ErrorCode is the general system-level error category.
type ErrorCode string

const (
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeUnavailable      ErrorCode = "UNAVAILABLE"
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// BusinessCode names the specific business reason behind an error.
type BusinessCode string

const (
	BusinessCodeGeneral            BusinessCode = "GENERAL"
	BusinessCodePostNotFound       BusinessCode = "POST_NOT_FOUND"
	BusinessCodeDuplicateTitle     BusinessCode = "DUPLICATE_TITLE"
	BusinessCodeInvalidPostData    BusinessCode = "INVALID_POST_DATA"
	BusinessCodeInvalidContactData BusinessCode = "INVALID_CONTACT_DATA"
	BusinessCodeNotificationFailed BusinessCode = "NOTIFICATION_FAILED"
)
