package utils

// Error codes returned in the JSON error envelope.
const (
	CodeAnalysisError = "ANALYSIS_ERROR"
	CodeFileTooLarge  = "FILE_TOO_LARGE"
	CodeNotFound      = "NOT_FOUND"
	CodeInternalError = "INTERNAL_ERROR"
)

// AppError carries the HTTP status and user-facing message for a failed request.
// The message is always safe to show to the caller.
type AppError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewBadRequestError(message string) *AppError {
	return &AppError{StatusCode: 400, Message: message}
}

func NewRequestTooLargeError(message string) *AppError {
	return &AppError{StatusCode: 413, Message: message, Code: CodeFileTooLarge}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{StatusCode: 404, Message: message, Code: CodeNotFound}
}

func NewAnalysisError(message string) *AppError {
	return &AppError{StatusCode: 500, Message: message, Code: CodeAnalysisError}
}

func NewInternalError(message string) *AppError {
	return &AppError{StatusCode: 500, Message: message, Code: CodeInternalError}
}
