package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is known but not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrTooManyRequests indicates the caller exhausted an attempt budget.
var ErrTooManyRequests = errors.New("too many requests")

// ErrUpstream indicates a dependency outside the database failed (mail, file storage).
var ErrUpstream = errors.New("upstream failure")

// ErrInternal is the catch-all kind for unexpected failures.
var ErrInternal = errors.New("internal error")

// AppError carries the HTTP status, a message that is safe to show to clients
// and the underlying cause, which is only ever logged.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
	Kind    error  `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the cause to errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel kind so callers can use errors.Is(err, ErrNotFound).
func (e *AppError) Is(target error) bool {
	return e.Kind != nil && e.Kind == target
}

// NewAppError builds an AppError and derives its kind from the status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Kind: kindForStatus(code), Err: err}
}

func kindForStatus(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrValidation
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrDuplicate
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusBadGateway, http.StatusGatewayTimeout:
		return ErrUpstream
	default:
		return ErrInternal
	}
}

// NewValidationError reports input that failed a validation rule.
func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, nil)
}

// NewConflictError reports a uniqueness violation.
func NewConflictError(message string, err error) *AppError {
	return NewAppError(http.StatusConflict, message, err)
}

// NewUnauthorizedError reports bad or missing credentials.
func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, nil)
}

// NewForbiddenError reports an authenticated caller that is not allowed to act.
func NewForbiddenError(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, nil)
}

// NewNotFoundError reports a missing resource.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, nil)
}

// NewTooManyRequestsError reports an exhausted attempt budget.
func NewTooManyRequestsError(message string) *AppError {
	return NewAppError(http.StatusTooManyRequests, message, nil)
}

// NewUpstreamError reports a failed dependency. The client sees a 500.
func NewUpstreamError(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Kind: ErrUpstream, Err: err}
}

// NewInternalServerError reports an unexpected failure.
func NewInternalServerError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, message, nil)
}

// Wrap attaches a cause to an existing AppError without changing what the client sees.
func Wrap(appErr *AppError, err error) *AppError {
	clone := *appErr
	clone.Err = err
	return &clone
}

// As extracts the first AppError in the chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is, or wraps, a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
