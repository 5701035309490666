package booking

import "fmt"

// Error codes surfaced to handlers for status mapping.
const (
	CodeValidation = "validationError"
	CodeNotFound   = "notFound"
	CodeConflict   = "conflict"
	CodeState      = "stateError"
	CodeGateway    = "gatewayError"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &BookingError{Code: CodeValidation, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &BookingError{Code: CodeNotFound, Message: msg}
}

func NewConflictError(msg string) error {
	return &BookingError{Code: CodeConflict, Message: msg}
}

func NewStateError(msg string) error {
	return &BookingError{Code: CodeState, Message: msg}
}

func NewGatewayError(msg string) error {
	return &BookingError{Code: CodeGateway, Message: msg}
}
