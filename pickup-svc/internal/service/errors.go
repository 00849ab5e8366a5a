package service

import "errors"

var (
	ErrInvalidCredentials  = errors.New("Invalid credentials")
	ErrEmailExists         = errors.New("Email already exists")
	ErrForbidden           = errors.New("forbidden")
	ErrDeliveryUnavailable = errors.New("Delivery not available")
	ErrIncompleteMenu      = errors.New("menuItems and restaurants must be sent together")

	// ErrSMSNotConfigured means no SMS provider credentials are deployed.
	ErrSMSNotConfigured   = errors.New("SMS function is not deployed")
	ErrInvalidPhoneNumber = errors.New("Invalid phone number")
)

// ValidationError carries a message meant to be shown to the customer as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

// ForbiddenError narrows ErrForbidden with a role specific message.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
