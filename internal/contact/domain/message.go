package domain

import "errors"

// Validation errors
var (
	ErrMissingName    = errors.New("name is required")
	ErrMissingEmail   = errors.New("email is required")
	ErrMissingPhone   = errors.New("phone number is required")
	ErrMissingMessage = errors.New("message is required")
)

// ContactMessage is a visitor-submitted message. It is transient: it exists
// only for the duration of one notification send and is never persisted.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Validate checks that every field is present.
func (m ContactMessage) Validate() error {
	if m.Name == "" {
		return ErrMissingName
	}
	if m.Email == "" {
		return ErrMissingEmail
	}
	if m.Phone == "" {
		return ErrMissingPhone
	}
	if m.Message == "" {
		return ErrMissingMessage
	}
	return nil
}
