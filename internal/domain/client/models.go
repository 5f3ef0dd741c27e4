package client

import (
	"errors"

	"bankfront/internal/shared/validation"
)

// Domain errors
var (
	ErrClientNotFound = errors.New("client not found")
	ErrInvalidInput   = errors.New("invalid input")
)

// Client is a bank customer. IDs are assigned by the store and never change.
type Client struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

// CreateParams contains parameters for creating a new client
type CreateParams struct {
	Name  string `json:"name" validate:"notblank,min=3,max=50"`
	Email string `json:"email" validate:"notblank,email"`
}

var fieldMessages = map[string]string{
	"name.notblank":  "Name is required.",
	"name.min":       "Name must be between 3 and 50 characters.",
	"name.max":       "Name must be between 3 and 50 characters.",
	"email.notblank": "Email is required.",
	"email.email":    "Invalid email format.",
}

// Validate applies the server-side rules. Failures come back as
// validation.FieldErrors keyed by JSON field name.
func (p CreateParams) Validate() error {
	return validation.Check(p, validation.Messages(fieldMessages))
}
