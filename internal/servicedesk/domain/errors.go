package domain

import (
	"errors"
	"strings"
)

var (
	ErrDeviceNotFound   = errors.New("device not found")
	ErrDuplicateSerial  = errors.New("serial number already registered")
	ErrWarrantyNotFound = errors.New("warranty not found")
	ErrTicketNotFound   = errors.New("repair ticket not found")
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors carries every field rejected by a Validate method.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e ValidationErrors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func required(errs *ValidationErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		*errs = append(*errs, FieldError{Field: field, Message: "Required"})
	}
}

// Customer is the contact attached to devices and repair tickets.
type Customer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}
