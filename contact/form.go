// Package contact validates contact-form messages and relays them through
// EmailJS.
package contact

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailPattern matches something@something.something with no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form is a contact message.
type Form struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"notblank,loose_email"`
	Message string `json:"message" validate:"notblank"`
}

// Field names used as FieldErrors keys.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// FieldErrors maps a field name to its user-facing message. At most one
// message is kept per field.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	var parts []string
	for _, f := range []string{FieldName, FieldEmail, FieldMessage} {
		if msg, ok := e[f]; ok {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, "; ")
}

var messages = map[string]map[string]string{
	"Name":    {"notblank": "Name is required"},
	"Email":   {"notblank": "Email is required", "loose_email": "Please enter a valid email"},
	"Message": {"notblank": "Message is required"},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks the form. It returns nil or a FieldErrors.
func (f Form) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		key := strings.ToLower(fe.StructField())
		if _, seen := out[key]; seen {
			continue
		}
		out[key] = messages[fe.StructField()][fe.Tag()]
	}
	return out
}
