package validator

import "github.com/fiscalmx/validacion/pkg/email"

// ValidEmail validates that a string is a bare email address.
// Display names, angle brackets and trailing dots are rejected.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return email.Validate(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
