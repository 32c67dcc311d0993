package validator

import "github.com/fiscalmx/validacion/pkg/rfc"

// ValidRFC validates the structure and check digit of an RFC.
// Generic RFCs are accepted unless rfc.RejectGeneric is passed.
func ValidRFC(field, value string, opts ...rfc.Option) Rule {
	return Rule{
		Check: func() bool {
			return rfc.Validate(value, opts...).Valid()
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid RFC",
			TranslationKey: "validation.rfc",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidPhysicalRFC validates that value is a valid RFC of an individual.
func ValidPhysicalRFC(field, value string, opts ...rfc.Option) Rule {
	return rfcKindRule(field, value, rfc.Physical, opts, ValidationError{
		Field:          field,
		Message:        "must be a valid RFC of an individual",
		TranslationKey: "validation.rfc_physical",
		TranslationValues: map[string]any{
			"field": field,
		},
	})
}

// ValidMoralRFC validates that value is a valid RFC of a legal entity.
func ValidMoralRFC(field, value string, opts ...rfc.Option) Rule {
	return rfcKindRule(field, value, rfc.Moral, opts, ValidationError{
		Field:          field,
		Message:        "must be a valid RFC of a legal entity",
		TranslationKey: "validation.rfc_moral",
		TranslationValues: map[string]any{
			"field": field,
		},
	})
}

// NotGenericRFC rejects the placeholder RFCs XAXX010101000 and XEXX010101000.
// Any other value passes, so pair it with ValidRFC.
func NotGenericRFC(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !rfc.IsGeneric(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not be a generic RFC",
			TranslationKey: "validation.rfc_generic",
			TranslationValues: map[string]any{
				"field":    field,
				"national": rfc.GenericNational,
				"foreign":  rfc.GenericForeign,
			},
		},
	}
}

func rfcKindRule(field, value string, kind rfc.Kind, opts []rfc.Option, verr ValidationError) Rule {
	return Rule{
		Check: func() bool {
			return rfc.Validate(value, opts...) == kind
		},
		Error: verr,
	}
}
