package rfc

// Kind is the outcome of validating an RFC.
type Kind int

const (
	// Error marks an invalid RFC.
	Error Kind = iota
	// Physical marks an individual's RFC (four letters).
	Physical
	// Moral marks a legal entity's RFC (three letters).
	Moral
)

func (k Kind) String() string {
	switch k {
	case Physical:
		return "physical"
	case Moral:
		return "moral"
	default:
		return "error"
	}
}

// Valid reports whether k is Physical or Moral.
func (k Kind) Valid() bool {
	return k == Physical || k == Moral
}

const (
	// GenericNational is the placeholder RFC for unidentified domestic parties.
	GenericNational = "XAXX010101000"
	// GenericForeign is the placeholder RFC for foreign parties.
	GenericForeign = "XEXX010101000"
)

// Validate checks the structure and check digit of s and reports whether it
// belongs to an individual or a legal entity. Any failure yields Error.
//
// XAXX010101000 passes regardless of its check digit while generic RFCs are
// accepted. With RejectGeneric both placeholders are refused.
func Validate(s string, opts ...Option) Kind {
	o := newOptions(opts)

	parts, err := Parse(s)
	if err != nil {
		return Error
	}

	typed := parts.String()
	expected := ComputeCheckSymbol(parts.Base())

	if expected != parts.CheckDigit && (!o.acceptGeneric || typed != GenericNational) {
		return Error
	}
	if !o.acceptGeneric && typed == GenericForeign {
		return Error
	}

	return parts.Kind()
}

// IsGeneric reports whether s is one of the placeholder RFCs.
func IsGeneric(s string) bool {
	parts, err := Parse(s)
	if err != nil {
		return false
	}
	typed := parts.String()
	return typed == GenericNational || typed == GenericForeign
}
