package validacion

import (
	"github.com/fiscalmx/validacion/pkg/email"
	"github.com/fiscalmx/validacion/pkg/rfc"
)

// Kind is the result of ValidateRFC.
type Kind = rfc.Kind

const (
	Error    = rfc.Error
	Physical = rfc.Physical
	Moral    = rfc.Moral
)

// ValidateEmail reports whether s is a syntactically valid email address.
func ValidateEmail(s string) bool {
	return email.Validate(s)
}

// ValidateRFC validates an RFC and reports whether it belongs to an
// individual (Physical) or a legal entity (Moral). Generic placeholder RFCs
// are accepted unless rfc.RejectGeneric is passed.
func ValidateRFC(s string, opts ...rfc.Option) Kind {
	return rfc.Validate(s, opts...)
}
