// Package validacion validates identifiers used in Mexican administrative
// paperwork: email addresses and RFC taxpayer codes.
//
// Both validators are pure functions with no I/O and are safe for concurrent
// use. Neither returns diagnostics; callers only learn whether the input is
// valid and, for RFCs, which kind of taxpayer it identifies.
//
// Basic Usage:
//
//	if !validacion.ValidateEmail(form.Email) {
//		// reject
//	}
//
//	switch validacion.ValidateRFC(form.RFC) {
//	case validacion.Physical:
//		// individual
//	case validacion.Moral:
//		// legal entity
//	default:
//		// invalid
//	}
//
// Generic RFCs:
//
// XAXX010101000 (unidentified national) and XEXX010101000 (foreign) are
// accepted by default. Pass rfc.RejectGeneric() to refuse them:
//
//	validacion.ValidateRFC(v, rfc.RejectGeneric())
//
// Subpackages:
//
//   - pkg/rfc: RFC parsing, check digit computation and validation
//   - pkg/email: email syntax validation
//   - pkg/validator: field rules that collect translatable validation errors
//   - pkg/i18n: YAML translation catalogs for validation messages
//   - pkg/config, pkg/logger: configuration and logging for cmd/validacion
package validacion
