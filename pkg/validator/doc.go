// Package validator provides rule-based field validation for forms and
// payloads that carry Mexican identifiers.
//
// A Rule couples a boolean Check with the ValidationError reported when the
// check fails. Apply evaluates rules and aggregates failures into a
// ValidationErrors slice that satisfies the error interface, so several
// field problems can be returned at once.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("rfc", req.RFC),
//	    validator.ValidRFC("rfc", req.RFC),
//	    validator.NotGenericRFC("rfc", req.RFC),
//	    validator.ValidEmail("email", req.Email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    verrs = validator.Translate(verrs, translator, "es")
//	}
//
// # Translation
//
// Every rule sets a TranslationKey ("validation.rfc", "validation.email",
// ...) and TranslationValues. Translate renders messages through any
// Translator, such as *i18n.Translator.
//
// Rules hold no state and are safe to build and apply concurrently.
package validator
