// Package i18n translates validation and CLI messages.
//
// Catalogs are nested maps keyed by language code and addressed with dot
// separated keys. They are loaded through a TranslationAdapter: MapAdapter
// for in-memory data, YAMLAdapter for YAML content (usually embedded).
//
//	//go:embed locales.yaml
//	var locales []byte
//
//	tr, err := i18n.NewTranslator(ctx, &i18n.YAMLAdapter{Content: locales})
//	lang := tr.Match("es-MX")                 // "es"
//	msg := tr.T(lang, "validation.rfc", "field", "rfc")
//	sum := tr.N(lang, "cli.invalid_count", 3, "count", "3")
//
// Placeholders use the %{name} syntax. Missing keys fall back to the key
// itself unless WithFallbackToKey(false) is set. Language matching uses
// golang.org/x/text/language, so regional tags resolve to their base
// language when only the base is loaded.
//
// A Translator is safe for concurrent use.
package i18n
