package validator

import (
	"fmt"
	"slices"
)

// Translator renders a translation key for a language. Args are key/value
// pairs substituted into the message. *i18n.Translator satisfies it.
type Translator interface {
	T(lang, key string, args ...string) string
}

// Translate returns a copy of errs with every Message rendered in lang.
// Errors without a TranslationKey keep their original message.
func Translate(errs ValidationErrors, t Translator, lang string) ValidationErrors {
	if t == nil || len(errs) == 0 {
		return errs
	}

	out := make(ValidationErrors, len(errs))
	for i, err := range errs {
		out[i] = err
		if err.TranslationKey == "" {
			continue
		}

		args := make([]string, 0, len(err.TranslationValues)*2)
		keys := make([]string, 0, len(err.TranslationValues))
		for k := range err.TranslationValues {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			args = append(args, k, fmt.Sprint(err.TranslationValues[k]))
		}

		if msg := t.T(lang, err.TranslationKey, args...); msg != "" && msg != err.TranslationKey {
			out[i].Message = msg
		}
	}
	return out
}
