package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is requested or none matches.
const DefaultLanguage = "es"

// MatchLanguage picks the supported language closest to requested, which may
// be a BCP 47 tag ("es-MX") or an Accept-Language style list
// ("en-US,en;q=0.9"). Returns defaultLang when nothing matches.
func MatchLanguage(requested string, supported []string, defaultLang string) string {
	if requested == "" || len(supported) == 0 {
		return defaultLang
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, s)
	}
	if len(tags) == 0 {
		return defaultLang
	}

	wanted, _, err := language.ParseAcceptLanguage(requested)
	if err != nil || len(wanted) == 0 {
		return defaultLang
	}

	_, idx, conf := language.NewMatcher(tags).Match(wanted...)
	if conf == language.No {
		return defaultLang
	}
	return names[idx]
}
