package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fiscalmx/validacion/pkg/i18n"
)

func TestMatchLanguage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		requested string
		supported []string
		expected  string
	}{
		{
			name:      "empty request returns default",
			requested: "",
			supported: []string{"en", "es"},
			expected:  "es",
		},
		{
			name:      "exact match",
			requested: "en",
			supported: []string{"en", "es"},
			expected:  "en",
		},
		{
			name:      "regional tag matches base language",
			requested: "es-MX",
			supported: []string{"en", "es"},
			expected:  "es",
		},
		{
			name:      "accept-language list",
			requested: "en-US,en;q=0.9",
			supported: []string{"en", "es"},
			expected:  "en",
		},
		{
			name:      "quality values respected",
			requested: "en;q=0.5,es;q=0.9",
			supported: []string{"en", "es"},
			expected:  "es",
		},
		{
			name:      "malformed request returns default",
			requested: "!!!",
			supported: []string{"en", "es"},
			expected:  "es",
		},
		{
			name:      "no supported languages",
			requested: "en",
			supported: nil,
			expected:  "es",
		},
		{
			name:      "invalid supported codes are skipped",
			requested: "en",
			supported: []string{"not a tag", "en"},
			expected:  "en",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, i18n.MatchLanguage(tt.requested, tt.supported, "es"))
		})
	}
}
