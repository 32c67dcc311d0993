package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscalmx/validacion/pkg/i18n"
)

func TestParseYAML(t *testing.T) {
	t.Parallel()

	t.Run("valid catalog", func(t *testing.T) {
		content := []byte(`
en:
  validation:
    rfc: "must be a valid RFC"
es:
  validation:
    rfc: "debe ser un RFC válido"
`)
		result, err := i18n.ParseYAML(content)
		require.NoError(t, err)
		require.Len(t, result, 2)

		nested, ok := result["es"]["validation"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "debe ser un RFC válido", nested["rfc"])
	})

	t.Run("malformed YAML", func(t *testing.T) {
		_, err := i18n.ParseYAML([]byte("en: [unclosed"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("empty catalog", func(t *testing.T) {
		_, err := i18n.ParseYAML([]byte(""))
		assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})

	t.Run("language is not a map", func(t *testing.T) {
		_, err := i18n.ParseYAML([]byte("en: hello\n"))
		assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})
}

func TestYAMLAdapter(t *testing.T) {
	t.Parallel()

	adapter := &i18n.YAMLAdapter{Content: []byte("es:\n  hello: Hola\n")}

	t.Run("loads", func(t *testing.T) {
		result, err := adapter.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hola", result["es"]["hello"])
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := adapter.Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrYAMLParsingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestMapAdapter(t *testing.T) {
	t.Parallel()

	result, err := (&i18n.MapAdapter{}).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result)
}
