package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fiscalmx/validacion/pkg/logger"
)

func TestAttrs(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("x")).Key)

	assert.Equal(t, slog.Attr{}, logger.RunID(nil))
	assert.Equal(t, "run_id", logger.RunID("abc").Key)

	assert.Equal(t, slog.String("component", "email"), logger.Component("email"))
	assert.Equal(t, slog.String("input", "VACE611210MQ9"), logger.Input("VACE611210MQ9"))
	assert.Equal(t, "result", logger.Result("physical").Key)
}
