package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscalmx/validacion/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "rfc", Message: "must be a valid RFC"})
		assert.Equal(t, "validation failed: rfc: must be a valid RFC", errs.Error())
	})

	t.Run("joins multiple errors in order", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "rfc", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "email", Message: "is invalid"})
		assert.Equal(t, "validation failed: rfc: is required; email: is invalid", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())

	errs.Add(validator.ValidationError{Field: "rfc", Message: "is required"})
	errs.Add(validator.ValidationError{Field: "email", Message: "is invalid"})
	errs.Add(validator.ValidationError{Field: "rfc", Message: "must be a valid RFC"})

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("rfc"))
	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("name"))
	assert.Equal(t, []string{"is required", "must be a valid RFC"}, errs.Get("rfc"))
	assert.Nil(t, errs.Get("name"))
	assert.Equal(t, []string{"rfc", "email"}, errs.Fields())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("rfc", "VACE611210MQ9"),
			validator.ValidRFC("rfc", "VACE611210MQ9"),
		)
		assert.NoError(t, err)
	})

	t.Run("returns nil without rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("rfc", ""),
			validator.ValidRFC("rfc", ""),
			validator.ValidEmail("email", "nope"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, "validation.required", verrs[0].TranslationKey)
		assert.Equal(t, "validation.rfc", verrs[1].TranslationKey)
		assert.Equal(t, "validation.email", verrs[2].TranslationKey)
	})

	t.Run("rule without check fails", func(t *testing.T) {
		err := validator.Apply(validator.Rule{Error: validator.ValidationError{Field: "x"}})
		assert.Error(t, err)
	})
}

func TestErrorHelpers(t *testing.T) {
	err := validator.Apply(validator.ValidRFC("rfc", "bad"))

	t.Run("matches sentinel", func(t *testing.T) {
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("create taxpayer: %w", err)
		assert.True(t, validator.IsValidationError(wrapped))
		assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
		assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
	})

	t.Run("other errors", func(t *testing.T) {
		other := errors.New("boom")
		assert.False(t, validator.IsValidationError(other))
		assert.Nil(t, validator.ExtractValidationErrors(other))
		assert.False(t, validator.IsValidationError(nil))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})
}
