package errorz_test

import (
	"errors"
	"fmt"
	"testing"

	"designfoli-web/internal/errorz"
	"github.com/stretchr/testify/assert"
)

func TestValidationError_IsValidation(t *testing.T) {
	err := errorz.Invalid("summary", "Please fill in the required field: %s", "Summary")

	assert.True(t, errors.Is(err, errorz.ErrValidation))
	assert.False(t, errors.Is(err, errorz.ErrNotFound))
	assert.Equal(t, "summary: Please fill in the required field: Summary", err.Error())
}

func TestValidationError_Wrapped(t *testing.T) {
	err := fmt.Errorf("failed to submit: %w", errorz.Invalid("", "Please upload a cover image"))

	var verr *errorz.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "Please upload a cover image", verr.Error())
}
