package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=hospital_admin doctor patient"`
	Years int    `json:"experience" validate:"gte=0"`
}

func TestFormatValidationErrors_UsesJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{Email: "nope", Role: "nurse", Years: -1})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "email must be a valid email address", errs["email"])
	assert.Equal(t, "role must be one of: hospital_admin doctor patient", errs["role"])
	assert.Equal(t, "experience must be greater than or equal to 0", errs["experience"])
}

func TestValidate_OK(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(&sample{Email: "a@b.com", Role: "doctor"}))
}
