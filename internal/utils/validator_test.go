package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	type input struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	require.NoError(t, ValidateStruct(input{Email: "a@x.com", Password: "Test@1234"}))

	err := ValidateStruct(input{Password: "Test@1234"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")

	err = ValidateStruct(input{Email: "not-an-email", Password: "Test@1234"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid email")

	err = ValidateStruct(input{Email: "a@x.com", Password: "short"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 8")
}

func TestValidateStructOptionalFields(t *testing.T) {
	type update struct {
		FirstName *string `json:"firstName" validate:"omitempty,min=1"`
	}

	require.NoError(t, ValidateStruct(update{}))

	name := "Alice"
	require.NoError(t, ValidateStruct(update{FirstName: &name}))

	empty := ""
	assert.Error(t, ValidateStruct(update{FirstName: &empty}))
}
