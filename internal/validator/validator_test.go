package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	UserType string `json:"userType" validate:"omitempty,oneof=Client Professional"`
}

func TestValidate_OK(t *testing.T) {
	v := New()
	err := v.Validate(&signupForm{
		Email:    "a@b.com",
		Password: "longenough",
		UserType: "Client",
	})
	assert.NoError(t, err)
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(&signupForm{Email: "not-an-email", Password: "short", UserType: "Admin"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)

	assert.Equal(t, "must be a valid email address", vErr.Errors["email"])
	assert.Equal(t, "must be at least 6 characters", vErr.Errors["password"])
	assert.Contains(t, vErr.Errors["userType"], "must be one of")
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Errors: map[string]string{"email": "is required"}}
	assert.Contains(t, err.Error(), "field 'email': is required")
}
