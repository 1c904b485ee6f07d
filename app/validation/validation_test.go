package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	FirstName string `json:"first_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	fields := Struct(signupForm{Email: "not-an-email"})
	require.Len(t, fields, 2)

	byField := map[string]string{}
	for _, f := range fields {
		byField[f.Field] = f.Error
	}
	assert.Equal(t, "this field is required", byField["first_name"])
	assert.Equal(t, "must be a valid email address", byField["email"])
}

func TestStructPassesValidInput(t *testing.T) {
	assert.Nil(t, Struct(signupForm{FirstName: "Amina", Email: "amina@example.com"}))
}

func TestDate(t *testing.T) {
	d, err := Date("2024-05-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), d)

	_, err = Date("02/05/2024")
	assert.Error(t, err)
}
