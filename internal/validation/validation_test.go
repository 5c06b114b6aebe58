package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string   `validate:"required,max=10"`
	Email    string   `validate:"omitempty,email"`
	Status   string   `validate:"omitempty,oneof=pending approved rejected"`
	Tags     []string `validate:"omitempty,dive,oneof=a b"`
	Password string   `validate:"omitempty,min=8"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(sample{Name: "ok", Email: "a@b.com", Status: "pending"})
	assert.Nil(t, errs)
}

func TestStructRequired(t *testing.T) {
	errs := Struct(sample{})
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "is required", errs[0].Message)
}

func TestStructMessages(t *testing.T) {
	errs := Struct(sample{
		Name:     "this name is far too long",
		Email:    "not-an-email",
		Status:   "bogus",
		Password: "short",
	})
	require.Len(t, errs, 4)

	byField := map[string]string{}
	for _, e := range errs {
		byField[e.Field] = e.Message
	}
	assert.Equal(t, "must be at most 10 characters", byField["name"])
	assert.Equal(t, "must be a valid email address", byField["email"])
	assert.Equal(t, "must be one of: pending, approved, rejected", byField["status"])
	assert.Equal(t, "must be at least 8 characters", byField["password"])
}

func TestStructFieldNameIsCamelCase(t *testing.T) {
	type req struct {
		PhoneNumber string `validate:"required"`
	}
	errs := Struct(req{})
	require.Len(t, errs, 1)
	assert.Equal(t, "phoneNumber", errs[0].Field)
}
