package middleware

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidatorInteractionKind(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	type payload struct {
		Kind string `json:"interaction_type" binding:"required,interaction_kind"`
	}

	assert.NoError(t, v.Struct(payload{Kind: "like"}))
	assert.NoError(t, v.Struct(payload{Kind: "view"}))
	assert.Error(t, v.Struct(payload{Kind: "purchase"}))
	assert.Error(t, v.Struct(payload{Kind: ""}))
}

func TestSetupValidatorUsesJSONFieldNames(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	type payload struct {
		ProductID string `json:"product_id" binding:"required"`
	}

	err := v.Struct(payload{})
	require.Error(t, err)

	validationErrors, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	require.Len(t, validationErrors, 1)
	assert.Equal(t, "product_id", validationErrors[0].Field())
}
