package validation

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Label string          `json:"label" validate:"required"`
	Color string          `json:"color" validate:"omitempty,hexcolor"`
	Price decimal.Decimal `json:"price" validate:"gt=0"`
}

func TestStructOK(t *testing.T) {
	err := Struct(sample{Label: "Summer", Color: "#ff00aa", Price: decimal.RequireFromString("4.99")})
	assert.NoError(t, err)
}

func TestStructReportsJSONFieldName(t *testing.T) {
	err := Struct(sample{Price: decimal.NewFromInt(1)})
	require.Error(t, err)

	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "label is required", fe.Message)
}

func TestStructDecimalBounds(t *testing.T) {
	err := Struct(sample{Label: "x", Price: decimal.Zero})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price")
}

func TestStructHexColor(t *testing.T) {
	err := Struct(sample{Label: "x", Color: "red", Price: decimal.NewFromInt(1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hex color")
}
