package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func weatherSchema() *Schema {
	return Object(map[string]*Schema{
		"city_name": String("City to look up"),
		"page": {
			Type: TypeString,
			Enum: []string{"hourbyhour", "tenday"},
		},
		"days": {Type: TypeInteger},
		"attendees": {
			Type:  TypeArray,
			Items: String("email"),
		},
	}, "city_name")
}

func TestValidate_Valid(t *testing.T) {
	err := Validate(map[string]any{
		"city_name": "Paris",
		"page":      "tenday",
		"days":      float64(3),
		"attendees": []any{"a@example.com"},
	}, weatherSchema())

	assert.NoError(t, err)
}

func TestValidate_MissingRequired(t *testing.T) {
	err := Validate(map[string]any{"page": "tenday"}, weatherSchema())

	assert.ErrorIs(t, err, ErrMissingArgument)
	var ae *ArgumentError
	assert.ErrorAs(t, err, &ae)
	assert.Equal(t, "city_name", ae.Field)
}

func TestValidate_NullRequired(t *testing.T) {
	err := Validate(map[string]any{"city_name": nil}, weatherSchema())

	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestValidate_WrongType(t *testing.T) {
	err := Validate(map[string]any{"city_name": 42.0}, weatherSchema())

	assert.ErrorIs(t, err, ErrArgumentType)
}

func TestValidate_EnumViolation(t *testing.T) {
	err := Validate(map[string]any{"city_name": "Paris", "page": "monthly"}, weatherSchema())

	assert.ErrorIs(t, err, ErrArgumentEnum)
	assert.Contains(t, err.Error(), "monthly")
}

func TestValidate_NonIntegralInteger(t *testing.T) {
	err := Validate(map[string]any{"city_name": "Paris", "days": 2.5}, weatherSchema())

	assert.ErrorIs(t, err, ErrArgumentType)
}

func TestValidate_ArrayItemType(t *testing.T) {
	err := Validate(map[string]any{"city_name": "Paris", "attendees": []any{"ok", 7.0}}, weatherSchema())

	assert.ErrorIs(t, err, ErrArgumentType)
	assert.Contains(t, err.Error(), "item 1")
}

func TestValidate_UnknownFieldsIgnored(t *testing.T) {
	err := Validate(map[string]any{"city_name": "Paris", "units": "metric"}, weatherSchema())

	assert.NoError(t, err)
}

func TestValidate_NilSchema(t *testing.T) {
	assert.NoError(t, Validate(map[string]any{"x": 1}, nil))
}
