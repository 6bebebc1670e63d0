package tool

import (
	"fmt"
	"math"
	"slices"
)

// Validate checks args against an object schema: required fields must be present
// and non-null, known fields must match their declared type and enum.
// Unknown fields are ignored.
func Validate(args map[string]any, schema *Schema) error {
	if schema == nil {
		return nil
	}

	for _, field := range schema.Required {
		if v, ok := args[field]; !ok || v == nil {
			return &ArgumentError{Field: field, Err: ErrMissingArgument}
		}
	}

	for name, value := range args {
		prop, ok := schema.Properties[name]
		if !ok || prop == nil || value == nil {
			continue
		}
		if err := validateValue(value, prop); err != nil {
			return &ArgumentError{Field: name, Err: err}
		}
	}

	return nil
}

func validateValue(value any, schema *Schema) error {
	if !matchesType(value, schema.Type) {
		return fmt.Errorf("%w: want %s, got %T", ErrArgumentType, schema.Type, value)
	}

	if len(schema.Enum) > 0 {
		s, _ := value.(string)
		if !slices.Contains(schema.Enum, s) {
			return fmt.Errorf("%w: %q not in %v", ErrArgumentEnum, s, schema.Enum)
		}
	}

	if schema.Type == TypeArray && schema.Items != nil {
		for i, item := range value.([]any) {
			if err := validateValue(item, schema.Items); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
	}

	return nil
}

func matchesType(value any, t Type) bool {
	switch t {
	case TypeString:
		_, ok := value.(string)
		return ok
	case TypeBoolean:
		_, ok := value.(bool)
		return ok
	case TypeNumber:
		switch value.(type) {
		case float64, float32, int, int64:
			return true
		}
		return false
	case TypeInteger:
		switch v := value.(type) {
		case int, int64:
			return true
		case float64:
			return v == math.Trunc(v)
		}
		return false
	case TypeArray:
		_, ok := value.([]any)
		return ok
	case TypeObject:
		_, ok := value.(map[string]any)
		return ok
	default:
		return true
	}
}
