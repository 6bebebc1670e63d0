package tool

import "context"

// Type represents JSON Schema types.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// Schema represents a JSON Schema for tool parameters.
type Schema struct {
	Type        Type               `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Default     any                `json:"default,omitempty"`
}

// Declaration declares a tool's function signature for the LLM.
// Name, parameters and description are the contract with the model and must not
// change while a conversation is running.
type Declaration struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Parameters  *Schema `json:"parameters,omitempty"`
}

// Tool is a named capability the model may ask to run.
type Tool interface {
	// Declaration returns the tool's schema for the LLM.
	Declaration() Declaration

	// Invoke runs the tool with arguments already decoded from the model's JSON.
	// A returned error is a tool fault; it is reported back to the model.
	Invoke(ctx context.Context, args map[string]any) (string, error)
}

// Object is shorthand for an object schema with the given properties.
func Object(properties map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: TypeObject, Properties: properties, Required: required}
}

// String is shorthand for a string property.
func String(description string) *Schema {
	return &Schema{Type: TypeString, Description: description}
}
