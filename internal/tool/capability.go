package tool

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Validator is implemented by request types with constraints the schema cannot express.
type Validator interface {
	Validate() error
}

// RunFunc executes a tool with its typed request.
type RunFunc[Req any] func(ctx context.Context, req Req) (string, error)

// Capability adapts a typed function to the Tool interface.
// It centralises the argument handling every tool shares:
//   - schema validation of the raw arguments
//   - decoding into Req (mapstructure, using the json tags)
//   - the optional Validator check
type Capability[Req any] struct {
	decl Declaration
	run  RunFunc[Req]
}

// New creates a Capability. Req must be a struct type whose json tags match the
// declaration's property names.
//
// Example usage:
//
//	tool.New(tool.Declaration{Name: "get_events_for_date", ...}, client.eventsForDate)
func New[Req any](decl Declaration, run RunFunc[Req]) *Capability[Req] {
	return &Capability[Req]{decl: decl, run: run}
}

// Declaration implements Tool
func (c *Capability[Req]) Declaration() Declaration {
	return c.decl
}

// Invoke implements Tool
func (c *Capability[Req]) Invoke(ctx context.Context, args map[string]any) (string, error) {
	if err := Validate(args, c.decl.Parameters); err != nil {
		if ae, ok := err.(*ArgumentError); ok {
			ae.Tool = c.decl.Name
		}
		return "", err
	}

	var req Req
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &req,
	})
	if err != nil {
		return "", fmt.Errorf("%s: build decoder: %w", c.decl.Name, err)
	}
	if err := decoder.Decode(args); err != nil {
		return "", &ArgumentError{Tool: c.decl.Name, Err: err}
	}

	if v, ok := any(&req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return "", &ArgumentError{Tool: c.decl.Name, Err: err}
		}
	}

	return c.run(ctx, req)
}
