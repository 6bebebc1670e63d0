package tool

import (
	"errors"
	"fmt"
)

var (
	ErrMissingArgument = errors.New("missing required argument")
	ErrArgumentType    = errors.New("argument has wrong type")
	ErrArgumentEnum    = errors.New("argument is not one of the allowed values")
)

// ArgumentError reports which argument failed schema validation or decoding.
type ArgumentError struct {
	Tool  string
	Field string
	Err   error
}

func (e *ArgumentError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid arguments for %s: %v", e.Tool, e.Err)
	}
	return fmt.Sprintf("invalid argument %q for %s: %v", e.Field, e.Tool, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
