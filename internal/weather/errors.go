package weather

import (
	"errors"
	"fmt"
)

var (
	ErrNoOptions       = errors.New("search returned no locations")
	ErrInvalidPage     = errors.New("page must be hourbyhour or tenday")
	ErrNoLocationID    = errors.New("could not read location id from url")
	ErrNotLoggedIn     = errors.New("browser session is not logged in")
	ErrSelectionFormat = errors.New("selector reply is not a number")
)

// SearchError reports a failed city search.
type SearchError struct {
	Query string
	Err   error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("search for %q: %v", e.Query, e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// LoginError reports a failed weather.com login. It is fatal at startup.
type LoginError struct {
	Step string
	Err  error
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("weather.com login (%s): %v", e.Step, e.Err)
}

func (e *LoginError) Unwrap() error {
	return e.Err
}
