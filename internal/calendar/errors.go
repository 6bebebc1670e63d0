package calendar

import (
	"errors"
	"fmt"
)

var (
	ErrCredentialsMissing = errors.New("calendar client secrets file not found")
	ErrTokenMissing       = errors.New("calendar token file not found; authorize the app once and save the token")
	ErrInvalidTime        = errors.New("time must be RFC 3339, e.g. 2024-03-15T14:00:00 or 2024-03-15T14:00:00+01:00")
	ErrInvalidDate        = errors.New("date must be YYYY-MM-DD")
	ErrEndBeforeStart     = errors.New("end_time must be after start_time")
)

// APIError is a failed Calendar API call.
type APIError struct {
	Op   string
	Code int
	Err  error
}

func (e *APIError) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("calendar %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("calendar %s (HTTP %d): %v", e.Op, e.Code, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
