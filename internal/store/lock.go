package store

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another agent process holds the cache.
var ErrLocked = errors.New("location cache is in use by another weatheragent process")

// acquireLock takes an exclusive, non-blocking lock next to the database file.
// The OS releases it if the process dies.
func acquireLock(dbPath string) (*flock.Flock, error) {
	fl := flock.New(dbPath + ".lock")
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", fl.Path(), err)
	}
	if !locked {
		return nil, ErrLocked
	}
	return fl, nil
}
