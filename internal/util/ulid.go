package util

import "github.com/oklog/ulid/v2"

// NewULID returns a new ULID string. ulid.Make draws from a process-wide monotonic entropy source.
func NewULID() string {
	return ulid.Make().String()
}
