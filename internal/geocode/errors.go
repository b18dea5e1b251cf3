package geocode

import "errors"

var (
	// ErrNotFound means the place name matched nothing.
	ErrNotFound = errors.New("geocode: place not found")
	// ErrServiceUnavailable means the geocoding service could not be
	// reached or answered unusably.
	ErrServiceUnavailable = errors.New("geocode: service unavailable")
)
