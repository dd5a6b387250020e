package pokeapi

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("pokeapi: not found")

// NetworkError covers rejected requests, unreachable hosts, timeouts and
// unexpected status codes.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("pokeapi: GET %s: unexpected status code: %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("pokeapi: GET %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// MalformedResponseError means the body did not match the documented shape.
type MalformedResponseError struct {
	URL string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("pokeapi: malformed response from %s: %v", e.URL, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
