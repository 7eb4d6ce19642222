package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrCityRequired is returned when the requested city name is blank.
	ErrCityRequired = errors.New("city name must not be blank")

	// ErrCityNotFound is returned when geocoding yields no match for the name.
	ErrCityNotFound = errors.New("no location matches the requested city")

	// ErrUpstream is returned when a provider call fails: network error,
	// timeout, non-success status, or an undecodable response body.
	ErrUpstream = errors.New("weather provider request failed")

	// ErrMalformedPayload is returned when a provider response decodes but is
	// missing a field the normalizer requires. Kept distinct from ErrUpstream
	// so callers can tell "provider unreachable" from "provider changed its
	// contract".
	ErrMalformedPayload = errors.New("weather provider payload is missing required fields")
)

// ResolutionError wraps the first failure encountered while resolving a city
// query. The original cause stays reachable through errors.Is / errors.As.
type ResolutionError struct {
	City string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving weather for %q: %v", e.City, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
