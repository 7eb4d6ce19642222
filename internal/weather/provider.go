package weather

import "context"

// Geocoder converts a free-text city name into coordinates. Implementations
// must use limit=1 semantics: when the provider returns several candidates,
// only the first is used, with no ranking of its own.
type Geocoder interface {
	Resolve(ctx context.Context, city string) (Coordinates, error)
}

// Provider fetches raw weather data for a coordinate pair. The two calls are
// independent; either may fail without affecting the other.
type Provider interface {
	FetchCurrent(ctx context.Context, coords Coordinates) (RawCurrentPayload, error)
	FetchForecast(ctx context.Context, coords Coordinates) (RawForecastPayload, error)
}
