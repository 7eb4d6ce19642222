package weather

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Service is the weather resolution pipeline: geocode the city name, fetch
// current conditions and the forecast, normalize both. It holds no mutable
// state, so concurrent invocations are independent.
type Service struct {
	geo      Geocoder
	provider Provider
	logger   *zap.Logger
}

// NewService creates a Service with explicit dependencies so tests can
// substitute fakes.
func NewService(geo Geocoder, provider Provider, logger *zap.Logger) *Service {
	return &Service{
		geo:      geo,
		provider: provider,
		logger:   logger,
	}
}

// ResolveCity resolves a city name into a full weather report.
//
// Sequencing is strict: geocoding must succeed before either provider call is
// attempted, and both fetches must succeed before normalization. The first
// failure short-circuits the whole call, wrapped in a ResolutionError that
// carries the original cause. Repeated calls issue fresh provider requests;
// nothing is cached and search history is never touched here.
func (s *Service) ResolveCity(ctx context.Context, city string) (Report, error) {
	name := strings.TrimSpace(city)
	if name == "" {
		return Report{}, ErrCityRequired
	}

	coords, err := s.geo.Resolve(ctx, name)
	if err != nil {
		return Report{}, &ResolutionError{City: name, Err: err}
	}
	s.logger.Debug("geocoded city",
		zap.String("city", name),
		zap.Float64("lat", coords.Lat),
		zap.Float64("lon", coords.Lon))

	rawCurrent, err := s.provider.FetchCurrent(ctx, coords)
	if err != nil {
		return Report{}, &ResolutionError{City: name, Err: err}
	}

	rawForecast, err := s.provider.FetchForecast(ctx, coords)
	if err != nil {
		return Report{}, &ResolutionError{City: name, Err: err}
	}

	current, err := NormalizeCurrent(rawCurrent, name)
	if err != nil {
		return Report{}, &ResolutionError{City: name, Err: err}
	}

	forecast, err := NormalizeForecast(rawForecast)
	if err != nil {
		return Report{}, &ResolutionError{City: name, Err: err}
	}

	s.logger.Info("resolved weather",
		zap.String("city", name),
		zap.Int("forecast_entries", len(forecast)))

	return Report{Current: current, Forecast: forecast}, nil
}
