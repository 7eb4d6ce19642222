// Package openweather implements the weather.Geocoder and weather.Provider
// contracts against the OpenWeatherMap geocoding and data APIs.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// units=imperial keeps the wire values in °F and mph, which is what the
// normalizer and the dashboard client expect.
const units = "imperial"

// Client talks to OpenWeatherMap. The API key is supplied once at
// construction and shared by the geocoding and data endpoints. All outbound
// calls run through a circuit breaker that fails fast while the provider is
// down; there are no retries.
type Client struct {
	apiKey  string
	geoURL  string
	dataURL string
	httpc   *http.Client
	circuit *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

func NewClient(httpClient *http.Client, apiKey string, logger *zap.Logger) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &Client{
		apiKey:  apiKey,
		geoURL:  "https://api.openweathermap.org/geo/1.0/direct",
		dataURL: "https://api.openweathermap.org/data/2.5",
		httpc:   httpClient,
		circuit: cb,
		logger:  logger,
	}
}

// Resolve converts a city name into coordinates via the direct geocoding
// endpoint. The request carries limit=1; when the provider still returns
// several candidates only the first is used. Zero candidates yields
// weather.ErrCityNotFound.
func (c *Client) Resolve(ctx context.Context, city string) (weather.Coordinates, error) {
	values := url.Values{}
	values.Set("q", city)
	values.Set("limit", "1")
	values.Set("appid", c.apiKey)

	body, err := c.get(ctx, c.geoURL, values)
	if err != nil {
		return weather.Coordinates{}, err
	}

	var matches []weather.Coordinates
	if err := json.Unmarshal(body, &matches); err != nil {
		return weather.Coordinates{}, fmt.Errorf("%w: decoding geocoding response: %v", weather.ErrUpstream, err)
	}

	if len(matches) == 0 {
		return weather.Coordinates{}, fmt.Errorf("%w: %q", weather.ErrCityNotFound, city)
	}

	return matches[0], nil
}

// FetchCurrent fetches the raw current-conditions payload for coords.
func (c *Client) FetchCurrent(ctx context.Context, coords weather.Coordinates) (weather.RawCurrentPayload, error) {
	body, err := c.get(ctx, c.dataURL+"/weather", c.coordQuery(coords))
	if err != nil {
		return weather.RawCurrentPayload{}, err
	}

	var payload weather.RawCurrentPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return weather.RawCurrentPayload{}, fmt.Errorf("%w: decoding current weather response: %v", weather.ErrUpstream, err)
	}
	return payload, nil
}

// FetchForecast fetches the raw 5-day/3-hour forecast payload for coords.
func (c *Client) FetchForecast(ctx context.Context, coords weather.Coordinates) (weather.RawForecastPayload, error) {
	body, err := c.get(ctx, c.dataURL+"/forecast", c.coordQuery(coords))
	if err != nil {
		return weather.RawForecastPayload{}, err
	}

	var payload weather.RawForecastPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return weather.RawForecastPayload{}, fmt.Errorf("%w: decoding forecast response: %v", weather.ErrUpstream, err)
	}
	return payload, nil
}

func (c *Client) coordQuery(coords weather.Coordinates) url.Values {
	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", coords.Lat))
	values.Set("lon", fmt.Sprintf("%f", coords.Lon))
	values.Set("units", units)
	values.Set("appid", c.apiKey)
	return values
}

// get executes one GET through the circuit breaker and returns the response
// body. Transport failures, timeouts, non-2xx statuses and an open breaker
// all surface as weather.ErrUpstream.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	u := endpoint + "?" + query.Encode()

	result, err := c.circuit.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpc.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}

		return io.ReadAll(resp.Body)
	})
	if err != nil {
		c.logger.Warn("provider request failed",
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", weather.ErrUpstream, err)
	}

	return result.([]byte), nil
}
