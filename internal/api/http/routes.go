package httpapi

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/i474232898/weather-dashboard/internal/store"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

var validate = validator.New()

// WeatherResolver is the slice of the weather service the API needs.
type WeatherResolver interface {
	ResolveCity(ctx context.Context, city string) (weather.Report, error)
}

// HistoryStore is the slice of the persistence layer the API needs.
type HistoryStore interface {
	List() []store.City
	Add(name string) ([]store.City, error)
	Remove(id string) ([]store.City, error)
}

// weatherRequest is the body of POST /api/weather/.
type weatherRequest struct {
	CityName string `json:"cityName" validate:"required"`
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, resolver WeatherResolver, history HistoryStore, logger *zap.Logger) {
	api := app.Group("/api/weather")

	// POST /api/weather/ resolves a city and responds with a flat array:
	// element 0 is the current weather, the rest are forecast entries.
	api.Post("/", func(c *fiber.Ctx) error {
		var req weatherRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "request body must be JSON with a cityName field")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "cityName is required")
		}

		report, err := resolver.ResolveCity(c.Context(), req.CityName)
		if err != nil {
			return weatherError(err)
		}

		// History recording is sequenced here, outside the pipeline. A
		// persistence failure is logged but does not void the weather
		// response the caller asked for.
		if _, err := history.Add(report.Current.City); err != nil {
			logger.Warn("recording search history failed",
				zap.String("city", report.Current.City),
				zap.Error(err))
		}

		payload := make([]interface{}, 0, 1+len(report.Forecast))
		payload = append(payload, report.Current)
		for _, entry := range report.Forecast {
			payload = append(payload, entry)
		}
		return c.JSON(payload)
	})

	// GET /api/weather/history returns the stored records in insertion
	// order; the client reverses them for most-recent-first display.
	api.Get("/history", func(c *fiber.Ctx) error {
		cities := history.List()
		if cities == nil {
			cities = []store.City{}
		}
		return c.JSON(cities)
	})

	api.Delete("/history/:id", func(c *fiber.Ctx) error {
		id := c.Params("id")

		remaining, err := history.Remove(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no history record with that id")
			}
			logger.Error("removing history record failed",
				zap.String("id", id),
				zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update search history")
		}

		return c.JSON(fiber.Map{
			"deleted": true,
			"history": remaining,
		})
	})
}

// weatherError maps the resolution error taxonomy onto HTTP statuses.
func weatherError(err error) error {
	switch {
	case errors.Is(err, weather.ErrCityRequired):
		return fiber.NewError(fiber.StatusBadRequest, "cityName must not be blank")
	case errors.Is(err, weather.ErrCityNotFound):
		return fiber.NewError(fiber.StatusNotFound, "city not found")
	case errors.Is(err, weather.ErrMalformedPayload):
		return fiber.NewError(fiber.StatusBadGateway, "weather provider returned an unexpected response")
	case errors.Is(err, weather.ErrUpstream):
		return fiber.NewError(fiber.StatusBadGateway, "weather provider is unavailable")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to resolve weather")
	}
}
