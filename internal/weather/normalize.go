package weather

import (
	"fmt"
	"time"
)

// ForecastSlots caps how many forecast entries a report carries. The provider
// returns 3-hour slots over 5 days; the dashboard shows only the first slots
// after the query instant.
const ForecastSlots = 5

// iconURL is the provider's icon asset location for a given icon code. The
// code is not validated against a known set.
const iconURL = "https://openweathermap.org/img/wn/%s.png"

const observedAtLayout = "2006-01-02 15:04:05"

// NormalizeCurrent maps a raw current-conditions payload into the canonical
// CurrentWeather shape. Every consumed field is mandatory; a missing one
// yields ErrMalformedPayload. No I/O is performed.
func NormalizeCurrent(raw RawCurrentPayload, city string) (CurrentWeather, error) {
	switch {
	case raw.Main.Temp == nil:
		return CurrentWeather{}, fmt.Errorf("%w: temperature", ErrMalformedPayload)
	case raw.Main.Humidity == nil:
		return CurrentWeather{}, fmt.Errorf("%w: humidity", ErrMalformedPayload)
	case raw.Wind.Speed == nil:
		return CurrentWeather{}, fmt.Errorf("%w: wind speed", ErrMalformedPayload)
	case raw.Dt == nil:
		return CurrentWeather{}, fmt.Errorf("%w: observation timestamp", ErrMalformedPayload)
	}

	cond, err := condition(raw.Weather)
	if err != nil {
		return CurrentWeather{}, err
	}

	return CurrentWeather{
		City:         city,
		TemperatureF: *raw.Main.Temp,
		WindSpeedMph: *raw.Wind.Speed,
		HumidityPct:  *raw.Main.Humidity,
		Description:  cond.Description,
		IconRef:      fmt.Sprintf(iconURL, cond.Icon),
		ObservedAt:   time.Unix(*raw.Dt, 0).UTC().Format(observedAtLayout),
	}, nil
}

// NormalizeForecast maps a raw forecast payload into a Forecast of at most
// ForecastSlots entries. The provider already orders the list ascending by
// time; truncation trusts that ordering and no re-sorting happens.
func NormalizeForecast(raw RawForecastPayload) (Forecast, error) {
	slots := raw.List
	if len(slots) > ForecastSlots {
		slots = slots[:ForecastSlots]
	}

	forecast := make(Forecast, 0, len(slots))
	for i, slot := range slots {
		switch {
		case slot.DtTxt == "":
			return nil, fmt.Errorf("%w: forecast slot %d timestamp", ErrMalformedPayload, i)
		case slot.Main.Temp == nil:
			return nil, fmt.Errorf("%w: forecast slot %d temperature", ErrMalformedPayload, i)
		case slot.Main.Humidity == nil:
			return nil, fmt.Errorf("%w: forecast slot %d humidity", ErrMalformedPayload, i)
		case slot.Wind.Speed == nil:
			return nil, fmt.Errorf("%w: forecast slot %d wind speed", ErrMalformedPayload, i)
		}

		cond, err := condition(slot.Weather)
		if err != nil {
			return nil, fmt.Errorf("forecast slot %d: %w", i, err)
		}

		forecast = append(forecast, ForecastEntry{
			Timestamp:    slot.DtTxt,
			TemperatureF: *slot.Main.Temp,
			WindSpeedMph: *slot.Wind.Speed,
			HumidityPct:  *slot.Main.Humidity,
			Description:  cond.Description,
			IconRef:      fmt.Sprintf(iconURL, cond.Icon),
		})
	}

	return forecast, nil
}

func condition(conds []RawCondition) (RawCondition, error) {
	if len(conds) == 0 {
		return RawCondition{}, fmt.Errorf("%w: weather condition", ErrMalformedPayload)
	}
	c := conds[0]
	if c.Description == "" {
		return RawCondition{}, fmt.Errorf("%w: condition description", ErrMalformedPayload)
	}
	if c.Icon == "" {
		return RawCondition{}, fmt.Errorf("%w: condition icon", ErrMalformedPayload)
	}
	return c, nil
}
