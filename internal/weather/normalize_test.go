package weather

import (
	"errors"
	"fmt"
	"testing"
)

func f64(v float64) *float64 { return &v }
func i(v int) *int           { return &v }
func i64(v int64) *int64     { return &v }

func validCurrentPayload() RawCurrentPayload {
	var raw RawCurrentPayload
	raw.Name = "London"
	raw.Dt = i64(1700000000)
	raw.Main.Temp = f64(15)
	raw.Main.Humidity = i(60)
	raw.Wind.Speed = f64(5)
	raw.Weather = []RawCondition{{Description: "clear sky", Icon: "01d"}}
	return raw
}

func TestNormalizeCurrent(t *testing.T) {
	got, err := NormalizeCurrent(validCurrentPayload(), "London")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.City != "London" {
		t.Errorf("city: got %q, want %q", got.City, "London")
	}
	if got.TemperatureF != 15 {
		t.Errorf("temperature: got %v, want 15", got.TemperatureF)
	}
	if got.WindSpeedMph != 5 {
		t.Errorf("wind speed: got %v, want 5", got.WindSpeedMph)
	}
	if got.HumidityPct != 60 {
		t.Errorf("humidity: got %v, want 60", got.HumidityPct)
	}
	if got.Description != "clear sky" {
		t.Errorf("description: got %q, want %q", got.Description, "clear sky")
	}
	if got.IconRef != "https://openweathermap.org/img/wn/01d.png" {
		t.Errorf("icon ref: got %q", got.IconRef)
	}
	if got.ObservedAt == "" {
		t.Error("observed-at timestamp is empty")
	}
}

func TestNormalizeCurrentMissingFields(t *testing.T) {
	cases := map[string]func(*RawCurrentPayload){
		"temperature": func(r *RawCurrentPayload) { r.Main.Temp = nil },
		"humidity":    func(r *RawCurrentPayload) { r.Main.Humidity = nil },
		"wind":        func(r *RawCurrentPayload) { r.Wind.Speed = nil },
		"timestamp":   func(r *RawCurrentPayload) { r.Dt = nil },
		"conditions":  func(r *RawCurrentPayload) { r.Weather = nil },
		"description": func(r *RawCurrentPayload) { r.Weather[0].Description = "" },
		"icon":        func(r *RawCurrentPayload) { r.Weather[0].Icon = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			raw := validCurrentPayload()
			mutate(&raw)

			_, err := NormalizeCurrent(raw, "London")
			if !errors.Is(err, ErrMalformedPayload) {
				t.Fatalf("got %v, want ErrMalformedPayload", err)
			}
		})
	}
}

func forecastSlot(ts string, temp float64) RawForecastSlot {
	var slot RawForecastSlot
	slot.DtTxt = ts
	slot.Main.Temp = f64(temp)
	slot.Main.Humidity = i(55)
	slot.Wind.Speed = f64(4)
	slot.Weather = []RawCondition{{Description: "few clouds", Icon: "02d"}}
	return slot
}

func TestNormalizeForecastTruncatesToFiveSlots(t *testing.T) {
	var raw RawForecastPayload
	for n := 0; n < 8; n++ {
		ts := fmt.Sprintf("2024-01-01 %02d:00:00", n*3)
		raw.List = append(raw.List, forecastSlot(ts, float64(10+n)))
	}

	forecast, err := NormalizeForecast(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(forecast) != ForecastSlots {
		t.Fatalf("got %d entries, want %d", len(forecast), ForecastSlots)
	}
	// Provider order must be preserved, not re-sorted.
	for n, entry := range forecast {
		want := fmt.Sprintf("2024-01-01 %02d:00:00", n*3)
		if entry.Timestamp != want {
			t.Errorf("entry %d timestamp: got %q, want %q", n, entry.Timestamp, want)
		}
		if entry.TemperatureF != float64(10+n) {
			t.Errorf("entry %d temperature: got %v, want %v", n, entry.TemperatureF, 10+n)
		}
	}
}

func TestNormalizeForecastShortList(t *testing.T) {
	var raw RawForecastPayload
	raw.List = []RawForecastSlot{
		forecastSlot("2024-01-01 00:00:00", 10),
		forecastSlot("2024-01-01 03:00:00", 11),
	}

	forecast, err := NormalizeForecast(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forecast) != 2 {
		t.Fatalf("got %d entries, want 2", len(forecast))
	}
}

func TestNormalizeForecastMissingField(t *testing.T) {
	var raw RawForecastPayload
	slot := forecastSlot("2024-01-01 00:00:00", 10)
	slot.Main.Temp = nil
	raw.List = []RawForecastSlot{slot}

	if _, err := NormalizeForecast(raw); !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("got %v, want ErrMalformedPayload", err)
	}
}

func TestNormalizeForecastEmptyList(t *testing.T) {
	forecast, err := NormalizeForecast(RawForecastPayload{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forecast) != 0 {
		t.Fatalf("got %d entries, want 0", len(forecast))
	}
}
