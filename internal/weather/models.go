package weather

// Coordinates is a geographic point produced by geocoding. It lives only for
// the duration of one pipeline invocation and is never persisted.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CurrentWeather is the normalized view of the provider's current-conditions
// response for one city. JSON tags follow the dashboard client's wire contract.
type CurrentWeather struct {
	City         string  `json:"city"`
	TemperatureF float64 `json:"tempF"`
	WindSpeedMph float64 `json:"windSpeed"`
	HumidityPct  int     `json:"humidity"`
	Description  string  `json:"iconDescription"`
	IconRef      string  `json:"icon"`
	ObservedAt   string  `json:"date"`
}

// ForecastEntry is one normalized forecast slot, keyed by the provider's
// forecast timestamp string.
type ForecastEntry struct {
	Timestamp    string  `json:"date"`
	TemperatureF float64 `json:"tempF"`
	WindSpeedMph float64 `json:"windSpeed"`
	HumidityPct  int     `json:"humidity"`
	Description  string  `json:"iconDescription"`
	IconRef      string  `json:"icon"`
}

// Forecast is a chronological sequence of forecast entries, at most
// ForecastSlots long. Ordering follows the provider's native ordering.
type Forecast []ForecastEntry

// Report is the all-or-nothing result of resolving one city query.
type Report struct {
	Current  CurrentWeather
	Forecast Forecast
}
