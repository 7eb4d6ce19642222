package weather

// Raw payloads mirror the provider's wire format. Required numeric fields are
// pointers so the normalizer can tell a missing field apart from a zero value.

// RawCurrentPayload is the provider's current-conditions response.
type RawCurrentPayload struct {
	Name string `json:"name"`
	Dt   *int64 `json:"dt"`
	Main struct {
		Temp     *float64 `json:"temp"`
		Humidity *int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Weather []RawCondition `json:"weather"`
}

// RawForecastPayload is the provider's 5-day/3-hour forecast response.
// The list is time-ordered ascending by the provider.
type RawForecastPayload struct {
	List []RawForecastSlot `json:"list"`
}

// RawForecastSlot is a single 3-hour slot within the forecast list.
type RawForecastSlot struct {
	DtTxt string `json:"dt_txt"`
	Main  struct {
		Temp     *float64 `json:"temp"`
		Humidity *int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Weather []RawCondition `json:"weather"`
}

// RawCondition is the provider's weather condition descriptor.
type RawCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
