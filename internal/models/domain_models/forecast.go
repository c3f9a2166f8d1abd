package domain_models

// ForecastEntry is one 3-hour slot of a weather forecast.
type ForecastEntry struct {
	PrecipitationMM float64 // rain over the 3h window, millimeters
	CloudCover      float64 // percent, 0-100
	Temperature     float64 // celsius
}

// Forecast is the near-term weather payload for a coordinate. A nil
// *Forecast means "no data available"; admissibility checks fail open.
type Forecast struct {
	Entries []ForecastEntry
}

// Current returns the first forecast entry, which is the only one the
// admissibility rules look at.
func (f *Forecast) Current() (ForecastEntry, bool) {
	if f == nil || len(f.Entries) == 0 {
		return ForecastEntry{}, false
	}
	return f.Entries[0], true
}
