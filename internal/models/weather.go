package models

import "time"

// WeatherMetric represents one hourly observation for a location
type WeatherMetric struct {
	Timestamp  int64   // epoch seconds, UTC
	Temp       float64 // Fahrenheit
	FeelsLike  float64 // Fahrenheit
	Humidity   float64 // percent
	DewPoint   float64 // Fahrenheit
	Precip     float64 // inches
	PrecipProb float64 // percent
	Snow       float64 // inches
	WindSpeed  float64 // mph
	WindDir    float64 // degrees
	Pressure   float64 // millibars
	CloudCover float64 // percent
	Visibility float64 // miles
	UVIndex    float64
	Conditions string // e.g., "Clear", "Partially cloudy"
	Icon       string
}

// Time returns the observation time in the given location
func (m WeatherMetric) Time(loc *time.Location) time.Time {
	return time.Unix(m.Timestamp, 0).In(loc)
}

// LocationWeatherData holds the full hourly series for a location
type LocationWeatherData struct {
	Location        string // key, e.g. a ZIP code
	ResolvedAddress string
	Timezone        string          // informational, not used in query math
	Metrics         []WeatherMetric // sorted ascending by Timestamp
}

// TimeRange is an inclusive span of epoch seconds
type TimeRange struct {
	Start int64
	End   int64
}

// HourWindow is a preferred hour-of-day window with hours in [0,23].
// A window with StartHour > EndHour wraps past midnight.
type HourWindow struct {
	StartHour int
	EndHour   int
}

// Wraps reports whether the window crosses midnight
func (w HourWindow) Wraps() bool {
	return w.StartHour > w.EndHour
}

// DayKey returns the canonical calendar-day string for t in loc.
// Two times on the same calendar day produce the same key regardless
// of their time-of-day.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// StartOfDay returns midnight of the calendar day containing t
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
