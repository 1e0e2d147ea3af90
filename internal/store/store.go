// Package store holds the in-memory weather state that drives the
// comparison UI: per-location hourly series, the current selection, and
// the range/availability queries derived from them.
package store

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"weathercompare.app/internal/logger"
	"weathercompare.app/internal/models"
	"weathercompare.app/internal/visualcrossing"
)

// Converter produces a WeatherMetric from a raw hourly reading and the
// reading's own epoch timestamp
type Converter func(raw visualcrossing.Hour, epoch int64) (models.WeatherMetric, error)

// DefaultBufferHours pads range queries on both ends to compensate for
// sparse sampling and to give the chart lead/trail context
const DefaultBufferHours = 2

// Store is the process-wide weather state container. It is not safe for
// concurrent use; the bubbletea event loop serializes access.
type Store struct {
	weatherByLocation map[string]*models.LocationWeatherData
	selectedLocation  string
	selectedTimeRange *models.TimeRange
	selectedDates     []time.Time
	bufferHours       float64

	loc     *time.Location // location for calendar-day math
	fetcher Fetcher
	convert Converter
	cache   PayloadCache
	log     *zap.SugaredLogger
}

// New creates a store with default buffer hours, calendar math in local
// time, and the standard Visual Crossing converter.
func New(fetcher Fetcher) *Store {
	return &Store{
		weatherByLocation: make(map[string]*models.LocationWeatherData),
		bufferHours:       DefaultBufferHours,
		loc:               time.Local,
		fetcher:           fetcher,
		convert:           visualcrossing.ConvertHour,
		log:               logger.Get(),
	}
}

// SetCalendarLocation overrides the time.Location used for calendar-day
// math. Tests pass time.UTC for determinism.
func (s *Store) SetCalendarLocation(loc *time.Location) {
	s.loc = loc
}

// SetConverter overrides the conversion collaborator
func (s *Store) SetConverter(convert Converter) {
	s.convert = convert
}

// SetCache attaches a payload cache to the live-data loader. A nil
// cache disables caching.
func (s *Store) SetCache(cache PayloadCache) {
	s.cache = cache
}

// SetWeatherData flattens the payload's day/hour structure into a
// sorted hourly series and replaces any existing entry for location.
// Days without hourly readings contribute nothing. A conversion failure
// propagates and leaves the store untouched.
func (s *Store) SetWeatherData(location string, payload *visualcrossing.Payload) error {
	var metrics []models.WeatherMetric

	if payload != nil {
		for _, day := range payload.Days {
			for _, hour := range day.Hours {
				metric, err := s.convert(hour, hour.DatetimeEpoch)
				if err != nil {
					return err
				}
				metrics = append(metrics, metric)
			}
		}
	}

	sort.Slice(metrics, func(i, j int) bool {
		return metrics[i].Timestamp < metrics[j].Timestamp
	})

	data := &models.LocationWeatherData{
		Location: location,
		Metrics:  metrics,
	}
	if payload != nil {
		data.ResolvedAddress = payload.ResolvedAddress
		data.Timezone = payload.Timezone
	}

	s.weatherByLocation[location] = data
	return nil
}

// SetSelectedLocation records the current location key. Unknown keys
// are accepted; queries against them return empty results.
func (s *Store) SetSelectedLocation(location string) {
	s.selectedLocation = location
}

// SetSelectedTimeRange records the current time range
func (s *Store) SetSelectedTimeRange(r *models.TimeRange) {
	s.selectedTimeRange = r
}

// SetBufferHours records the query buffer. Callers keep it >= 0; the
// store does not validate.
func (s *Store) SetBufferHours(hours float64) {
	s.bufferHours = hours
}

// ToggleDateSelection toggles membership of date's calendar day in the
// selected set. Two values on the same calendar day are
// indistinguishable here even when their time-of-day differs.
func (s *Store) ToggleDateSelection(date time.Time) {
	key := models.DayKey(date, s.loc)
	for i, selected := range s.selectedDates {
		if models.DayKey(selected, s.loc) == key {
			s.selectedDates = append(s.selectedDates[:i], s.selectedDates[i+1:]...)
			return
		}
	}
	s.selectedDates = append(s.selectedDates, date)
}

// ClearSelectedDates empties the selected date set
func (s *Store) ClearSelectedDates() {
	s.selectedDates = nil
}

// SetSelectedDates overwrites the selected date set. Day uniqueness is
// the caller's responsibility; ToggleDateSelection maintains it.
func (s *Store) SetSelectedDates(dates []time.Time) {
	s.selectedDates = dates
}

// SelectedDates returns the current selected date set
func (s *Store) SelectedDates() []time.Time {
	return s.selectedDates
}

// SelectedLocation returns the current location key, if any
func (s *Store) SelectedLocation() string {
	return s.selectedLocation
}

// SelectedTimeRange returns the current time range, if any
func (s *Store) SelectedTimeRange() *models.TimeRange {
	return s.selectedTimeRange
}

// BufferHours returns the current query buffer
func (s *Store) BufferHours() float64 {
	return s.bufferHours
}

// IsDateSelected reports whether date's calendar day is selected
func (s *Store) IsDateSelected(date time.Time) bool {
	key := models.DayKey(date, s.loc)
	for _, selected := range s.selectedDates {
		if models.DayKey(selected, s.loc) == key {
			return true
		}
	}
	return false
}

// LocationData returns the stored series for a location, or nil
func (s *Store) LocationData(location string) *models.LocationWeatherData {
	return s.weatherByLocation[location]
}

// Locations returns the loaded location keys, sorted
func (s *Store) Locations() []string {
	keys := make([]string, 0, len(s.weatherByLocation))
	for key := range s.weatherByLocation {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// WeatherForTimeRange returns the metrics for location whose timestamp
// falls within [r.Start-buffer, r.End+buffer] inclusive, where the
// buffer reflects the bufferHours state at call time. Empty when the
// location is unknown or has no data.
func (s *Store) WeatherForTimeRange(location string, r models.TimeRange) []models.WeatherMetric {
	if location == "" {
		return nil
	}
	data, ok := s.weatherByLocation[location]
	if !ok {
		return nil
	}

	buffer := int64(s.bufferHours * 3600)

	var result []models.WeatherMetric
	for _, metric := range data.Metrics {
		if metric.Timestamp >= r.Start-buffer && metric.Timestamp <= r.End+buffer {
			result = append(result, metric)
		}
	}
	return result
}

// AvailableTimeRange returns the min/max timestamp span of a location's
// data, or nil when the location is unknown or empty. Computed by
// explicit reduction; it does not assume the metrics are sorted.
func (s *Store) AvailableTimeRange(location string) *models.TimeRange {
	data, ok := s.weatherByLocation[location]
	if !ok || len(data.Metrics) == 0 {
		return nil
	}

	minTS := data.Metrics[0].Timestamp
	maxTS := data.Metrics[0].Timestamp
	for _, metric := range data.Metrics[1:] {
		if metric.Timestamp < minTS {
			minTS = metric.Timestamp
		}
		if metric.Timestamp > maxTS {
			maxTS = metric.Timestamp
		}
	}

	return &models.TimeRange{Start: minTS, End: maxTS}
}

// AvailableDates returns every calendar day within the location's data
// span for which the preferred hour window has at least one reading in
// every hour. Results are midnights in the store's calendar location,
// ascending.
func (s *Store) AvailableDates(location string, window models.HourWindow) []time.Time {
	if location == "" {
		return nil
	}
	span := s.AvailableTimeRange(location)
	if span == nil {
		return nil
	}

	day := models.StartOfDay(time.Unix(span.Start, 0).In(s.loc))
	end := time.Unix(span.End, 0).In(s.loc)

	var dates []time.Time
	for !day.After(end) {
		if s.dayHasCoverage(location, day, window) {
			dates = append(dates, day)
		}
		day = day.AddDate(0, 0, 1)
	}
	return dates
}

// dayHasCoverage reports whether every hour of the preferred window has
// at least one reading on the given day. Both window bounds are
// anchored to the same calendar day, so a window that wraps past
// midnight is only satisfied when the day's own readings cover both the
// late and the early hours; it never looks into the next day.
func (s *Store) dayHasCoverage(location string, day time.Time, window models.HourWindow) bool {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), window.StartHour, 0, 0, 0, s.loc)
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), window.EndHour, 59, 59, 999000000, s.loc)

	metrics := s.WeatherForTimeRange(location, models.TimeRange{
		Start: dayStart.Unix(),
		End:   dayEnd.Unix(),
	})

	seen := make(map[int]bool, len(metrics))
	for _, metric := range metrics {
		seen[metric.Time(s.loc).Hour()] = true
	}

	if !window.Wraps() {
		for h := window.StartHour; h <= window.EndHour; h++ {
			if !seen[h] {
				return false
			}
		}
		return true
	}

	for h := window.StartHour; h <= 23; h++ {
		if !seen[h] {
			return false
		}
	}
	for h := 0; h <= window.EndHour; h++ {
		if !seen[h] {
			return false
		}
	}
	return true
}
