package models

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("loading location: %v", err)
	}

	tests := []struct {
		name string
		t    time.Time
		loc  *time.Location
		want string
	}{
		{
			name: "late evening stays on its calendar day",
			t:    time.Date(2024, 7, 1, 23, 59, 59, 0, time.UTC),
			loc:  time.UTC,
			want: "2024-07-01",
		},
		{
			name: "midnight boundary",
			t:    time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC),
			loc:  time.UTC,
			want: "2024-07-02",
		},
		{
			name: "key follows the calendar location",
			t:    time.Date(2024, 7, 2, 3, 0, 0, 0, time.UTC), // 22:00 previous day in Chicago
			loc:  chicago,
			want: "2024-07-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayKey(tt.t, tt.loc); got != tt.want {
				t.Errorf("DayKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 7, 1, 17, 45, 12, 500, time.UTC)
	got := StartOfDay(in)
	want := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfDay() = %v, want %v", got, want)
	}
}

func TestHourWindow_Wraps(t *testing.T) {
	if (HourWindow{StartHour: 6, EndHour: 18}).Wraps() {
		t.Error("6-18 should not wrap")
	}
	if !(HourWindow{StartHour: 22, EndHour: 4}).Wraps() {
		t.Error("22-4 should wrap")
	}
	if (HourWindow{StartHour: 9, EndHour: 9}).Wraps() {
		t.Error("9-9 should not wrap")
	}
}

func TestWeatherMetric_Time(t *testing.T) {
	m := WeatherMetric{Timestamp: 1719806400} // 2024-07-01 04:00:00 UTC
	got := m.Time(time.UTC)
	want := time.Date(2024, 7, 1, 4, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Time() = %v, want %v", got, want)
	}
}
