package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"weathercompare.app/internal/models"
	"weathercompare.app/internal/store"
	"weathercompare.app/internal/visualcrossing"
)

// newLoadedModel returns a model with a day of hourly data already
// ingested and the display state active.
func newLoadedModel(t *testing.T) Model {
	t.Helper()

	s := store.New(nil)
	s.SetCalendarLocation(time.UTC)

	base := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC).Unix()
	payload := &visualcrossing.Payload{
		ResolvedAddress: "Indianapolis, IN 46220, United States",
		Timezone:        "America/Indiana/Indianapolis",
		Days:            []visualcrossing.Day{{}},
	}
	for h := 0; h < 24; h++ {
		payload.Days[0].Hours = append(payload.Days[0].Hours, visualcrossing.Hour{
			DatetimeEpoch: base + int64(h)*3600,
			Temp:          70 + float64(h),
		})
	}
	if err := s.SetWeatherData("46220", payload); err != nil {
		t.Fatalf("SetWeatherData() error = %v", err)
	}
	s.SetSelectedLocation("46220")

	m := NewModel(s, models.HourWindow{StartHour: 6, EndHour: 18}, "46220", "")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)
	updated, _ = m.Update(dataLoadedMsg{location: "46220"})
	return updated.(Model)
}

func TestNewModel(t *testing.T) {
	s := store.New(nil)
	m := NewModel(s, models.HourWindow{StartHour: 6, EndHour: 18}, "", "")

	if m.state != StateLoading {
		t.Errorf("NewModel() state = %v, want StateLoading", m.state)
	}
	if m.activePane != PaneChart {
		t.Errorf("NewModel() activePane = %v, want PaneChart", m.activePane)
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	s := store.New(nil)
	m := NewModel(s, models.HourWindow{StartHour: 6, EndHour: 18}, "", "")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	if m.width != 120 {
		t.Errorf("After WindowSizeMsg, width = %d, want 120", m.width)
	}
	if m.height != 40 {
		t.Errorf("After WindowSizeMsg, height = %d, want 40", m.height)
	}
}

func TestModel_Update_ErrorMsg(t *testing.T) {
	s := store.New(nil)
	m := NewModel(s, models.HourWindow{StartHour: 6, EndHour: 18}, "", "")

	updated, _ := m.Update(errMsg{err: errors.New("boom")})
	m = updated.(Model)

	if m.state != StateError {
		t.Errorf("After errMsg, state = %v, want StateError", m.state)
	}
	if m.err == nil {
		t.Error("After errMsg, err should not be nil")
	}
}

func TestModel_Update_DataLoaded(t *testing.T) {
	m := newLoadedModel(t)

	if m.state != StateDisplay {
		t.Errorf("After dataLoadedMsg, state = %v, want StateDisplay", m.state)
	}
	if m.store.SelectedTimeRange() == nil {
		t.Error("After load, selected range should default to the availability span")
	}
	if len(m.availableDates) != 1 {
		t.Errorf("availableDates = %d, want 1 fully covered day", len(m.availableDates))
	}
	if !m.chartReady {
		t.Error("chart should be ready once data is loaded")
	}
}

func TestModel_Update_DataLoadedError(t *testing.T) {
	s := store.New(nil)
	m := NewModel(s, models.HourWindow{StartHour: 6, EndHour: 18}, "", "")

	updated, _ := m.Update(dataLoadedMsg{err: errors.New("fetch failed")})
	m = updated.(Model)

	if m.state != StateError {
		t.Errorf("After failed load, state = %v, want StateError", m.state)
	}
}

func TestModel_CtrlC_Quits(t *testing.T) {
	s := store.New(nil)
	m := NewModel(s, models.HourWindow{StartHour: 6, EndHour: 18}, "", "")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("Expected Ctrl+C to return quit command")
	}
}

func TestModel_DisplayKeys_PaneSwitch(t *testing.T) {
	m := newLoadedModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.activePane != PaneDates {
		t.Errorf("After tab, activePane = %v, want PaneDates", m.activePane)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.activePane != PaneChart {
		t.Errorf("After second tab, activePane = %v, want PaneChart", m.activePane)
	}
}

func TestModel_DisplayKeys_BufferAdjust(t *testing.T) {
	m := newLoadedModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'B'}})
	m = updated.(Model)
	if got := m.store.BufferHours(); got != 3 {
		t.Errorf("After B, buffer = %v, want 3", got)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	m = updated.(Model)
	if got := m.store.BufferHours(); got != 2 {
		t.Errorf("After b, buffer = %v, want 2", got)
	}

	// Buffer never goes negative
	for i := 0; i < 5; i++ {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
		m = updated.(Model)
	}
	if got := m.store.BufferHours(); got != 0 {
		t.Errorf("Buffer floor = %v, want 0", got)
	}
}

func TestModel_DisplayKeys_WindowAdjust(t *testing.T) {
	m := newLoadedModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}})
	m = updated.(Model)
	if m.window.StartHour != 5 {
		t.Errorf("After [, StartHour = %d, want 5", m.window.StartHour)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'}'}})
	m = updated.(Model)
	if m.window.EndHour != 19 {
		t.Errorf("After }, EndHour = %d, want 19", m.window.EndHour)
	}
}

func TestModel_DisplayKeys_ToggleAndClearDates(t *testing.T) {
	m := newLoadedModel(t)

	// Focus the dates pane, then toggle the highlighted date
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if got := len(m.store.SelectedDates()); got != 1 {
		t.Fatalf("After enter, selected dates = %d, want 1", got)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	m = updated.(Model)
	if got := len(m.store.SelectedDates()); got != 0 {
		t.Errorf("After c, selected dates = %d, want 0", got)
	}
}

func TestModel_ErrorState_ReturnsToSearch(t *testing.T) {
	s := store.New(nil)
	m := NewModel(s, models.HourWindow{StartHour: 6, EndHour: 18}, "", "")

	updated, _ := m.Update(errMsg{err: errors.New("boom")})
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)

	if m.state != StateSearch {
		t.Errorf("After keypress in error state, state = %v, want StateSearch", m.state)
	}
	if m.err != nil {
		t.Error("Returning to search should clear the error")
	}
}

func TestModel_View_States(t *testing.T) {
	m := newLoadedModel(t)

	if view := m.View(); view == "" {
		t.Error("Display view should not be empty")
	}

	m.state = StateSearch
	if view := m.View(); view == "" {
		t.Error("Search view should not be empty")
	}

	m.state = StateError
	m.err = errors.New("boom")
	if view := m.View(); view == "" {
		t.Error("Error view should not be empty")
	}
}
