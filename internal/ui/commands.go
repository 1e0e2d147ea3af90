package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"weathercompare.app/internal/samples"
	"weathercompare.app/internal/store"
)

// loadSampleData loads a bundled sample dataset in the background. An
// empty key loads the default (first) registry entry.
func loadSampleData(s *store.Store, datasetKey string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := s.LoadSampleData(ctx, datasetKey)
		return dataLoadedMsg{location: s.SelectedLocation(), err: err}
	}
}

// loadWeatherData fetches live weather for a location in the background
func loadWeatherData(s *store.Store, location string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := s.LoadWeatherData(ctx, location)
		return dataLoadedMsg{location: location, err: err}
	}
}

// loadQuery resolves a search query: a known sample dataset key loads
// the bundled payload, anything else goes to the live API.
func loadQuery(s *store.Store, query string) tea.Cmd {
	if _, err := samples.Resolve(query); err == nil {
		return loadSampleData(s, query)
	}
	return loadWeatherData(s, query)
}
