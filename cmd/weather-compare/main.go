package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"weathercompare.app/internal/cache"
	"weathercompare.app/internal/config"
	"weathercompare.app/internal/logger"
	"weathercompare.app/internal/models"
	"weathercompare.app/internal/store"
	"weathercompare.app/internal/ui"
	"weathercompare.app/internal/visualcrossing"
)

func main() {
	datasetKey := flag.String("dataset", "", "Sample dataset key to load at startup (default: first registry entry)")
	location := flag.String("location", "", "Location to fetch from the weather API at startup (requires WEATHER_API_KEY)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Log.FilePath, cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	client := visualcrossing.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.Weather.SampleDir)

	st := store.New(client)
	st.SetBufferHours(cfg.Weather.BufferHours)

	if cfg.Cache.Enabled {
		payloadCache, err := cache.Open(cfg.Cache.Path, cfg.Cache.TTL())
		if err != nil {
			logger.Get().Warnw("opening payload cache, continuing without it", "path", cfg.Cache.Path, "error", err)
		} else {
			st.SetCache(payloadCache)
			defer payloadCache.Close()
		}
	}

	window := models.HourWindow{
		StartHour: cfg.Weather.PreferredStartHour,
		EndHour:   cfg.Weather.PreferredEndHour,
	}

	p := tea.NewProgram(ui.NewModel(st, window, *datasetKey, *location), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
