// Package config loads application configuration from the environment,
// with optional overrides from a .env file.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"weathercompare.app/internal/apperrors"
)

// Config represents the application configuration structure
type Config struct {
	Weather WeatherConfig
	Cache   CacheConfig
	Log     LogConfig
}

type WeatherConfig struct {
	APIKey             string  `envconfig:"WEATHER_API_KEY"`
	BaseURL            string  `envconfig:"WEATHER_API_BASE_URL" default:"https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services"`
	SampleDir          string  `envconfig:"WEATHER_SAMPLE_DIR" default:"data"`
	BufferHours        float64 `envconfig:"WEATHER_BUFFER_HOURS" default:"2"`
	PreferredStartHour int     `envconfig:"WEATHER_PREFERRED_START_HOUR" default:"6"`
	PreferredEndHour   int     `envconfig:"WEATHER_PREFERRED_END_HOUR" default:"18"`
}

type CacheConfig struct {
	Path       string `envconfig:"CACHE_PATH" default:"data/weather-compare.db"`
	TTLMinutes int    `envconfig:"CACHE_TTL_MINUTES" default:"60"`
	Enabled    bool   `envconfig:"CACHE_ENABLED" default:"true"`
}

// TTL returns the cache expiry as a duration
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

type LogConfig struct {
	FilePath string `envconfig:"LOG_FILE_PATH" default:"logs/weather-compare.log"`
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment. A missing .env file is
// not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, apperrors.Wrap(apperrors.ConfigurationError, "processing environment", err)
	}

	return &cfg, nil
}
