package visualcrossing

import (
	"fmt"

	"weathercompare.app/internal/apperrors"
	"weathercompare.app/internal/models"
)

// ConvertHour converts a raw hourly reading into a WeatherMetric using
// the hour's own epoch timestamp. Pure; fails with a ConversionError
// when the reading carries no usable timestamp.
func ConvertHour(raw Hour, epoch int64) (models.WeatherMetric, error) {
	if epoch <= 0 {
		return models.WeatherMetric{}, apperrors.NewConversionError(
			fmt.Sprintf("hourly reading %q has no epoch timestamp", raw.Datetime))
	}

	return models.WeatherMetric{
		Timestamp:  epoch,
		Temp:       raw.Temp,
		FeelsLike:  raw.FeelsLike,
		Humidity:   raw.Humidity,
		DewPoint:   raw.Dew,
		Precip:     raw.Precip,
		PrecipProb: raw.PrecipProb,
		Snow:       raw.Snow,
		WindSpeed:  raw.WindSpeed,
		WindDir:    raw.WindDir,
		Pressure:   raw.Pressure,
		CloudCover: raw.CloudCover,
		Visibility: raw.Visibility,
		UVIndex:    raw.UVIndex,
		Conditions: raw.Conditions,
		Icon:       raw.Icon,
	}, nil
}
