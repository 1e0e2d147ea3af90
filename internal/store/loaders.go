package store

import (
	"context"
	"encoding/json"

	"weathercompare.app/internal/apperrors"
	"weathercompare.app/internal/samples"
	"weathercompare.app/internal/visualcrossing"
)

// Fetcher is the fetch capability consumed by the loaders
type Fetcher interface {
	// FetchSample retrieves a bundled sample payload by resource path
	FetchSample(ctx context.Context, path string) ([]byte, error)

	// FetchTimeline retrieves the hourly timeline payload for a location
	FetchTimeline(ctx context.Context, location string) ([]byte, error)
}

// PayloadCache caches raw payload JSON between runs
type PayloadCache interface {
	Get(location string) ([]byte, bool, error)
	Put(location string, payload []byte) error
}

// LoadSampleData resolves datasetKey against the sample registry (empty
// key means the first entry), fetches and decodes the payload, then
// ingests it and selects its location. Any failure is logged, returned,
// and leaves prior state untouched.
func (s *Store) LoadSampleData(ctx context.Context, datasetKey string) error {
	dataset, err := samples.Resolve(datasetKey)
	if err != nil {
		s.log.Errorw("resolving sample dataset", "key", datasetKey, "error", err)
		return err
	}

	body, err := s.fetcher.FetchSample(ctx, dataset.Path)
	if err != nil {
		s.log.Errorw("fetching sample dataset", "path", dataset.Path, "error", err)
		return err
	}

	payload, err := decodePayload(body)
	if err != nil {
		s.log.Errorw("decoding sample dataset", "path", dataset.Path, "error", err)
		return err
	}

	if err := s.SetWeatherData(dataset.Location, payload); err != nil {
		s.log.Errorw("ingesting sample dataset", "location", dataset.Location, "error", err)
		return err
	}
	s.SetSelectedLocation(dataset.Location)

	s.log.Infow("loaded sample dataset", "location", dataset.Location, "metrics", len(s.weatherByLocation[dataset.Location].Metrics))
	return nil
}

// LoadWeatherData fetches the live timeline for a location (serving a
// fresh payload cache entry when one exists), decodes it, ingests it,
// and selects the location. Overlapping loads for the same location are
// not serialized; the last one to complete wins.
func (s *Store) LoadWeatherData(ctx context.Context, location string) error {
	body, cached, err := s.fetchTimeline(ctx, location)
	if err != nil {
		s.log.Errorw("fetching weather data", "location", location, "error", err)
		return err
	}

	payload, err := decodePayload(body)
	if err != nil {
		s.log.Errorw("decoding weather data", "location", location, "error", err)
		return err
	}

	if err := s.SetWeatherData(location, payload); err != nil {
		s.log.Errorw("ingesting weather data", "location", location, "error", err)
		return err
	}
	s.SetSelectedLocation(location)

	s.log.Infow("loaded weather data", "location", location, "cached", cached)
	return nil
}

// fetchTimeline consults the payload cache before going to the network.
// Cache failures are logged and degrade to a plain fetch.
func (s *Store) fetchTimeline(ctx context.Context, location string) ([]byte, bool, error) {
	if s.cache != nil {
		body, ok, err := s.cache.Get(location)
		if err != nil {
			s.log.Warnw("payload cache read failed", "location", location, "error", err)
		} else if ok {
			return body, true, nil
		}
	}

	body, err := s.fetcher.FetchTimeline(ctx, location)
	if err != nil {
		return nil, false, err
	}

	if s.cache != nil {
		if err := s.cache.Put(location, body); err != nil {
			s.log.Warnw("payload cache write failed", "location", location, "error", err)
		}
	}

	return body, false, nil
}

func decodePayload(body []byte) (*visualcrossing.Payload, error) {
	var payload visualcrossing.Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperrors.NewDecodeError("decoding weather payload", err)
	}
	return &payload, nil
}
