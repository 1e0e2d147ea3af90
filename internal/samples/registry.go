// Package samples maps human-readable dataset keys to the sample
// weather payloads bundled with the application.
package samples

import (
	"weathercompare.app/internal/apperrors"
)

// Dataset pairs a location key with the bundled resource that holds its
// sample payload
type Dataset struct {
	Location string // ZIP-derived location key, e.g. "46220"
	Path     string // resource path relative to the sample data directory
}

// Registry lists the bundled sample datasets. The first entry is the
// default when no dataset key is given.
var Registry = []Dataset{
	{Location: "46220", Path: "46220.json"},
	{Location: "70601", Path: "70601.json"},
}

// Resolve returns the dataset for key. An empty key resolves to the
// first registry entry.
func Resolve(key string) (Dataset, error) {
	if key == "" {
		if len(Registry) == 0 {
			return Dataset{}, apperrors.New(apperrors.DatasetKeyError, "no sample datasets registered")
		}
		return Registry[0], nil
	}

	for _, dataset := range Registry {
		if dataset.Location == key {
			return dataset, nil
		}
	}

	return Dataset{}, apperrors.NewDatasetKeyError(key)
}
