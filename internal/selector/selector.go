package selector

import (
	"context"
	"fmt"
	"strings"

	"mongosync/pkg/logger"
)

// Ext is the file extension of a collection snapshot
const Ext = ".json"

// Excludes is the set of names skipped during an export or import run
type Excludes map[string]struct{}

// ParseExcludes splits a comma separated list. Names are kept verbatim, so
// " logs" and "logs" are different entries.
func ParseExcludes(csv string) Excludes {
	excludes := Excludes{}
	if csv == "" {
		return excludes
	}
	for _, name := range strings.Split(csv, ",") {
		excludes[name] = struct{}{}
	}
	return excludes
}

func (e Excludes) Contains(name string) bool {
	_, ok := e[name]
	return ok
}

// CollectionLister enumerates the collections of a database
type CollectionLister interface {
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// ForExport returns the collections to export. An explicit collection name is
// returned as the only entry and is never excluded.
func ForExport(ctx context.Context, db CollectionLister, explicit string, excludes Excludes) ([]string, error) {
	if explicit != "" {
		logger.Debug("exporting single collection %s", explicit)
		return []string{explicit}, nil
	}

	names, err := db.ListCollectionNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	selected := make([]string, 0, len(names))
	for _, name := range names {
		if excludes.Contains(name) {
			logger.Debug("excluding collection %s", name)
			continue
		}
		selected = append(selected, name)
	}
	return selected, nil
}

// ForImport maps snapshot file names to collection names, skipping non-JSON
// entries and excluded stems. Listing order is kept.
func ForImport(fileNames []string, excludes Excludes) []string {
	selected := make([]string, 0, len(fileNames))
	for _, fileName := range fileNames {
		stem, ok := CollectionName(fileName)
		if !ok {
			logger.Debug("skipping non-json entry %s", fileName)
			continue
		}
		if excludes.Contains(stem) {
			logger.Debug("excluding file %s", fileName)
			continue
		}
		selected = append(selected, stem)
	}
	return selected
}

// FileName is the snapshot file name of a collection
func FileName(collection string) string {
	return collection + Ext
}

// CollectionName strips the snapshot extension from a file name
func CollectionName(fileName string) (string, bool) {
	if !strings.HasSuffix(fileName, Ext) {
		return "", false
	}
	return strings.TrimSuffix(fileName, Ext), true
}
