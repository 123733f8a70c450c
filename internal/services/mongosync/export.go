package mongosync

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"mongosync/internal/config"
	"mongosync/pkg/document"
	"mongosync/pkg/helper"
	"mongosync/pkg/logger"
)

// Export writes every collection to <database>/<collection>.json, in order.
// A failing collection is recorded and skipped; the only returned error is a
// database directory that cannot be created.
func (s *Service) Export(ctx context.Context, collections []string) (*Report, error) {
	created, err := s.dir.Ensure()
	if err != nil {
		logger.Error("Failed to create the folder for the database: %v", err)
		return nil, fmt.Errorf("failed to create the folder for the database: %w", err)
	}
	if created {
		logger.Info("Successfully created the folder for the database.")
	} else {
		logger.Info("Database already exists in current directory.")
	}

	report := &Report{Mode: config.ModeExport}
	start := time.Now()

	var written []string
	for _, name := range collections {
		unit := s.exportCollection(ctx, name)
		if unit.OK() {
			written = append(written, unit.File)
		}
		report.Units = append(report.Units, unit)
	}
	report.Elapsed = time.Since(start)
	logger.Info("Completed export in %dms", helper.Millis(report.Elapsed))

	if s.mirror != nil && len(written) > 0 {
		report.MirrorErrors = s.mirror.Push(s.cfg.Database, written)
	}
	return report, nil
}

func (s *Service) exportCollection(ctx context.Context, name string) UnitResult {
	start := time.Now()
	unit := UnitResult{Name: name, File: s.dir.FilePath(name)}
	fileName := filepath.Base(unit.File)

	fail := func(err error) UnitResult {
		logger.Error("Failed to save %s: %v", name, err)
		unit.Err = fmt.Errorf("collection %s: %w", name, err)
		unit.Duration = time.Since(start)
		return unit
	}

	created, err := s.dir.Touch(name)
	if err != nil {
		logger.Error("Failed to create %s", fileName)
		return fail(err)
	}
	if created {
		logger.Info("Created %s", fileName)
	} else {
		logger.Info("%s already existed.", fileName)
	}

	var elements []json.RawMessage
	err = s.db.Collection(name).Find(ctx, func(doc document.Document) error {
		raw, err := s.codec.Encode(doc)
		if err != nil {
			return fmt.Errorf("failed to encode document %d: %w", len(elements), err)
		}
		elements = append(elements, raw)
		return nil
	})
	if err != nil {
		return fail(err)
	}

	data, err := s.codec.MarshalArray(elements)
	if err != nil {
		return fail(err)
	}
	if err := s.dir.Write(name, data); err != nil {
		return fail(err)
	}

	unit.Count = len(elements)
	unit.Duration = time.Since(start)
	logger.Info("Exported %d documents from %s", unit.Count, name)
	return unit
}
