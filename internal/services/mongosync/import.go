package mongosync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mongosync/internal/config"
	"mongosync/internal/selector"
	"mongosync/pkg/helper"
	"mongosync/pkg/logger"
)

// Import inserts every qualifying snapshot file of the database directory, one
// batch per file, in listing order. The directory must exist; a missing or
// non-directory path aborts before the database is touched.
func (s *Service) Import(ctx context.Context, excludes selector.Excludes) (*Report, error) {
	if s.mirror != nil {
		if _, err := s.mirror.Pull(s.cfg.Database, s.dir.Path()); err != nil {
			logger.Error("failed to pull snapshot from GCS: %v", err)
			return nil, fmt.Errorf("failed to pull snapshot: %w", err)
		}
	}

	if err := s.dir.Check(); err != nil {
		switch {
		case errors.Is(err, ErrDirectoryNotFound):
			logger.Error("No database in local directory named \"%s\".", s.dir.Path())
		case errors.Is(err, ErrNotDirectory):
			logger.Error("Database must be a folder.")
		}
		return nil, err
	}

	names, err := s.dir.List()
	if err != nil {
		return nil, err
	}
	collections := selector.ForImport(names, excludes)
	logger.Info("selected %d snapshot files for import", len(collections))

	report := &Report{Mode: config.ModeImport}
	start := time.Now()
	for _, name := range collections {
		report.Units = append(report.Units, s.importFile(ctx, name))
	}
	report.Elapsed = time.Since(start)
	logger.Info("Completed import in %dms", helper.Millis(report.Elapsed))
	return report, nil
}

func (s *Service) importFile(ctx context.Context, name string) UnitResult {
	start := time.Now()
	fileName := selector.FileName(name)
	unit := UnitResult{Name: name, File: s.dir.FilePath(name)}

	fail := func(err error) UnitResult {
		logger.Error("Failed to import %s: %v", fileName, err)
		unit.Err = err
		unit.Duration = time.Since(start)
		return unit
	}

	data, err := s.dir.Read(fileName)
	if err != nil {
		return fail(err)
	}

	// decode everything before inserting anything
	docs, err := s.codec.DecodeSnapshot(fileName, data)
	if err != nil {
		return fail(err)
	}

	inserted, err := s.db.Collection(name).InsertMany(ctx, docs)
	if err != nil {
		unit.Count = inserted
		if inserted > 0 {
			logger.Warn("%d of %d documents from %s were inserted before the failure", inserted, len(docs), fileName)
		}
		return fail(fmt.Errorf("collection %s: %w", name, err))
	}

	unit.Count = inserted
	unit.Duration = time.Since(start)
	logger.Info("Inserted %d documents into %s", inserted, name)
	return unit
}
