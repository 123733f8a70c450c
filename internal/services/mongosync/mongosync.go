package mongosync

import (
	"context"
	"errors"
	"fmt"

	"mongosync/internal/config"
	"mongosync/internal/selector"
	"mongosync/internal/storage/mirror"
	"mongosync/internal/storage/mongo"
	"mongosync/internal/storage/snapshot"
	"mongosync/pkg/document"
	"mongosync/pkg/logger"
	"mongosync/pkg/storage/generic"
)

var (
	// ErrDirectoryNotFound aborts an import whose database directory is missing
	ErrDirectoryNotFound = snapshot.ErrDirectoryNotFound
	// ErrNotDirectory aborts a run whose database path is a plain file
	ErrNotDirectory = snapshot.ErrNotDirectory
)

// SnapshotMirror copies a snapshot directory to and from remote storage
type SnapshotMirror interface {
	Push(database string, files []string) map[string]error
	Pull(database string, destDir string) ([]string, error)
}

type Service struct {
	db     generic.Database
	dir    *snapshot.Directory
	codec  *document.Codec
	mirror SnapshotMirror
	cfg    config.Config
}

// New creates a service over an already connected database. mirror may be nil.
func New(cfg config.Config, db generic.Database, codec *document.Codec, mirror SnapshotMirror) *Service {
	return &Service{
		db:     db,
		dir:    snapshot.New(cfg.BaseDir, cfg.Database),
		codec:  codec,
		mirror: mirror,
		cfg:    cfg,
	}
}

// Connect builds the MongoDB storage and the optional GCS mirror for cfg
func Connect(ctx context.Context, cfg config.Config) (*Service, error) {
	storage := mongo.New()
	if err := storage.Setup(ctx, cfg.ClientURI, cfg.Database); err != nil {
		return nil, &config.ConfigError{Option: config.OptClientURI, Msg: fmt.Sprintf("Invalid Client URI: %v", err)}
	}

	var snapshotMirror SnapshotMirror
	if cfg.GCSBucket != "" {
		m := mirror.New(cfg.GCSBucket, cfg.GCSPrefix)
		if err := m.Setup(ctx); err != nil {
			storage.Close()
			return nil, &config.ConfigError{Option: config.OptGCSBucket, Msg: err.Error()}
		}
		snapshotMirror = m
	}

	return New(cfg, storage, document.NewCodec(document.DefaultConfig()), snapshotMirror), nil
}

// Close releases the database connection and the mirror clients
func (s *Service) Close() error {
	var errs []error
	logger.Debug("closing database")
	if err := s.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close database: %w", err))
	}
	if closer, ok := s.mirror.(interface{ Close() error }); ok {
		logger.Debug("closing snapshot mirror")
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close mirror: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Run executes the pipeline selected by the configured mode. Only configuration
// and precondition failures are returned as errors; per-collection failures are
// part of the report.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	excludes := selector.ParseExcludes(s.cfg.Excludes)

	switch s.cfg.Mode {
	case config.ModeExport:
		logger.Info("starting export of database %s into %s", s.cfg.Database, s.dir.Path())
		collections, err := selector.ForExport(ctx, s.db, s.cfg.Collection, excludes)
		if err != nil {
			return nil, err
		}
		logger.Info("selected %d collections for export", len(collections))
		return s.Export(ctx, collections)
	case config.ModeImport:
		if s.cfg.Collection != "" {
			logger.Warn("--collection is ignored on import")
		}
		logger.Info("starting import of %s into database %s", s.dir.Path(), s.cfg.Database)
		return s.Import(ctx, excludes)
	default:
		return nil, &config.ConfigError{Msg: "Unsupported method."}
	}
}
