package mirror

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"mongosync/internal/network/gcpimpl"
	"mongosync/internal/selector"
	"mongosync/pkg/helper"
	"mongosync/pkg/logger"
	"mongosync/pkg/network/gcplayer"
)

// Mirror copies snapshot directories to and from gs://<bucket>/<prefix>/<database>/
type Mirror struct {
	gcsBucket string
	prefix    string

	// Clients
	gcpLayer gcplayer.GcpLayer
}

func New(gcsBucket string, prefix string) *Mirror {
	return &Mirror{
		gcsBucket: gcsBucket,
		prefix:    prefix,
	}
}

// Setup connects to the bucket through the GCS transport
func (m *Mirror) Setup(ctx context.Context) error {
	if m.gcsBucket == "" {
		return fmt.Errorf("gcsBucket is required for the snapshot mirror")
	}
	m.gcpLayer = gcpimpl.New()
	if err := m.gcpLayer.Setup(ctx, m.gcsBucket); err != nil {
		return fmt.Errorf("failed to setup GCS layer: %w", err)
	}
	return nil
}

func (m *Mirror) Close() error {
	if m.gcpLayer == nil {
		return nil
	}
	return m.gcpLayer.Close()
}

func (m *Mirror) objectPrefix(database string) string {
	return helper.ObjectName(m.prefix, database) + "/"
}

// Push uploads files one by one and returns the failure of each file that
// could not be uploaded, keyed by local path.
func (m *Mirror) Push(database string, files []string) map[string]error {
	failures := map[string]error{}
	for _, file := range files {
		objectName := helper.ObjectName(m.prefix, database, filepath.Base(file))
		logger.Info("uploading %s to gs://%s/%s", file, m.gcsBucket, objectName)
		if err := m.gcpLayer.UploadToGcs(objectName, file); err != nil {
			logger.Error("failed to upload %s: %v", file, err)
			failures[file] = err
			continue
		}
	}
	logger.Info("uploaded %d of %d snapshot files to GCS", len(files)-len(failures), len(files))
	return failures
}

// Pull downloads every snapshot file of database into destDir and returns the local paths
func (m *Mirror) Pull(database string, destDir string) ([]string, error) {
	prefix := m.objectPrefix(database)
	objects, err := m.gcpLayer.ListObjects(prefix)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", destDir, err)
	}

	var files []string
	for _, objectName := range objects {
		base := path.Base(objectName)
		// only direct children of the database prefix
		if path.Dir(objectName)+"/" != prefix {
			logger.Debug("skipping nested object %s", objectName)
			continue
		}
		if _, ok := selector.CollectionName(base); !ok {
			logger.Debug("skipping non-json object %s", objectName)
			continue
		}

		dest := filepath.Join(destDir, base)
		logger.Info("downloading gs://%s/%s to %s", m.gcsBucket, objectName, dest)
		if err := m.gcpLayer.DownloadFromGcs(objectName, dest); err != nil {
			return files, err
		}
		files = append(files, dest)
	}
	logger.Info("downloaded %d snapshot files from GCS", len(files))
	return files, nil
}
