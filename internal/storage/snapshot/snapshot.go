package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mongosync/internal/selector"
	"mongosync/pkg/logger"
)

var (
	// ErrDirectoryNotFound is returned when the database directory does not exist
	ErrDirectoryNotFound = errors.New("database directory not found")
	// ErrNotDirectory is returned when the database path is not a directory
	ErrNotDirectory = errors.New("database path is not a directory")
	// ErrInvalidName is returned for collection names that would leave the database directory
	ErrInvalidName = errors.New("invalid collection name")
)

// Directory is the on-disk snapshot of one database: <baseDir>/<database>/<collection>.json
type Directory struct {
	path string
}

func New(baseDir string, database string) *Directory {
	return &Directory{path: filepath.Join(baseDir, database)}
}

func (d *Directory) Path() string {
	return d.path
}

// FilePath is the snapshot file of a collection
func (d *Directory) FilePath(collection string) string {
	return filepath.Join(d.path, selector.FileName(collection))
}

// Ensure creates the directory if absent. A pre-existing directory is not an error.
func (d *Directory) Ensure() (bool, error) {
	info, err := os.Stat(d.path)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s: %w", d.path, ErrNotDirectory)
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat %s: %w", d.path, err)
	}
	if err := os.MkdirAll(d.path, 0755); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", d.path, err)
	}
	return true, nil
}

// Check verifies the directory exists and is a directory
func (d *Directory) Check() error {
	info, err := os.Stat(d.path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", d.path, ErrDirectoryNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", d.path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", d.path, ErrNotDirectory)
	}
	return nil
}

func checkName(collection string) error {
	if collection == "" || collection == "." || collection == ".." ||
		strings.ContainsRune(collection, '/') || strings.ContainsRune(collection, filepath.Separator) {
		return fmt.Errorf("%q: %w", collection, ErrInvalidName)
	}
	return nil
}

// Touch creates the collection file if it does not exist yet
func (d *Directory) Touch(collection string) (bool, error) {
	if err := checkName(collection); err != nil {
		return false, err
	}
	path := d.FilePath(collection)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if err == nil {
		return true, f.Close()
	}
	if os.IsExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to create %s: %w", path, err)
}

// Write replaces the full content of the collection file
func (d *Directory) Write(collection string, data []byte) error {
	if err := checkName(collection); err != nil {
		return err
	}
	path := d.FilePath(collection)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Debug("wrote %d bytes to %s", len(data), path)
	return nil
}

// List returns the names of the regular entries of the directory. Sub-directories are skipped.
func (d *Directory) List() ([]string, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", d.path, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			logger.Debug("skipping sub-directory %s", entry.Name())
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Read returns the content of a file inside the directory
func (d *Directory) Read(fileName string) ([]byte, error) {
	path := filepath.Join(d.path, fileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
