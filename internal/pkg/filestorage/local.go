package filestorage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/yigit/roster/internal/pkg/logger"
)

// LocalStorage keeps roster files in a directory on the local filesystem.
type LocalStorage struct {
	basePath string // directory holding course.csv, instructor.csv and students.csv
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
// The directory is created when missing.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if basePath == "" {
		basePath = "."
	}
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create data directory")
		return nil, fmt.Errorf("failed to create data directory %s: %w", basePath, err)
	}
	logger.Debug().Str("path", basePath).Msg("Data directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// GetFullPath returns the full filesystem path for a stored file name
func (ls *LocalStorage) GetFullPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(ls.basePath, name)
}

// Open opens a stored file for reading
func (ls *LocalStorage) Open(name string) (io.ReadCloser, error) {
	return os.Open(ls.GetFullPath(name))
}

// Replace writes the new content to a uniquely named temporary file next to
// the target and renames it into place. The target is either fully replaced
// or left untouched.
func (ls *LocalStorage) Replace(name string, write func(w io.Writer) error) error {
	dstPath := ls.GetFullPath(name)
	tmpPath := filepath.Join(filepath.Dir(dstPath), "."+filepath.Base(dstPath)+"."+uuid.New().String()+".tmp")

	tmp, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	bw := bufio.NewWriter(tmp)
	if err := write(bw); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, dstPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}

	logger.Debug().Str("path", dstPath).Msg("File replaced")
	return nil
}
