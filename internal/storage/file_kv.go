package storage

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/SzymonSkrzypczyk/calc-wizard/internal/logger"
)

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileKV stores each key as a JSON file in a directory.
type FileKV struct {
	dir string
}

// NewFileKV creates the directory if needed and returns a FileKV over it.
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "create data directory %s", dir)
	}
	return &FileKV{dir: dir}, nil
}

// Path returns the file backing key.
func (s *FileKV) Path(key string) string {
	name := strings.Trim(unsafeKeyChars.ReplaceAllString(key, "_"), "_.")
	if name == "" {
		name = "default"
	}
	return filepath.Join(s.dir, name+".json")
}

func (s *FileKV) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read key %q", key)
	}
	return data, nil
}

// Set backs up the previous value and replaces it atomically.
func (s *FileKV) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := s.Path(key)
	if err := Backup(path); err != nil {
		// Log error but continue saving
		logger.L().Warn("backup failed", zap.String("path", path), zap.Error(err))
	}
	if err := WriteAtomic(path, value); err != nil {
		return errors.Wrapf(err, "write key %q", key)
	}
	return nil
}

func (s *FileKV) Close() error {
	return nil
}
