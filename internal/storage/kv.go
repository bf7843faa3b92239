package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by KV.Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// KV is a whole-value key-value store. Values are opaque blobs that are
// always read and written in full.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Options selects and locates a KV backend.
type Options struct {
	Backend string
	// Dir holds one file per key for the file backend, and the database
	// file for the sqlite backend.
	Dir        string
	SQLiteFile string
}

// DefaultDir is the per-user data directory.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".calc-wizard"), nil
}

// Open creates the KV backend described by opts.
func Open(opts Options) (KV, error) {
	if opts.Backend == BackendMemory {
		return NewMemoryKV(), nil
	}

	dir := opts.Dir
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data directory: %w", err)
		}
		dir = d
	}

	switch opts.Backend {
	case "", BackendFile:
		return NewFileKV(dir)
	case BackendSQLite:
		name := opts.SQLiteFile
		if name == "" {
			name = "calc-wizard.db"
		}
		if !filepath.IsAbs(name) {
			name = filepath.Join(dir, name)
		}
		return NewSQLiteKV(name)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
