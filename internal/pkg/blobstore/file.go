package blobstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// FileStore keeps one JSON document per key under a data directory.
// It is the default backend when no database is configured.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads and decodes the blob for key into dst. Any failure leaves dst untouched.
func (s *FileStore) Load(_ context.Context, key string, dst any) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("blobstore: failed to read %q: %v", key, err)
		}
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		// Incompatible shape falls back to the caller's default.
		log.Printf("blobstore: failed to decode %q, using default: %v", key, err)
	}
}

// Save encodes v and writes it atomically (temp file + rename).
func (s *FileStore) Save(_ context.Context, key string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("blobstore: failed to encode %q: %v", key, err)
		return
	}

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		log.Printf("blobstore: failed to create temp file for %q: %v", key, err)
		return
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		log.Printf("blobstore: failed to write %q: %v", key, err)
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		log.Printf("blobstore: failed to close temp file for %q: %v", key, err)
		return
	}

	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		log.Printf("blobstore: failed to replace %q: %v", key, err)
	}
}
