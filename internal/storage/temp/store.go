// Package temp provides the per-request scoped temporary file store backing
// resume ingestion. Every saved file gets a collision-free generated name and
// must be removed by the caller before the request ends, success or failure.
package temp

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resumelens/internal/domain"
)

// Store writes uploads to uniquely named files under a fixed directory.
type Store struct {
	dir string
	log *zap.Logger
}

// File is one saved upload. Remove releases it; calling Remove more than once
// is harmless.
type File struct {
	Path string
	Size int64
	log  *zap.Logger
}

// NewStore creates a Store rooted at dir, creating it if needed.
func NewStore(dir string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Dir returns the directory the store writes under.
func (s *Store) Dir() string {
	return s.dir
}

// Save streams r to a new uniquely named file, enforcing maxBytes while
// copying. The upload is never buffered in memory as a whole. If the stream
// exceeds maxBytes the partial file is removed and domain.ErrPayloadTooLarge
// is returned.
func (s *Store) Save(r io.Reader, maxBytes int64) (*File, error) {
	name := fmt.Sprintf("resume-%d-%s.upload", time.Now().UnixNano(), uuid.NewString())
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}

	// Copy one byte past the cap so an oversized stream is distinguishable
	// from one that is exactly at the limit.
	written, err := io.Copy(f, io.LimitReader(r, maxBytes+1))
	closeErr := f.Close()
	if err != nil {
		s.discard(path)
		return nil, fmt.Errorf("writing temp file: %w", err)
	}
	if closeErr != nil {
		s.discard(path)
		return nil, fmt.Errorf("closing temp file: %w", closeErr)
	}
	if written > maxBytes {
		s.discard(path)
		return nil, domain.ErrPayloadTooLarge
	}

	return &File{Path: path, Size: written, log: s.log}, nil
}

func (s *Store) discard(path string) {
	if err := os.Remove(path); err != nil {
		s.log.Warn("failed to discard partial temp file", zap.String("path", path), zap.Error(err))
	}
}

// Remove deletes the file. Failures are logged, never escalated: cleanup must
// not mask the primary result of a request.
func (f *File) Remove() {
	if f.Path == "" {
		return
	}
	if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
		f.log.Warn("failed to remove temp file", zap.String("path", f.Path), zap.Error(err))
	}
	f.Path = ""
}
