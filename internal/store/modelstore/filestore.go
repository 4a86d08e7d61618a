// Package modelstore persists one fitted model bundle per job field.
//
// The on-disk layout is a directory of JSON artifacts, model_<field>.json.
// Writes go through a temp file followed by rename, so a concurrent Load
// observes either the previous bundle or the new one in full. Concurrent
// saves for the same field race last-writer-wins; callers needing strict
// ordering must serialise externally.
package modelstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"resumemash/internal/store"
	"resumemash/pkg/classifier"
)

// FileStore implements store.ModelStore on the local filesystem.
type FileStore struct {
	dir string
}

var _ store.ModelStore = (*FileStore)(nil)

// NewFileStore creates the models directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("model store directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create model store directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// fieldPath builds a filesystem-safe artifact path for a job field.
// "software" -> <dir>/model_software.json
func (s *FileStore) fieldPath(jobField string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, jobField)
	return filepath.Join(s.dir, "model_"+safe+".json")
}

// Save replaces the current bundle for jobField. The bundle lands under a
// temp name first and is moved into place with a single rename.
func (s *FileStore) Save(ctx context.Context, jobField string, bundle *classifier.Bundle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := bundle.Marshal()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "model_*.tmp")
	if err != nil {
		return fmt.Errorf("create temp model file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write model bundle: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp model file: %w", err)
	}

	dest := s.fieldPath(jobField)
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace model bundle for %q: %w", jobField, err)
	}

	log.Debugf("Saved model bundle for field %q (version=%s, samples=%d)",
		jobField, bundle.Version, bundle.SampleCount)
	return nil
}

// Load returns the current bundle for jobField, or store.ErrNotFound when no
// bundle has ever been persisted. A present-but-unreadable artifact is an
// error, never silently treated as absent.
func (s *FileStore) Load(ctx context.Context, jobField string) (*classifier.Bundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.fieldPath(jobField))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("read model bundle for %q: %w", jobField, err)
	}
	bundle, err := classifier.UnmarshalBundle(data)
	if err != nil {
		return nil, fmt.Errorf("corrupt model bundle for %q: %w", jobField, err)
	}
	return bundle, nil
}
