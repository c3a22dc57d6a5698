package kvstore

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type fileStore struct {
	dir string
}

var _ Store = (*fileStore)(nil)

// OpenFile returns a Store keeping one JSON file per key under dir,
// creating dir if needed.
func OpenFile(dir string) (*fileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating data dir %q", dir)
	}
	return &fileStore{dir: dir}, nil
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *fileStore) Get(_ context.Context, key string) ([]byte, error) {
	val, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "reading %q", key)
	}
	return val, nil
}

func (s *fileStore) Set(_ context.Context, key string, value []byte) error {
	// write-then-rename so a crash mid-write cannot corrupt the stored blob
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return errors.Wrapf(err, "writing %q", key)
	}
	return errors.Wrapf(os.Rename(tmp, s.path(key)), "replacing %q", key)
}
