package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage persists proof artifacts and hands back opaque reference strings.
// The task core never interprets a reference beyond storing and removing it.
type Storage interface {
	// Save writes the artifact and returns its public reference (e.g. /uploads/<name>).
	Save(taskID, filename string, data []byte) (string, error)

	// Remove deletes the artifact behind a reference. A missing file is not an error.
	Remove(ref string) error
}

// LocalStorage keeps artifacts in a directory served statically under /uploads.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir %q: %w", dir, err)
	}
	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) Save(taskID, filename string, data []byte) (string, error) {
	name := taskID + "_" + filepath.Base(filename)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write proof file: %w", err)
	}
	return "/uploads/" + name, nil
}

func (s *LocalStorage) Remove(ref string) error {
	name := strings.TrimPrefix(ref, "/uploads/")
	if name == "" || name == ref {
		// Not a reference we issued; nothing to remove.
		return nil
	}
	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove proof file: %w", err)
	}
	return nil
}

// Dir returns the directory backing the store, for static file serving.
func (s *LocalStorage) Dir() string {
	return s.dir
}
