package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileStore persists session values as a YAML map so that they survive
// between CLI invocations. Writes go through a temp file and rename.
type FileStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
}

// OpenFile loads the session file at path. A missing file yields an empty
// session.
func OpenFile(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("session file path empty")
	}
	fs := &FileStore{path: path, values: map[string]string{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, fmt.Errorf("reading session file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fs.values); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", path, err)
	}
	if fs.values == nil {
		fs.values = map[string]string{}
	}
	return fs, nil
}

// Path returns the backing file path.
func (fs *FileStore) Path() string { return fs.path }

func (fs *FileStore) Get(key string) (string, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	v, ok := fs.values[key]
	return v, ok
}

func (fs *FileStore) Set(key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.values[key] = value
	return fs.save()
}

// Clear drops every key and removes the backing file.
func (fs *FileStore) Clear() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.values = map[string]string{}
	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}

// save must be called with fs.mu held.
func (fs *FileStore) save() error {
	data, err := yaml.Marshal(fs.values)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		os.Remove(tmp) //nolint:errcheck
		return fmt.Errorf("replacing session file: %w", err)
	}
	return nil
}
