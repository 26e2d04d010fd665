package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileStore persists the session as a TOML file under the user's config
// directory, the headless equivalent of the browser's local storage.
type FileStore struct {
	path string
}

// DefaultPath returns the session file location under the OS config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "benjour", "session.toml"), nil
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted session. A missing file is an empty session,
// not an error.
func (f *FileStore) Load() (Session, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Session{}, nil
		}
		return Session{}, fmt.Errorf("read session file: %w", err)
	}

	var s Session
	if err := toml.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("parse session file: %w", err)
	}
	return s, nil
}

// Save writes the session, creating directories as needed. The file is
// written 0600 since it carries the bearer token.
func (f *FileStore) Save(s Session) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Clear removes the session file. A missing file is already cleared.
func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
