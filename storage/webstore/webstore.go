// Package webstore persists small per-user collections, bookmarks and
// inclusion sets, as plain JSON string arrays under named keys. The
// filesystem is injected so tests run on an in-memory fs.
package webstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrInvalidKey is returned when a key is empty or sanitizes to nothing.
var ErrInvalidKey = fmt.Errorf("webstore: invalid key")

type Store struct {
	fs  afero.Fs
	dir string
}

func New(fs afero.Fs, dir string) *Store {
	return &Store{
		fs:  fs,
		dir: dir,
	}
}

// Load returns the values stored under the key. A key that was never saved
// is an empty collection, not an error.
func (s *Store) Load(key string) ([]string, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	b, err := afero.ReadFile(s.fs, path)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("webstore: read %s: %w", key, err)
	}

	var values []string
	if err := json.Unmarshal(b, &values); err != nil {
		return nil, fmt.Errorf("webstore: decode %s: %w", key, err)
	}

	return values, nil
}

// Save replaces the values stored under the key.
func (s *Store) Save(key string, values []string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if values == nil {
		values = []string{}
	}

	b, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("webstore: encode %s: %w", key, err)
	}

	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("webstore: mkdir: %w", err)
	}

	if err := afero.WriteFile(s.fs, path, b, 0o644); err != nil {
		return fmt.Errorf("webstore: write %s: %w", key, err)
	}

	return nil
}

// Toggle adds the value to the collection if absent and removes it if
// present. It returns whether the value is a member after the toggle.
func (s *Store) Toggle(key, value string) (bool, error) {
	values, err := s.Load(key)
	if err != nil {
		return false, err
	}

	next := make([]string, 0, len(values)+1)
	removed := false
	for _, v := range values {
		if v == value {
			removed = true
			continue
		}
		next = append(next, v)
	}
	if !removed {
		next = append(next, value)
	}

	if err := s.Save(key, next); err != nil {
		return false, err
	}

	return !removed, nil
}

// path maps a key to a file name, keeping letters, digits, dot, dash and
// underscore and replacing everything else with a dash.
func (s *Store) path(key string) (string, error) {
	var sb strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteByte('-')
		}
	}

	name := strings.Trim(sb.String(), "-.")
	if name == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	return filepath.Join(s.dir, name+".json"), nil
}
