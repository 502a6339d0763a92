// internal/localstore/localstore.go
package localstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Store is a durable key→JSON store backed by one file per key. It is
// the Go stand-in for the webview's local storage: reads fail soft,
// writes are best-effort, and in-memory state stays authoritative for
// the session when durability is lost.
//
// There is no versioning or migration of stored shapes; a schema change
// silently drops or misreads older values.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Namespace returns a store rooted at a subdirectory, used to scope
// state per identified user.
func (s *Store) Namespace(sub string) (*Store, error) {
	return New(filepath.Join(s.dir, sub))
}

// Read unmarshals the value stored under key into v. It returns false
// when the key is absent. Malformed stored text is treated as absent
// and the key is cleared so it cannot fail repeatedly.
func (s *Store) Read(key string, v interface{}) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logrus.WithError(err).WithField("key", key).Warn("local store read failed")
		}
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("discarding corrupt local store entry")
		s.Remove(key)
		return false
	}

	return true
}

// Write persists v under key. Failures (quota, permissions, marshal)
// are logged and swallowed.
func (s *Store) Write(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("local store marshal failed")
		return
	}

	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("local store write failed")
	}
}

// Remove deletes the key. Removing an absent key is a no-op.
func (s *Store) Remove(key string) {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithError(err).WithField("key", key).Warn("local store remove failed")
	}
}

// Has reports whether a value is stored under key without decoding it.
func (s *Store) Has(key string) bool {
	_, err := os.Stat(s.path(key))
	return err == nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
