package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pfrederiksen/nps-explorer/internal/logger"
)

// StateDirectoryKey is the reserved key holding the state directory snapshot
const StateDirectoryKey = "state_directory.json"

// Entry is a stored payload as seen by a Validator
type Entry struct {
	Key       string
	Content   []byte
	UpdatedAt time.Time
}

// Lookup is the result of Load: Hit reports whether Content may be used
type Lookup struct {
	Content []byte
	Hit     bool
}

// Store persists fetched documents in a directory, one file per key
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory if needed
func New(dir string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, dir[2:])
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Dir returns the resolved cache directory
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}

// Load reads the entry stored under key and asks valid whether it can be trusted.
// A nil valid is treated as Exists.
func (s *Store) Load(key string, valid Validator) Lookup {
	if valid == nil {
		valid = Exists
	}

	path := s.path(key)
	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Cache entry unreadable", logger.Fields{"key": key}, err)
		}
		return miss()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Cache entry unreadable", logger.Fields{"key": key}, err)
		return miss()
	}

	entry := Entry{Key: key, Content: content, UpdatedAt: info.ModTime()}
	if !valid(entry) {
		logger.Debug("Cache entry rejected", logger.Fields{"key": key, "bytes": len(content)})
		return miss()
	}

	logger.IncrCounter("cache.hit")
	logger.Debug("Using cache", logger.Fields{"key": key})
	return Lookup{Content: content, Hit: true}
}

func miss() Lookup {
	logger.IncrCounter("cache.miss")
	return Lookup{}
}

// Store writes content under key, replacing any previous value.
// Write failures are logged and otherwise ignored: a run without caching still works.
func (s *Store) Store(key string, content []byte) {
	if err := os.WriteFile(s.path(key), content, 0644); err != nil {
		logger.Warn("Cache write failed", logger.Fields{"key": key}, err)
	}
}

// Remove deletes the entry stored under key, if any
func (s *Store) Remove(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing cache entry: %w", err)
	}
	return nil
}

// Clear removes every entry this package wrote and returns how many were deleted.
// Files whose names DeriveKey could not have produced are left alone.
func (s *Store) Clear() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("reading cache directory: %w", err)
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() || !Owned(e.Name()) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			return removed, fmt.Errorf("removing %s: %w", e.Name(), err)
		}
		removed++
	}

	return removed, nil
}
