// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache persists answer sets on disk, keyed by derived cache
// keys, with a staleness bound applied on read.
package cache

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/golinks-search/pkg/types"
)

// Store is a filesystem key/value store. Each entry is one JSON envelope
// file under the root, at a path derived from its cache key. One process
// reads and writes at a time in the documented usage pattern, so there
// is no locking.
type Store struct {
	root string

	// now is the clock. Tests substitute a fixed one to probe the
	// staleness boundary.
	now func() time.Time
}

// envelope is the serialized form of one entry.
type envelope struct {
	Written time.Time      `json:"written"`
	Answers []types.Answer `json:"answers"`
}

// NewStore creates the cache root if needed and returns a store over it.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache root: %w", err)
	}
	return &Store{root: root, now: time.Now}, nil
}

// Get returns the answers cached under key if the entry is younger than
// maxAge. An entry written at time T is valid while now-T < maxAge: still
// valid at T+maxAge-1, stale at exactly T+maxAge. Stale, missing, or
// unreadable entries all report a miss; the caller regenerates and
// overwrites them.
func (s *Store) Get(key string, maxAge time.Duration) ([]types.Answer, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, false
	}

	if s.now().Sub(env.Written) >= maxAge {
		return nil, false
	}
	return env.Answers, true
}

// Put writes answers under key with the current timestamp, creating any
// missing parent directories first. Directory creation is the only I/O
// side effect of keying; derivation itself is pure.
func (s *Store) Put(key string, answers []types.Answer) error {
	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.Marshal(envelope{Written: s.now(), Answers: answers})
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// path resolves a slash-separated cache key to an entry file under root.
func (s *Store) path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key)+".json")
}

// Stats summarizes the entries currently on disk.
type Stats struct {
	// Entries is the number of entry files under the root.
	Entries int `json:"entries" yaml:"entries"`

	// TotalBytes is the combined size of all entry files.
	TotalBytes int64 `json:"total_bytes" yaml:"total_bytes"`

	// OldestWrite is the modification time of the oldest entry; zero
	// when the cache is empty.
	OldestWrite time.Time `json:"oldest_write,omitempty" yaml:"oldest_write,omitempty"`
}

// Stats walks the cache root and reports entry count, total size, and
// the oldest write time.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".json" {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		st.Entries++
		st.TotalBytes += info.Size()
		if st.OldestWrite.IsZero() || info.ModTime().Before(st.OldestWrite) {
			st.OldestWrite = info.ModTime()
		}
		return nil
	})
	if err != nil {
		return Stats{}, fmt.Errorf("walking cache root: %w", err)
	}
	return st, nil
}

// Clear removes every entry while keeping the root directory itself.
func (s *Store) Clear() error {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return fmt.Errorf("reading cache root: %w", err)
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(s.root, entry.Name())); err != nil {
			return fmt.Errorf("removing %s: %w", entry.Name(), err)
		}
	}
	return nil
}
