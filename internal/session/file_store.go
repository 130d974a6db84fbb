package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists snapshots as JSON files under a directory, one file
// per session. Writes go through a temp file and rename so a crash never
// leaves a half-written snapshot behind.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(sessionID string) string {
	return filepath.Join(s.dir, sessionID+".json")
}

// Load reads a snapshot; a missing file means no prior session.
func (s *FileStore) Load(_ context.Context, sessionID string) (*Snapshot, error) {
	data, err := os.ReadFile(s.path(sessionID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse session snapshot: %w", err)
	}
	return &snap, nil
}

// Save writes the snapshot atomically.
func (s *FileStore) Save(_ context.Context, snap *Snapshot) error {
	if snap == nil || snap.SessionID == "" {
		return fmt.Errorf("snapshot requires a session id")
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session snapshot: %w", err)
	}

	tmp := s.path(snap.SessionID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write session snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path(snap.SessionID)); err != nil {
		return fmt.Errorf("failed to replace session snapshot: %w", err)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}

var _ Store = (*FileStore)(nil)
