package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dhruvkrishnavaid/oceaneye/internal/model"
)

// SessionRepository persists the auth snapshot (user, token,
// isAuthenticated) as JSON under a named storage key, the durable
// local-storage equivalent for the dashboard session. Only the snapshot
// fields survive restarts; transient state never reaches disk.
type SessionRepository struct {
	mu   sync.Mutex
	path string
}

// NewSessionRepository stores the snapshot at <dir>/<key>.json.
func NewSessionRepository(dir, key string) *SessionRepository {
	return &SessionRepository{path: filepath.Join(dir, key+".json")}
}

// Save writes the snapshot, creating the directory if needed.
func (r *SessionRepository) Save(snap *model.SessionSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Load returns the persisted snapshot, or (nil, nil) when none exists.
func (r *SessionRepository) Load() (*model.SessionSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	var snap model.SessionSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &snap, nil
}

// Clear removes the persisted snapshot. Missing files are not an error.
func (r *SessionRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
