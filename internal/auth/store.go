package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"designfoli-web/internal/models"
)

// PendingSignup is what the identity provider told us about a user who has
// authenticated but not yet completed registration.
type PendingSignup struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL,omitempty"`
}

// FileStore persists a CLI session between invocations.
type FileStore struct {
	Dir string
}

const (
	sessionFile = "session.json"
	pendingFile = "pending-signup.json"
)

// DefaultDir is ~/.designfoli, or the working directory when there is no home.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".designfoli"
	}
	return filepath.Join(home, ".designfoli")
}

func (f FileStore) Save(s *Session) error {
	return f.write(sessionFile, s.Snapshot())
}

// Load returns the cached session, or nil when none is stored.
func (f FileStore) Load() (*Session, error) {
	var t models.TokenResponse
	ok, err := f.read(sessionFile, &t)
	if err != nil || !ok {
		return nil, err
	}
	return NewSession(&t), nil
}

// Clear removes the cached session and any pending sign-up.
func (f FileStore) Clear() error {
	if err := f.remove(sessionFile); err != nil {
		return err
	}
	return f.remove(pendingFile)
}

func (f FileStore) SavePending(p PendingSignup) error {
	return f.write(pendingFile, p)
}

func (f FileStore) LoadPending() (*PendingSignup, error) {
	var p PendingSignup
	ok, err := f.read(pendingFile, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

// ClearPending drops the pending record once registration is done.
func (f FileStore) ClearPending() error {
	return f.remove(pendingFile)
}

func (f FileStore) write(name string, v any) error {
	if err := os.MkdirAll(f.Dir, 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(f.Dir, name), data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (f FileStore) read(name string, v any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(f.Dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return true, nil
}

func (f FileStore) remove(name string) error {
	err := os.Remove(filepath.Join(f.Dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", name, err)
	}
	return nil
}
