// Package staging holds wizard uploads between the moment the user picks a
// file and the moment the case study is submitted.
package staging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"designfoli-web/internal/errorz"
	"designfoli-web/internal/models"
	"github.com/google/uuid"
)

// Store keeps staged files addressed by models.FileRef.
type Store interface {
	Put(ctx context.Context, userID string, draftID uuid.UUID, filename, contentType string, data []byte) (models.FileRef, error)
	Open(ctx context.Context, ref models.FileRef) (io.ReadCloser, error)
	Delete(ctx context.Context, refs ...models.FileRef) error
	DeleteDraft(ctx context.Context, userID string, draftID uuid.UUID) error
}

// DraftPrefix is the folder that holds every upload of one draft.
func DraftPrefix(userID string, draftID uuid.UUID) string {
	return fmt.Sprintf("users/%s/drafts/%s/", userID, draftID.String())
}

// ObjectPath names a new staged object; the random prefix keeps repeated
// uploads of the same filename apart.
func ObjectPath(userID string, draftID uuid.UUID, filename string) string {
	return DraftPrefix(userID, draftID) + uuid.New().String() + "-" + CleanName(filename)
}

// CleanName strips directories from a client-supplied filename.
func CleanName(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "upload"
	}
	return name
}

// Memory is an in-process Store for development and tests.
type Memory struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{files: map[string][]byte{}}
}

func (m *Memory) Put(_ context.Context, userID string, draftID uuid.UUID, filename, contentType string, data []byte) (models.FileRef, error) {
	p := ObjectPath(userID, draftID, filename)
	m.mu.Lock()
	m.files[p] = append([]byte(nil), data...)
	m.mu.Unlock()
	return models.FileRef{
		Path:        p,
		Filename:    CleanName(filename),
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}

func (m *Memory) Open(_ context.Context, ref models.FileRef) (io.ReadCloser, error) {
	m.mu.RLock()
	data, ok := m.files[ref.Path]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("staged file %s: %w", ref.Path, errorz.ErrNotFound)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *Memory) Delete(_ context.Context, refs ...models.FileRef) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ref := range refs {
		delete(m.files, ref.Path)
	}
	return nil
}

func (m *Memory) DeleteDraft(_ context.Context, userID string, draftID uuid.UUID) error {
	prefix := DraftPrefix(userID, draftID)
	m.mu.Lock()
	defer m.mu.Unlock()
	for p := range m.files {
		if strings.HasPrefix(p, prefix) {
			delete(m.files, p)
		}
	}
	return nil
}

// Len reports how many objects are staged.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.files)
}
