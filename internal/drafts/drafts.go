// Package drafts persists wizard drafts between requests.
package drafts

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"designfoli-web/internal/errorz"
	"designfoli-web/internal/models"
	"github.com/google/uuid"
)

// DefaultTTL is how long an untouched draft survives.
const DefaultTTL = 24 * time.Hour

// Store is implemented by the memory, Redis and Postgres backends. Get
// returns errorz.ErrNotFound for unknown or expired drafts.
//
// Update is the only safe way to change an existing draft: it loads, applies
// fn and saves as one step, so concurrent updates of one draft never overwrite
// each other. fn may run more than once and must not have side effects; its
// error aborts the update without saving.
type Store interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Draft, error)
	Save(ctx context.Context, d *models.Draft) error
	Update(ctx context.Context, id uuid.UUID, fn func(d *models.Draft) error) (*models.Draft, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// PurgeExpired removes drafts past their expiry and returns them, so
	// whatever they own elsewhere can be released too.
	PurgeExpired(ctx context.Context) ([]Expired, error)
}

// Expired identifies a purged draft.
type Expired struct {
	ID     uuid.UUID
	UserID string
}

// NotFound wraps errorz.ErrNotFound with the draft id.
func NotFound(id uuid.UUID) error {
	return fmt.Errorf("draft %s: %w", id, errorz.ErrNotFound)
}

// Memory keeps drafts in process. Stored drafts are copied in and out so
// callers never share state with the store.
type Memory struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	drafts map[uuid.UUID]memoryEntry
}

type memoryEntry struct {
	data      []byte
	userID    string
	expiresAt time.Time
}

var _ Store = (*Memory)(nil)

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{ttl: ttl, now: time.Now, drafts: map[uuid.UUID]memoryEntry{}}
}

// WithClock replaces the clock used for expiry.
func (m *Memory) WithClock(now func() time.Time) *Memory {
	m.now = now
	return m
}

func (m *Memory) Get(_ context.Context, id uuid.UUID) (*models.Draft, error) {
	m.mu.Lock()
	entry, ok := m.live(id)
	m.mu.Unlock()
	if !ok {
		return nil, NotFound(id)
	}
	return Decode(entry.data)
}

// live returns an unexpired entry. Expired entries stay until PurgeExpired
// so their owner is still known. Callers hold m.mu.
func (m *Memory) live(id uuid.UUID) (memoryEntry, bool) {
	entry, ok := m.drafts[id]
	if !ok || !m.now().Before(entry.expiresAt) {
		return memoryEntry{}, false
	}
	return entry, true
}

func (m *Memory) Save(_ context.Context, d *models.Draft) error {
	data, err := Encode(d)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.put(d, data)
	m.mu.Unlock()
	return nil
}

func (m *Memory) put(d *models.Draft, data []byte) {
	m.drafts[d.ID] = memoryEntry{data: data, userID: d.UserID, expiresAt: m.now().Add(m.ttl)}
}

// Update holds the store lock from load to save; fn must not block.
func (m *Memory) Update(_ context.Context, id uuid.UUID, fn func(d *models.Draft) error) (*models.Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.live(id)
	if !ok {
		return nil, NotFound(id)
	}
	d, err := Decode(entry.data)
	if err != nil {
		return nil, err
	}
	if err := fn(d); err != nil {
		return nil, err
	}
	data, err := Encode(d)
	if err != nil {
		return nil, err
	}
	m.put(d, data)
	return d, nil
}

func (m *Memory) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	delete(m.drafts, id)
	m.mu.Unlock()
	return nil
}

func (m *Memory) PurgeExpired(_ context.Context) ([]Expired, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expired []Expired
	now := m.now()
	for id, entry := range m.drafts {
		if now.Before(entry.expiresAt) {
			continue
		}
		expired = append(expired, Expired{ID: id, UserID: entry.userID})
		delete(m.drafts, id)
	}
	return expired, nil
}

// Encode is the storage format shared by every backend.
func Encode(d *models.Draft) ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft: %w", err)
	}
	return data, nil
}

func Decode(data []byte) (*models.Draft, error) {
	var d models.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	if d.FieldValues == nil {
		d.FieldValues = map[string]models.FieldValue{}
	}
	if d.SelectedFields == nil {
		d.SelectedFields = []models.SelectedField{}
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	return &d, nil
}
