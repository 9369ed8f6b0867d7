package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"designfoli-web/internal/database"
	"designfoli-web/internal/drafts"
	"designfoli-web/internal/models"
	"github.com/google/uuid"
)

type DraftRepo struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

var _ drafts.Store = (*DraftRepo)(nil)

func NewDraftRepo(db *sql.DB, ttl time.Duration) *DraftRepo {
	if ttl <= 0 {
		ttl = drafts.DefaultTTL
	}
	return &DraftRepo{db: db, ttl: ttl, now: time.Now}
}

func (r *DraftRepo) Get(ctx context.Context, id uuid.UUID) (*models.Draft, error) {
	var state []byte
	err := r.db.QueryRowContext(ctx, database.SelectDraft, id).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, drafts.NotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	return drafts.Decode(state)
}

func (r *DraftRepo) Save(ctx context.Context, d *models.Draft) error {
	return r.save(ctx, r.db, d)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *DraftRepo) save(ctx context.Context, db execer, d *models.Draft) error {
	state, err := drafts.Encode(d)
	if err != nil {
		return err
	}
	now := r.now().UTC()
	_, err = db.ExecContext(ctx, database.UpsertDraft,
		d.ID, d.UserID, string(d.Mode), d.CaseStudyID, string(d.Step), state,
		d.CreatedAt, now, now.Add(r.ttl),
	)
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// Update locks the draft row for the length of the transaction.
func (r *DraftRepo) Update(ctx context.Context, id uuid.UUID, fn func(d *models.Draft) error) (*models.Draft, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin draft update: %w", err)
	}
	defer tx.Rollback()

	var state []byte
	err = tx.QueryRowContext(ctx, database.SelectDraftForUpdate, id).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, drafts.NotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	d, err := drafts.Decode(state)
	if err != nil {
		return nil, err
	}
	if err := fn(d); err != nil {
		return nil, err
	}
	if err := r.save(ctx, tx, d); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit draft update: %w", err)
	}
	return d, nil
}

func (r *DraftRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, database.DeleteDraft, id); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

// PurgeExpired removes drafts past their expiry and returns them.
func (r *DraftRepo) PurgeExpired(ctx context.Context) ([]drafts.Expired, error) {
	rows, err := r.db.QueryContext(ctx, database.DeleteExpiredDrafts)
	if err != nil {
		return nil, fmt.Errorf("failed to purge drafts: %w", err)
	}
	defer rows.Close()

	var expired []drafts.Expired
	for rows.Next() {
		var e drafts.Expired
		if err := rows.Scan(&e.ID, &e.UserID); err != nil {
			return expired, fmt.Errorf("failed to scan purged draft: %w", err)
		}
		expired = append(expired, e)
	}
	return expired, rows.Err()
}
