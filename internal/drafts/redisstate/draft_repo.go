package redisstate

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"designfoli-web/internal/drafts"
	"designfoli-web/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Draft keys expire on their own. The expiry index remembers which drafts
// existed and who owned them, so their staged files can be purged later.
const (
	expiryKey = "drafts:expiry"
	ownerKey  = "drafts:owner"

	maxUpdateAttempts = 10
)

type DraftRepo struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

var _ drafts.Store = (*DraftRepo)(nil)

func NewDraftRepo(client *redis.Client, ttl time.Duration) *DraftRepo {
	if ttl <= 0 {
		ttl = drafts.DefaultTTL
	}
	return &DraftRepo{client: client, ttl: ttl, now: time.Now}
}

func (r *DraftRepo) Get(ctx context.Context, id uuid.UUID) (*models.Draft, error) {
	v, err := r.client.Get(ctx, draftKey(id)).Bytes()
	if err == redis.Nil {
		return nil, drafts.NotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	return drafts.Decode(v)
}

// Save writes the draft and restarts its TTL.
func (r *DraftRepo) Save(ctx context.Context, d *models.Draft) error {
	b, err := drafts.Encode(d)
	if err != nil {
		return err
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		r.write(ctx, pipe, d, b)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (r *DraftRepo) write(ctx context.Context, pipe redis.Pipeliner, d *models.Draft, b []byte) {
	id := d.ID.String()
	pipe.Set(ctx, draftKey(d.ID), b, r.ttl)
	pipe.ZAdd(ctx, expiryKey, redis.Z{Score: float64(r.now().Add(r.ttl).Unix()), Member: id})
	pipe.HSet(ctx, ownerKey, id, d.UserID)
}

// Update watches the draft key and retries when another writer got there
// first.
func (r *DraftRepo) Update(ctx context.Context, id uuid.UUID, fn func(d *models.Draft) error) (*models.Draft, error) {
	key := draftKey(id)
	var out *models.Draft
	txf := func(tx *redis.Tx) error {
		v, err := tx.Get(ctx, key).Bytes()
		if err == redis.Nil {
			return drafts.NotFound(id)
		}
		if err != nil {
			return fmt.Errorf("failed to load draft: %w", err)
		}
		d, err := drafts.Decode(v)
		if err != nil {
			return err
		}
		if err := fn(d); err != nil {
			return err
		}
		b, err := drafts.Encode(d)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			r.write(ctx, pipe, d, b)
			return nil
		})
		if err != nil {
			return err
		}
		out = d
		return nil
	}

	for i := 0; i < maxUpdateAttempts; i++ {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	return nil, fmt.Errorf("failed to update draft %s: too many concurrent writers", id)
}

func (r *DraftRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, draftKey(id))
		pipe.ZRem(ctx, expiryKey, id.String())
		pipe.HDel(ctx, ownerKey, id.String())
		return nil
	})
	return err
}

// PurgeExpired drops index entries whose draft key is gone. An expired draft
// cannot come back, so a missing key is final.
func (r *DraftRepo) PurgeExpired(ctx context.Context) ([]drafts.Expired, error) {
	ids, err := r.client.ZRangeByScore(ctx, expiryKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(r.now().Unix(), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list expired drafts: %w", err)
	}

	var expired []drafts.Expired
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			r.client.ZRem(ctx, expiryKey, raw)
			continue
		}
		n, err := r.client.Exists(ctx, draftKey(id)).Result()
		if err != nil {
			return expired, fmt.Errorf("failed to check draft %s: %w", id, err)
		}
		if n > 0 {
			continue
		}
		owner, err := r.client.HGet(ctx, ownerKey, raw).Result()
		if err != nil && err != redis.Nil {
			return expired, fmt.Errorf("failed to load owner of draft %s: %w", id, err)
		}
		var removed *redis.IntCmd
		_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			removed = pipe.ZRem(ctx, expiryKey, raw)
			pipe.HDel(ctx, ownerKey, raw)
			return nil
		})
		if err != nil {
			return expired, fmt.Errorf("failed to purge draft %s: %w", id, err)
		}
		// Another instance purged it first.
		if removed.Val() == 0 {
			continue
		}
		expired = append(expired, drafts.Expired{ID: id, UserID: owner})
	}
	return expired, nil
}

func draftKey(id uuid.UUID) string {
	return fmt.Sprintf("draft:%s", id.String())
}
