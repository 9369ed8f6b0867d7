package drafts_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"designfoli-web/internal/drafts"
	"designfoli-web/internal/errorz"
	"designfoli-web/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDraft() *models.Draft {
	d := models.NewDraft("user-1", models.DraftModeCreate)
	d.ProjectTitle = "Checkout"
	d.FieldValues["summary"] = models.TextValue("Short")
	d.FieldValues["photos"] = models.PictureOf(models.PictureValue{
		Existing: []string{"https://cdn/1.png"},
		Uploads:  []models.FileRef{{Path: "p/a.png", Filename: "a.png"}},
		Caption:  "c",
	})
	d.CoverImage = models.UploadedImage(models.FileRef{Path: "p/cover.png", Filename: "cover.png"})
	return d
}

func TestMemory_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store := drafts.NewMemory(time.Hour)
	d := sampleDraft()

	require.NoError(t, store.Save(ctx, d))
	got, err := store.Get(ctx, d.ID)
	require.NoError(t, err)

	assert.Equal(t, d.ProjectTitle, got.ProjectTitle)
	assert.Equal(t, d.FieldValues, got.FieldValues)
	assert.Equal(t, d.CoverImage, got.CoverImage)

	require.NoError(t, store.Delete(ctx, d.ID))
	_, err = store.Get(ctx, d.ID)
	assert.True(t, errors.Is(err, errorz.ErrNotFound))
}

func TestMemory_IsolatesCopies(t *testing.T) {
	ctx := context.Background()
	store := drafts.NewMemory(time.Hour)
	d := sampleDraft()
	require.NoError(t, store.Save(ctx, d))

	d.ProjectTitle = "changed after save"
	got, err := store.Get(ctx, d.ID)
	require.NoError(t, err)
	got.Tags = append(got.Tags, "UX")

	again, err := store.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Checkout", again.ProjectTitle)
	assert.Empty(t, again.Tags)
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := drafts.NewMemory(time.Hour).WithClock(func() time.Time { return now })
	d := sampleDraft()
	require.NoError(t, store.Save(ctx, d))

	now = now.Add(59 * time.Minute)
	_, err := store.Get(ctx, d.ID)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = store.Get(ctx, d.ID)
	assert.True(t, errors.Is(err, errorz.ErrNotFound))
}

func TestMemory_UpdateSerializesWriters(t *testing.T) {
	ctx := context.Background()
	store := drafts.NewMemory(time.Hour)
	d := sampleDraft()
	require.NoError(t, store.Save(ctx, d))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Update(ctx, d.ID, func(d *models.Draft) error {
				d.Tags = append(d.Tags, fmt.Sprintf("tag-%d", i))
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := store.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Len(t, got.Tags, 20)
}

func TestMemory_UpdateAbortsOnError(t *testing.T) {
	ctx := context.Background()
	store := drafts.NewMemory(time.Hour)
	d := sampleDraft()
	require.NoError(t, store.Save(ctx, d))

	_, err := store.Update(ctx, d.ID, func(d *models.Draft) error {
		d.ProjectTitle = "half done"
		return errorz.Invalid("projectTitle", "nope")
	})
	assert.True(t, errors.Is(err, errorz.ErrValidation))

	got, err := store.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Checkout", got.ProjectTitle)

	_, err = store.Update(ctx, uuid.New(), func(*models.Draft) error { return nil })
	assert.True(t, errors.Is(err, errorz.ErrNotFound))
}

func TestMemory_PurgeExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := drafts.NewMemory(time.Hour).WithClock(func() time.Time { return now })
	old := sampleDraft()
	require.NoError(t, store.Save(ctx, old))
	now = now.Add(30 * time.Minute)
	recent := models.NewDraft("user-2", models.DraftModeCreate)
	require.NoError(t, store.Save(ctx, recent))

	now = now.Add(45 * time.Minute)
	_, err := store.Update(ctx, old.ID, func(*models.Draft) error { return nil })
	assert.True(t, errors.Is(err, errorz.ErrNotFound), "expired drafts cannot be revived")

	expired, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, []drafts.Expired{{ID: old.ID, UserID: "user-1"}}, expired)

	expired, err = store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Empty(t, expired)
	_, err = store.Get(ctx, recent.ID)
	assert.NoError(t, err)
}

func TestDecode_FillsEmptyCollections(t *testing.T) {
	d, err := drafts.Decode([]byte(`{"id":"6f1c2c1e-8d7b-4a53-9f0e-0d6c8a9b1a11","user_id":"u"}`))
	require.NoError(t, err)

	assert.NotNil(t, d.FieldValues)
	assert.NotNil(t, d.SelectedFields)
	assert.NotNil(t, d.Tags)

	_, err = drafts.Decode([]byte(`{`))
	assert.Error(t, err)
}
