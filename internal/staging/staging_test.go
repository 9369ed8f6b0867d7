package staging_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"designfoli-web/internal/errorz"
	"designfoli-web/internal/models"
	"designfoli-web/internal/staging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectPath(t *testing.T) {
	draftID := uuid.New()

	p := staging.ObjectPath("user-1", draftID, "../../etc/cover.png")

	assert.True(t, strings.HasPrefix(p, "users/user-1/drafts/"+draftID.String()+"/"))
	assert.True(t, strings.HasSuffix(p, "-cover.png"))
	assert.NotEqual(t, p, staging.ObjectPath("user-1", draftID, "cover.png"))
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "a.png", staging.CleanName(`C:\Users\me\a.png`))
	assert.Equal(t, "upload", staging.CleanName(""))
}

func TestMemory_PutOpenDelete(t *testing.T) {
	ctx := context.Background()
	store := staging.NewMemory()
	draftID := uuid.New()

	ref, err := store.Put(ctx, "user-1", draftID, "a.png", "image/png", []byte("AAA"))
	require.NoError(t, err)
	assert.Equal(t, "a.png", ref.Filename)
	assert.Equal(t, int64(3), ref.Size)

	rc, err := store.Open(ctx, ref)
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "AAA", string(data))

	require.NoError(t, store.Delete(ctx, ref))
	_, err = store.Open(ctx, ref)
	assert.True(t, errors.Is(err, errorz.ErrNotFound))
}

func TestMemory_DeleteDraft(t *testing.T) {
	ctx := context.Background()
	store := staging.NewMemory()
	mine, other := uuid.New(), uuid.New()

	_, _ = store.Put(ctx, "user-1", mine, "a.png", "", []byte("a"))
	_, _ = store.Put(ctx, "user-1", mine, "b.png", "", []byte("b"))
	kept, _ := store.Put(ctx, "user-1", other, "c.png", "", []byte("c"))

	require.NoError(t, store.DeleteDraft(ctx, "user-1", mine))

	assert.Equal(t, 1, store.Len())
	_, err := store.Open(ctx, kept)
	assert.NoError(t, err)
	_, err = store.Open(ctx, models.FileRef{Path: "nope"})
	assert.Error(t, err)
}
