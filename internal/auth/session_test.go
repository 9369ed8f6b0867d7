package auth_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"designfoli-web/internal/auth"
	"designfoli-web/internal/errorz"
	"designfoli-web/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	mu        sync.Mutex
	refreshes int
	fail      bool
}

func (p *fakeProvider) SignIn(_ context.Context, email, password string) (*models.TokenResponse, error) {
	if password != "secret" {
		return nil, errors.New("invalid login credentials")
	}
	return &models.TokenResponse{AccessToken: "access-0", RefreshToken: "refresh-0", UserID: "u-1", Email: email}, nil
}

func (p *fakeProvider) Refresh(_ context.Context, rt string) (*models.TokenResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return nil, errors.New("refresh rejected")
	}
	p.refreshes++
	return &models.TokenResponse{AccessToken: "access-" + rt, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (p *fakeProvider) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refreshes
}

func TestSession_SignInAndRefresh(t *testing.T) {
	ctx := context.Background()
	p := &fakeProvider{}
	s := &auth.Session{}

	require.Error(t, s.SignIn(ctx, p, "a@b.c", "wrong"))
	assert.Empty(t, s.Token())

	require.NoError(t, s.SignIn(ctx, p, "a@b.c", "secret"))
	assert.Equal(t, "access-0", s.Token())
	assert.Equal(t, auth.User{ID: "u-1", Email: "a@b.c"}, s.User())

	require.NoError(t, s.Refresh(ctx, p))
	assert.Equal(t, "access-refresh-0", s.Token())
	assert.Equal(t, "u-1", s.User().ID)
	assert.Equal(t, "refresh-0", s.Snapshot().RefreshToken)
}

func TestSession_RefreshWithoutRefreshToken(t *testing.T) {
	s := auth.FromToken("bearer", "u-1")

	err := s.Refresh(context.Background(), &fakeProvider{})

	assert.True(t, errors.Is(err, errorz.ErrUnauthorized))
	assert.Equal(t, "bearer", s.Token())
}

func TestSession_NilToken(t *testing.T) {
	var s *auth.Session
	assert.Empty(t, s.Token())
}

func TestSession_KeepFresh(t *testing.T) {
	p := &fakeProvider{}
	s := auth.NewSession(&models.TokenResponse{AccessToken: "a", RefreshToken: "r"})
	ctx, cancel := context.WithCancel(context.Background())

	refreshed := make(chan struct{}, 10)
	done := make(chan struct{})
	go func() {
		s.KeepFresh(ctx, p, 5*time.Millisecond, func(*auth.Session) { refreshed <- struct{}{} })
		close(done)
	}()

	<-refreshed
	<-refreshed
	cancel()
	<-done

	assert.GreaterOrEqual(t, p.count(), 2)
	assert.Equal(t, "access-r", s.Token())
}

func TestSession_KeepFreshSurvivesFailures(t *testing.T) {
	p := &fakeProvider{fail: true}
	s := auth.NewSession(&models.TokenResponse{AccessToken: "a", RefreshToken: "r"})
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	s.KeepFresh(ctx, p, 5*time.Millisecond, nil)

	assert.Equal(t, "a", s.Token())
}

func TestFileStore(t *testing.T) {
	store := auth.FileStore{Dir: t.TempDir()}

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	s := auth.NewSession(&models.TokenResponse{AccessToken: "a", RefreshToken: "r", UserID: "u", Email: "e@x"})
	require.NoError(t, store.Save(s))
	require.NoError(t, store.SavePending(auth.PendingSignup{Email: "e@x", DisplayName: "Ada"}))

	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "a", loaded.Token())
	assert.Equal(t, "e@x", loaded.User().Email)

	pending, err := store.LoadPending()
	require.NoError(t, err)
	assert.Equal(t, "Ada", pending.DisplayName)

	require.NoError(t, store.ClearPending())
	pending, err = store.LoadPending()
	require.NoError(t, err)
	assert.Nil(t, pending)

	require.NoError(t, store.Clear())
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
