// Package auth holds an explicit identity session: the bearer token the
// backend expects, its refresh token and the signed-in user.
package auth

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"designfoli-web/internal/errorz"
	"designfoli-web/internal/models"
)

// DefaultRefreshInterval matches the identity provider's one hour token
// lifetime with a five minute margin.
const DefaultRefreshInterval = 55 * time.Minute

// Provider signs users in and exchanges refresh tokens.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*models.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenResponse, error)
}

// User is the signed-in identity.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is safe for concurrent use; KeepFresh may rotate the token while
// requests read it.
type Session struct {
	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time
	user         User
}

// NewSession builds a session from a provider token response.
func NewSession(t *models.TokenResponse) *Session {
	s := &Session{}
	s.apply(t)
	return s
}

// FromToken wraps a bare bearer token, as received on an inbound request.
func FromToken(token, userID string) *Session {
	return &Session{accessToken: token, user: User{ID: userID}}
}

func (s *Session) apply(t *models.TokenResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = t.AccessToken
	if t.RefreshToken != "" {
		s.refreshToken = t.RefreshToken
	}
	s.expiresAt = t.ExpiresAt
	if t.UserID != "" {
		s.user = User{ID: t.UserID, Email: t.Email}
	}
}

// Token returns the current bearer token, empty when signed out.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// Snapshot returns the session as a token response.
func (s *Session) Snapshot() models.TokenResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.TokenResponse{
		AccessToken:  s.accessToken,
		RefreshToken: s.refreshToken,
		ExpiresAt:    s.expiresAt,
		UserID:       s.user.ID,
		Email:        s.user.Email,
	}
}

// Clear signs the session out.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = ""
	s.refreshToken = ""
	s.expiresAt = time.Time{}
	s.user = User{}
}

// SignIn replaces the session with a fresh provider login.
func (s *Session) SignIn(ctx context.Context, p Provider, email, password string) error {
	t, err := p.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	s.Clear()
	s.apply(t)
	return nil
}

// Refresh exchanges the refresh token for a new access token.
func (s *Session) Refresh(ctx context.Context, p Provider) error {
	s.mu.RLock()
	rt := s.refreshToken
	s.mu.RUnlock()
	if rt == "" {
		return fmt.Errorf("no refresh token: %w", errorz.ErrUnauthorized)
	}
	t, err := p.Refresh(ctx, rt)
	if err != nil {
		return err
	}
	s.apply(t)
	return nil
}

// KeepFresh refreshes the session every interval until ctx is done. Failures
// are logged and retried on the next tick. onRefresh, when set, runs after
// every successful refresh.
func (s *Session) KeepFresh(ctx context.Context, p Provider, interval time.Duration, onRefresh func(*Session)) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Refresh(ctx, p); err != nil {
				log.Printf("Token refresh failed: %v", err)
				continue
			}
			if onRefresh != nil {
				onRefresh(s)
			}
		}
	}
}
