package supabase

import (
	"context"
	"fmt"
	"time"

	"designfoli-web/internal/errorz"
	"designfoli-web/internal/models"
	"github.com/supabase-community/supabase-go"
)

// Client is the identity provider: email/password sign-in and token refresh
// through Supabase Auth. It only uses the stateless Auth API so one instance
// can serve many users.
type Client struct {
	Supabase *supabase.Client
}

func NewClient(url, publishableKey string) (*Client, error) {
	client, err := supabase.NewClient(url, publishableKey, nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		Supabase: client,
	}, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := c.Supabase.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to sign in: %w: %w", errorz.ErrUnauthorized, err)
	}
	return &models.TokenResponse{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    expiry(resp.ExpiresAt, resp.ExpiresIn),
		UserID:       resp.User.ID.String(),
		Email:        resp.User.Email,
	}, nil
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*models.TokenResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := c.Supabase.Auth.RefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w: %w", errorz.ErrUnauthorized, err)
	}
	return &models.TokenResponse{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    expiry(resp.ExpiresAt, resp.ExpiresIn),
		UserID:       resp.User.ID.String(),
		Email:        resp.User.Email,
	}, nil
}

func expiry(expiresAt int64, expiresIn int) time.Time {
	if expiresAt > 0 {
		return time.Unix(expiresAt, 0).UTC()
	}
	return time.Now().UTC().Add(time.Duration(expiresIn) * time.Second)
}
