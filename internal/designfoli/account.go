package designfoli

import (
	"context"
	"net/http"
	"net/url"

	"designfoli-web/internal/models"
)

// Register completes sign-up for a user the identity provider already knows.
func (c *Client) Register(ctx context.Context, token string, req models.RegisterRequest) error {
	if err := requireToken(token); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPost, "/auth/register", token, req, nil)
}

// EmailRegister creates an account from scratch; it needs no token.
func (c *Client) EmailRegister(ctx context.Context, req models.EmailRegisterRequest) error {
	if req.Name == "" {
		req.Name = req.Username
	}
	return c.doJSON(ctx, http.MethodPost, "/auth/email/register", "", req, nil)
}

func (c *Client) SuggestUsername(ctx context.Context, token string) ([]string, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	var result models.Envelope[struct {
		Suggestions []string `json:"suggestions"`
	}]
	if err := c.doJSON(ctx, http.MethodGet, "/users/suggest-username", token, nil, &result); err != nil {
		return nil, err
	}
	if result.Data.Suggestions == nil {
		return []string{}, nil
	}
	return result.Data.Suggestions, nil
}

func (c *Client) CheckUsername(ctx context.Context, token, username string) (bool, error) {
	if err := requireToken(token); err != nil {
		return false, err
	}
	var result models.Envelope[struct {
		Available bool `json:"available"`
	}]
	path := "/users/check-username?username=" + url.QueryEscape(username)
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &result); err != nil {
		return false, err
	}
	return result.Data.Available, nil
}

// SetUsernameAndPublish claims a username and makes the portfolio public.
func (c *Client) SetUsernameAndPublish(ctx context.Context, token, username, fullname string) error {
	if err := requireToken(token); err != nil {
		return err
	}
	body := models.PublishRequest{Username: username, Fullname: fullname, IsPublished: true}
	return c.doJSON(ctx, http.MethodPost, "/users/set-username-and-publish", token, body, nil)
}
