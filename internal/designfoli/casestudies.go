package designfoli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"designfoli-web/internal/casestudy"
	"designfoli-web/internal/models"
)

// ErrEmptyConfiguration means the backend answered without sections or tags.
var ErrEmptyConfiguration = errors.New("configuration response has no data")

// GetConfiguration fetches the section catalogue and tag vocabulary.
func (c *Client) GetConfiguration(ctx context.Context, token string) (*models.Configuration, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	var result models.ConfigurationResponse
	if err := c.doJSON(ctx, http.MethodGet, "/configuration", token, nil, &result); err != nil {
		return nil, err
	}
	if result.Data == nil {
		return nil, ErrEmptyConfiguration
	}
	if result.Data.Sections == nil {
		result.Data.Sections = []models.Section{}
	}
	if result.Data.Tags == nil {
		result.Data.Tags = []string{}
	}
	return result.Data, nil
}

// CreateCaseStudy posts a serialized submission. The backend may or may not
// echo the stored record; a nil record with a nil error is a success.
func (c *Client) CreateCaseStudy(ctx context.Context, token string, payload *casestudy.Payload) (*models.CaseStudy, error) {
	return c.sendCaseStudy(ctx, http.MethodPost, "/users/profile/addcasestudy", token, payload)
}

func (c *Client) UpdateCaseStudy(ctx context.Context, token, id string, payload *casestudy.Payload) (*models.CaseStudy, error) {
	return c.sendCaseStudy(ctx, http.MethodPut, "/users/profile/casestudy/"+url.PathEscape(id), token, payload)
}

func (c *Client) sendCaseStudy(ctx context.Context, method, path, token string, payload *casestudy.Payload) (*models.CaseStudy, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, fmt.Errorf("failed to send case study: empty payload")
	}

	req, err := c.newRequest(ctx, method, path, token, bytes.NewReader(payload.Body), payload.ContentType)
	if err != nil {
		return nil, err
	}

	var result models.CaseStudyResponse
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// GetCaseStudy loads one of the caller's case studies for editing.
func (c *Client) GetCaseStudy(ctx context.Context, token, id string) (*models.CaseStudy, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	return c.getCaseStudy(ctx, "/users/profile/casestudy/"+url.PathEscape(id), token)
}

// GetPublicCaseStudy loads a case study through the unauthenticated route.
func (c *Client) GetPublicCaseStudy(ctx context.Context, id string) (*models.CaseStudy, error) {
	return c.getCaseStudy(ctx, "/users/case-study/"+url.PathEscape(id), "")
}

func (c *Client) getCaseStudy(ctx context.Context, path, token string) (*models.CaseStudy, error) {
	var result models.CaseStudyResponse
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &result); err != nil {
		return nil, err
	}
	if result.Data == nil {
		return nil, &APIError{Status: http.StatusNotFound, Message: "Case study not found"}
	}
	return result.Data, nil
}

func (c *Client) DeleteCaseStudy(ctx context.Context, token, id string) error {
	if err := requireToken(token); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, "/users/profile/casestudy/"+url.PathEscape(id), token, nil, nil)
}
