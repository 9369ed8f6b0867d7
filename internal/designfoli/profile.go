package designfoli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	"designfoli-web/internal/models"
)

// Upload is a file attached to a profile update.
type Upload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// ProfileFiles are the optional binaries of a profile update.
type ProfileFiles struct {
	Resume       *Upload
	ProfileImage *Upload
}

func (f ProfileFiles) empty() bool {
	return f.Resume == nil && f.ProfileImage == nil
}

func (c *Client) GetProfile(ctx context.Context, token string) (*models.UserInfo, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	var result models.Envelope[*models.UserInfo]
	if err := c.doJSON(ctx, http.MethodGet, "/users/profile", token, nil, &result); err != nil {
		return nil, err
	}
	if result.Data == nil {
		return nil, &APIError{Status: http.StatusNotFound, Message: "Profile not found"}
	}
	return result.Data, nil
}

func (c *Client) GetPublicProfile(ctx context.Context, username string) (*models.UserInfo, error) {
	var result models.Envelope[*models.UserInfo]
	if err := c.doJSON(ctx, http.MethodGet, "/users/profile/"+url.PathEscape(username), "", nil, &result); err != nil {
		return nil, err
	}
	if result.Data == nil {
		return nil, &APIError{Status: http.StatusNotFound, Message: "Profile not found"}
	}
	return result.Data, nil
}

// UpdateProfile sends JSON when there are no files and multipart otherwise,
// with the document in a profileData part.
func (c *Client) UpdateProfile(ctx context.Context, token string, update models.ProfileUpdate, files ProfileFiles) error {
	if err := requireToken(token); err != nil {
		return err
	}
	if files.empty() {
		return c.doJSON(ctx, http.MethodPost, "/users/update/profile", token, update, nil)
	}

	doc, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal profile data: %w", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("profileData", string(doc)); err != nil {
		return fmt.Errorf("failed to write profileData: %w", err)
	}
	if err := writeUpload(w, "resume", files.Resume); err != nil {
		return err
	}
	if err := writeUpload(w, "profileImage", files.ProfileImage); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/users/update/profile", token, &buf, w.FormDataContentType())
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func writeUpload(w *multipart.Writer, field string, u *Upload) error {
	if u == nil {
		return nil
	}
	contentType := u.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, u.Filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create %s part: %w", field, err)
	}
	if _, err := io.Copy(part, u.Reader); err != nil {
		return fmt.Errorf("failed to write %s part: %w", field, err)
	}
	return nil
}

func (c *Client) UpdateSocialLinks(ctx context.Context, token string, links models.SocialLinks) error {
	if err := requireToken(token); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPut, "/users/profile/social-links", token, links, nil)
}

func (c *Client) UpdateStyle(ctx context.Context, token string, style models.StyleConfig) error {
	if err := requireToken(token); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPut, "/users/profile/style", token, style, nil)
}

// Profile entries (experience, education, skills) share one add/update/delete shape.

func (c *Client) AddExperience(ctx context.Context, token string, e models.Experience) error {
	return c.addEntry(ctx, token, "/users/profile/addExperience", e)
}

func (c *Client) UpdateExperience(ctx context.Context, token, id string, e models.Experience) error {
	return c.updateEntry(ctx, token, "/users/profile/experience/", id, e)
}

func (c *Client) DeleteExperience(ctx context.Context, token, id string) error {
	return c.deleteEntry(ctx, token, "/users/profile/experience/", id)
}

func (c *Client) AddEducation(ctx context.Context, token string, e models.Education) error {
	return c.addEntry(ctx, token, "/users/profile/addEducation", e)
}

func (c *Client) UpdateEducation(ctx context.Context, token, id string, e models.Education) error {
	return c.updateEntry(ctx, token, "/users/profile/education/", id, e)
}

func (c *Client) DeleteEducation(ctx context.Context, token, id string) error {
	return c.deleteEntry(ctx, token, "/users/profile/education/", id)
}

func (c *Client) AddSkill(ctx context.Context, token string, s models.Skill) error {
	return c.addEntry(ctx, token, "/users/profile/addSkill", s)
}

func (c *Client) UpdateSkill(ctx context.Context, token, id string, s models.Skill) error {
	return c.updateEntry(ctx, token, "/users/profile/skill/", id, s)
}

func (c *Client) DeleteSkill(ctx context.Context, token, id string) error {
	return c.deleteEntry(ctx, token, "/users/profile/skill/", id)
}

func (c *Client) addEntry(ctx context.Context, token, path string, entry any) error {
	if err := requireToken(token); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPost, path, token, entry, nil)
}

func (c *Client) updateEntry(ctx context.Context, token, prefix, id string, entry any) error {
	if err := requireToken(token); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPut, prefix+url.PathEscape(id), token, entry, nil)
}

func (c *Client) deleteEntry(ctx context.Context, token, prefix, id string) error {
	if err := requireToken(token); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, prefix+url.PathEscape(id), token, nil, nil)
}
