package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"

	"designfoli-web/internal/designfoli"
	"designfoli-web/internal/models"
	"designfoli-web/internal/services"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	client         *designfoli.Client
	profiles       *services.ProfileService
	maxUploadBytes int64
}

func NewProfileHandler(client *designfoli.Client, profiles *services.ProfileService, maxUploadBytes int64) *ProfileHandler {
	return &ProfileHandler{
		client:         client,
		profiles:       profiles,
		maxUploadBytes: maxUploadBytes,
	}
}

// GetProfile godoc
// @Summary     My profile
// @Tags        profile
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.UserInfo
// @Failure     401 {object} models.ErrorResponse
// @Router      /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.client.GetProfile(c.Request.Context(), session(c).Token())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetPublicProfile godoc
// @Summary     A published portfolio
// @Tags        public
// @Produce     json
// @Param       username path string true "Username"
// @Success     200 {object} models.UserInfo
// @Failure     404 {object} models.ErrorResponse
// @Router      /public/profiles/{username} [get]
func (h *ProfileHandler) GetPublicProfile(c *gin.Context) {
	profile, err := h.client.GetPublicProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary     Update profile details
// @Description Send JSON, or multipart with a `profileData` JSON part and optional `resume` and `profileImage` files.
// @Tags        profile
// @Accept      json,mpfd
// @Produce     json
// @Security    Bearer
// @Param       profileData formData string false "ProfileUpdate as JSON (multipart only)"
// @Param       resume formData file false "Resume"
// @Param       profileImage formData file false "Profile image"
// @Success     204
// @Failure     400 {object} models.ErrorResponse
// @Router      /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var update models.ProfileUpdate
	var files designfoli.ProfileFiles

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := c.Request.ParseMultipartForm(h.maxUploadBytes + 1<<20); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to parse multipart form", Message: err.Error()})
			return
		}
		if err := json.Unmarshal([]byte(c.Request.FormValue("profileData")), &update); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid profileData", Message: err.Error()})
			return
		}
		form := c.Request.MultipartForm
		var err error
		if files.Resume, err = h.upload(form, "resume"); err != nil {
			respondError(c, err)
			return
		}
		if files.ProfileImage, err = h.upload(form, "profileImage"); err != nil {
			respondError(c, err)
			return
		}
	} else if !bindJSON(c, &update) {
		return
	}

	if err := h.client.UpdateProfile(c.Request.Context(), session(c).Token(), update, files); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProfileHandler) upload(form *multipart.Form, field string) (*designfoli.Upload, error) {
	fhs := form.File[field]
	if len(fhs) == 0 {
		return nil, nil
	}
	up, err := readUpload(fhs[0])
	if err != nil {
		return nil, err
	}
	return &designfoli.Upload{
		Filename:    up.Filename,
		ContentType: up.ContentType,
		Reader:      bytes.NewReader(up.Data),
	}, nil
}

// UpdateSocialLinks godoc
// @Summary     Update social links
// @Tags        profile
// @Accept      json
// @Security    Bearer
// @Param       request body models.SocialLinks true "Links"
// @Success     204
// @Router      /profile/social-links [put]
func (h *ProfileHandler) UpdateSocialLinks(c *gin.Context) {
	var links models.SocialLinks
	if !bindJSON(c, &links) {
		return
	}
	if err := h.client.UpdateSocialLinks(c.Request.Context(), session(c).Token(), links); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetStyle godoc
// @Summary     Portfolio style
// @Description The stored style, with defaults for anything unset.
// @Tags        profile
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.StyleConfig
// @Router      /profile/style [get]
func (h *ProfileHandler) GetStyle(c *gin.Context) {
	style, err := h.profiles.Style(c.Request.Context(), session(c).Token())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, style)
}

// UpdateStyle godoc
// @Summary     Update portfolio style
// @Description Members left empty keep their current value.
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.StyleConfig true "Style patch"
// @Success     200 {object} models.StyleConfig
// @Failure     400 {object} models.ErrorResponse
// @Router      /profile/style [put]
func (h *ProfileHandler) UpdateStyle(c *gin.Context) {
	var patch models.StyleConfig
	if !bindJSON(c, &patch) {
		return
	}
	style, err := h.profiles.UpdateStyle(c.Request.Context(), session(c).Token(), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, style)
}

// SaveExperience godoc
// @Summary     Add or edit an experience entry
// @Tags        profile
// @Accept      json
// @Security    Bearer
// @Param       id path string false "Entry ID, omitted to add"
// @Param       request body models.Experience true "Experience"
// @Success     204
// @Failure     400 {object} models.ErrorResponse
// @Router      /profile/experience [post]
// @Router      /profile/experience/{id} [put]
func (h *ProfileHandler) SaveExperience(c *gin.Context) {
	var e models.Experience
	if !bindJSON(c, &e) {
		return
	}
	if err := h.profiles.SaveExperience(c.Request.Context(), session(c).Token(), c.Param("id"), e); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteExperience godoc
// @Summary     Delete an experience entry
// @Tags        profile
// @Security    Bearer
// @Param       id path string true "Entry ID"
// @Success     204
// @Router      /profile/experience/{id} [delete]
func (h *ProfileHandler) DeleteExperience(c *gin.Context) {
	h.deleteEntry(c, h.client.DeleteExperience)
}

// SaveEducation godoc
// @Summary     Add or edit an education entry
// @Tags        profile
// @Accept      json
// @Security    Bearer
// @Param       id path string false "Entry ID, omitted to add"
// @Param       request body models.Education true "Education"
// @Success     204
// @Failure     400 {object} models.ErrorResponse
// @Router      /profile/education [post]
// @Router      /profile/education/{id} [put]
func (h *ProfileHandler) SaveEducation(c *gin.Context) {
	var e models.Education
	if !bindJSON(c, &e) {
		return
	}
	if err := h.profiles.SaveEducation(c.Request.Context(), session(c).Token(), c.Param("id"), e); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteEducation godoc
// @Summary     Delete an education entry
// @Tags        profile
// @Security    Bearer
// @Param       id path string true "Entry ID"
// @Success     204
// @Router      /profile/education/{id} [delete]
func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	h.deleteEntry(c, h.client.DeleteEducation)
}

// SaveSkill godoc
// @Summary     Add or edit a skill
// @Tags        profile
// @Accept      json
// @Security    Bearer
// @Param       id path string false "Entry ID, omitted to add"
// @Param       request body models.Skill true "Skill"
// @Success     204
// @Failure     400 {object} models.ErrorResponse
// @Router      /profile/skills [post]
// @Router      /profile/skills/{id} [put]
func (h *ProfileHandler) SaveSkill(c *gin.Context) {
	var s models.Skill
	if !bindJSON(c, &s) {
		return
	}
	var err error
	if id := c.Param("id"); id == "" {
		err = h.client.AddSkill(c.Request.Context(), session(c).Token(), s)
	} else {
		err = h.client.UpdateSkill(c.Request.Context(), session(c).Token(), id, s)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteSkill godoc
// @Summary     Delete a skill
// @Tags        profile
// @Security    Bearer
// @Param       id path string true "Entry ID"
// @Success     204
// @Router      /profile/skills/{id} [delete]
func (h *ProfileHandler) DeleteSkill(c *gin.Context) {
	h.deleteEntry(c, h.client.DeleteSkill)
}

func (h *ProfileHandler) deleteEntry(c *gin.Context, del func(ctx context.Context, token, id string) error) {
	if err := del(c.Request.Context(), session(c).Token(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
