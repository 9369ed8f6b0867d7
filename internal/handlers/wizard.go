package handlers

import (
	"context"
	"net/http"
	"strconv"

	"designfoli-web/internal/casestudy"
	"designfoli-web/internal/models"
	"designfoli-web/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WizardHandler struct {
	wizard         *services.WizardService
	maxUploadBytes int64
}

func NewWizardHandler(wizard *services.WizardService, maxUploadBytes int64) *WizardHandler {
	return &WizardHandler{
		wizard:         wizard,
		maxUploadBytes: maxUploadBytes,
	}
}

func draftResponse(c *gin.Context, status int, d *models.Draft, warning string) {
	c.JSON(status, models.DraftResponse{Draft: d, Warning: warning})
}

// Start godoc
// @Summary     Start a case study
// @Description Opens a create-mode draft loaded with the field configuration.
// @Description If the configuration cannot be fetched the draft starts with no sections and `warning` says why.
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Success     201 {object} models.DraftResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /drafts [post]
func (h *WizardHandler) Start(c *gin.Context) {
	s := session(c)
	d, warning, err := h.wizard.Start(c.Request.Context(), s.User().ID, s.Token())
	if err != nil {
		respondError(c, err)
		return
	}
	draftResponse(c, http.StatusCreated, d, warning)
}

// StartEdit godoc
// @Summary     Edit a case study
// @Description Opens an edit-mode draft prefilled from an existing case study.
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Param       case_study_id path string true "Case study ID"
// @Success     201 {object} models.DraftResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /case-studies/{case_study_id}/drafts [post]
func (h *WizardHandler) StartEdit(c *gin.Context) {
	s := session(c)
	d, warning, err := h.wizard.StartEdit(c.Request.Context(), s.User().ID, s.Token(), c.Param("case_study_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	draftResponse(c, http.StatusCreated, d, warning)
}

// Get godoc
// @Summary     Get a draft
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Param       draft_id path string true "Draft ID (UUID)"
// @Success     200 {object} models.DraftResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /drafts/{draft_id} [get]
func (h *WizardHandler) Get(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	d, err := h.wizard.Get(c.Request.Context(), session(c).User().ID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	draftResponse(c, http.StatusOK, d, "")
}

// Cancel godoc
// @Summary     Discard a draft
// @Description Deletes the draft and every file staged for it.
// @Tags        wizard
// @Security    Bearer
// @Param       draft_id path string true "Draft ID (UUID)"
// @Success     204
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /drafts/{draft_id} [delete]
func (h *WizardHandler) Cancel(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	if err := h.wizard.Cancel(c.Request.Context(), session(c).User().ID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleField godoc
// @Summary     Select or deselect a field
// @Tags        wizard
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       draft_id path string true "Draft ID (UUID)"
// @Param       request body models.ToggleFieldRequest true "Field to toggle"
// @Success     200 {object} models.DraftResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /drafts/{draft_id}/fields/toggle [post]
func (h *WizardHandler) ToggleField(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req models.ToggleFieldRequest
	if !bindJSON(c, &req) {
		return
	}
	d, _, err := h.wizard.ToggleField(c.Request.Context(), session(c).User().ID, id, req.SectionID, req.FieldID)
	if err != nil {
		respondError(c, err)
		return
	}
	draftResponse(c, http.StatusOK, d, "")
}

// SetMetadata godoc
// @Summary     Update title and tags
// @Description Omitted members are left unchanged.
// @Tags        wizard
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       draft_id path string true "Draft ID (UUID)"
// @Param       request body models.MetadataRequest true "Metadata patch"
// @Success     200 {object} models.DraftResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /drafts/{draft_id}/metadata [patch]
func (h *WizardHandler) SetMetadata(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req models.MetadataRequest
	if !bindJSON(c, &req) {
		return
	}
	d, err := h.wizard.SetMetadata(c.Request.Context(), session(c).User().ID, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	draftResponse(c, http.StatusOK, d, "")
}

// SearchTags godoc
// @Summary     Search the tag vocabulary
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Param       draft_id path string true "Draft ID (UUID)"
// @Param       q query string false "Case-insensitive substring"
// @Success     200 {array} string
// @Router      /drafts/{draft_id}/tags [get]
func (h *WizardHandler) SearchTags(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	tags, err := h.wizard.SearchTags(c.Request.Context(), session(c).User().ID, id, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// AddTag godoc
// @Summary     Add a tag
// @Tags        wizard
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       draft_id path string true "Draft ID (UUID)"
// @Param       request body models.TagRequest true "Tag from the vocabulary"
// @Success     200 {object} models.DraftResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /drafts/{draft_id}/tags [post]
func (h *WizardHandler) AddTag(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req models.TagRequest
	if !bindJSON(c, &req) {
		return
	}
	d, err := h.wizard.AddTag(c.Request.Context(), session(c).User().ID, id, req.Tag)
	if err != nil {
		respondError(c, err)
		return
	}
	draftResponse(c, http.StatusOK, d, "")
}

// RemoveTag godoc
// @Summary     Remove a tag
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Param       draft_id path string true "Draft ID (UUID)"
// @Param       tag path string true "Tag"
// @Success     200 {object} models.DraftResponse
// @Router      /drafts/{draft_id}/tags/{tag} [delete]
func (h *WizardHandler) RemoveTag(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	d, err := h.wizard.RemoveTag(c.Request.Context(), session(c).User().ID, id, c.Param("tag"))
	if err != nil {
		respondError(c, err)
		return
	}
	draftResponse(c, http.StatusOK, d, "")
}

// SetThumbnail godoc
// @Summary     Upload the thumbnail image
// @Tags        wizard
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       draft_id path string true "Draft ID (UUID)"
// @Param       thumbnailImage formData file true "Image, 2MB max"
// @Success     200 {object} models.DraftResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /drafts/{draft_id}/thumbnail [put]
func (h *WizardHandler) SetThumbnail(c *gin.Context) {
	h.singleImage(c, "thumbnailImage", casestudy.ThumbnailMaxMB, h.wizard.SetThumbnail)
}

// SetCoverImage godoc
// @Summary     Upload the cover image
// @Tags        wizard
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       draft_id path string true "Draft ID (UUID)"
// @Param       coverImage formData file true "Image, 5MB max"
// @Success     200 {object} models.DraftResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /drafts/{draft_id}/cover [put]
func (h *WizardHandler) SetCoverImage(c *gin.Context) {
	h.singleImage(c, "coverImage", casestudy.CoverMaxMB, h.wizard.SetCoverImage)
}

type imageSetter func(ctx context.Context, userID string, draftID uuid.UUID, up services.Upload, maxBytes int64) (*models.Draft, error)

// limit caps a field's own size limit at the configured upload maximum.
func (h *WizardHandler) limit(fieldMaxMB int) int64 {
	fieldMax := int64(fieldMaxMB) << 20
	if h.maxUploadBytes > 0 && h.maxUploadBytes < fieldMax {
		return h.maxUploadBytes
	}
	return fieldMax
}

func (h *WizardHandler) singleImage(c *gin.Context, field string, fieldMaxMB int, set imageSetter) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	limit := h.limit(fieldMaxMB)
	files, ok := formFiles(c, limit, field, "file", "image")
	if !ok {
		return
	}
	up, err := readUpload(files[0])
	if err != nil {
		respondError(c, err)
		return
	}
	d, err := set(c.Request.Context(), session(c).User().ID, id, up, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	draftResponse(c, http.StatusOK, d, "")
}

// Advance godoc
// @Summary     Go to the values step
// @Description Requires a project title. Field values are not checked here.
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Param       draft_id path string true "Draft ID (UUID)"
// @Success     200 {object} models.DraftResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /drafts/{draft_id}/advance [post]
func (h *WizardHandler) Advance(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	d, err := h.wizard.Advance(c.Request.Context(), session(c).User().ID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	draftResponse(c, http.StatusOK, d, "")
}

// Back godoc
// @Summary     Return to field selection
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Param       draft_id path string true "Draft ID (UUID)"
// @Success     200 {object} models.DraftResponse
// @Router      /drafts/{draft_id}/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	d, err := h.wizard.Back(c.Request.Context(), session(c).User().ID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	draftResponse(c, http.StatusOK, d, "")
}

// SetFieldValue godoc
// @Summary     Set a field value
// @Description Send `text` for text, textarea and number fields, `values` for checkbox fields.
// @Tags        wizard
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       draft_id path string true "Draft ID (UUID)"
// @Param       name path string true "Field name"
// @Param       request body models.FieldValueRequest true "Value"
// @Success     200 {object} models.DraftResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /drafts/{draft_id}/values/{name} [put]
func (h *WizardHandler) SetFieldValue(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req models.FieldValueRequest
	if !bindJSON(c, &req) {
		return
	}
	d, err := h.wizard.SetFieldValue(c.Request.Context(), session(c).User().ID, id, c.Param("name"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	draftResponse(c, http.StatusOK, d, "")
}

// UploadPictures godoc
// @Summary     Add images to a picture field
// @Tags        wizard
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       draft_id path string true "Draft ID (UUID)"
// @Param       name path string true "Picture field name"
// @Param       files formData file true "Images (multiple files allowed), 5MB max each"
// @Success     200 {object} models.DraftResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /drafts/{draft_id}/pictures/{name} [post]
func (h *WizardHandler) UploadPictures(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	name := c.Param("name")
	limit := h.limit(casestudy.PictureMaxMB)
	files, ok := formFiles(c, limit*8, "files", "images", name)
	if !ok {
		return
	}
	uploads := make([]services.Upload, 0, len(files))
	for _, fh := range files {
		up, err := readUpload(fh)
		if err != nil {
			respondError(c, err)
			return
		}
		uploads = append(uploads, up)
	}
	d, err := h.wizard.UploadPictures(c.Request.Context(), session(c).User().ID, id, name, uploads, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	draftResponse(c, http.StatusOK, d, "")
}

// RemovePicture godoc
// @Summary     Remove one image from a picture field
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Param       draft_id path string true "Draft ID (UUID)"
// @Param       name path string true "Picture field name"
// @Param       index path int true "Position in the field's image list"
// @Success     200 {object} models.DraftResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /drafts/{draft_id}/pictures/{name}/{index} [delete]
func (h *WizardHandler) RemovePicture(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid index"})
		return
	}
	d, err := h.wizard.RemovePicture(c.Request.Context(), session(c).User().ID, id, c.Param("name"), index)
	if err != nil {
		respondError(c, err)
		return
	}
	draftResponse(c, http.StatusOK, d, "")
}

// SetCaption godoc
// @Summary     Set a picture field's caption
// @Tags        wizard
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       draft_id path string true "Draft ID (UUID)"
// @Param       name path string true "Picture field name"
// @Param       request body models.CaptionRequest true "Caption"
// @Success     200 {object} models.DraftResponse
// @Router      /drafts/{draft_id}/pictures/{name}/caption [put]
func (h *WizardHandler) SetCaption(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req models.CaptionRequest
	if !bindJSON(c, &req) {
		return
	}
	d, err := h.wizard.SetCaption(c.Request.Context(), session(c).User().ID, id, c.Param("name"), req.Caption)
	if err != nil {
		respondError(c, err)
		return
	}
	draftResponse(c, http.StatusOK, d, "")
}

// SetPrivate godoc
// @Summary     Set visibility
// @Tags        wizard
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       draft_id path string true "Draft ID (UUID)"
// @Param       request body models.PrivacyRequest true "Visibility"
// @Success     200 {object} models.DraftResponse
// @Router      /drafts/{draft_id}/privacy [put]
func (h *WizardHandler) SetPrivate(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req models.PrivacyRequest
	if !bindJSON(c, &req) {
		return
	}
	d, err := h.wizard.SetPrivate(c.Request.Context(), session(c).User().ID, id, req.IsPrivate)
	if err != nil {
		respondError(c, err)
		return
	}
	draftResponse(c, http.StatusOK, d, "")
}

// Form godoc
// @Summary     Render the values step
// @Description Returns one control per selected field, grouped by section.
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Param       draft_id path string true "Draft ID (UUID)"
// @Success     200 {object} models.FormResponse
// @Router      /drafts/{draft_id}/form [get]
func (h *WizardHandler) Form(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	form, err := h.wizard.Form(c.Request.Context(), session(c).User().ID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// Submit godoc
// @Summary     Submit the case study
// @Description Validates the draft, then creates or updates the case study on the backend.
// @Description On success the draft is deleted; on failure it is kept for a retry.
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Param       draft_id path string true "Draft ID (UUID)"
// @Success     200 {object} models.SubmitResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /drafts/{draft_id}/submit [post]
func (h *WizardHandler) Submit(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	s := session(c)
	resp, err := h.wizard.Submit(c.Request.Context(), s.User().ID, s.Token(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
