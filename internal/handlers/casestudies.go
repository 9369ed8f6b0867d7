package handlers

import (
	"net/http"

	"designfoli-web/internal/casestudy"
	"designfoli-web/internal/designfoli"
	"designfoli-web/internal/models"
	"github.com/gin-gonic/gin"
)

type CaseStudiesHandler struct {
	client *designfoli.Client
}

func NewCaseStudiesHandler(client *designfoli.Client) *CaseStudiesHandler {
	return &CaseStudiesHandler{client: client}
}

// CaseStudyView is a case study with its field values decoded.
type CaseStudyView struct {
	*models.CaseStudy
	Values map[string]models.FieldValue `json:"values"`
}

func view(cs *models.CaseStudy) (*CaseStudyView, error) {
	raw, err := cs.ParseFieldValues()
	if err != nil {
		return nil, err
	}
	return &CaseStudyView{
		CaseStudy: cs,
		Values:    casestudy.DecodeFieldValues(cs.SelectedFields, raw, cs.Extra),
	}, nil
}

// GetConfiguration godoc
// @Summary     Field configuration
// @Description Sections with their fields, and the tag vocabulary.
// @Tags        case-studies
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.Configuration
// @Failure     401 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /configuration [get]
func (h *CaseStudiesHandler) GetConfiguration(c *gin.Context) {
	cfg, err := h.client.GetConfiguration(c.Request.Context(), session(c).Token())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// Get godoc
// @Summary     Get one of my case studies
// @Tags        case-studies
// @Produce     json
// @Security    Bearer
// @Param       case_study_id path string true "Case study ID"
// @Success     200 {object} CaseStudyView
// @Failure     404 {object} models.ErrorResponse
// @Router      /case-studies/{case_study_id} [get]
func (h *CaseStudiesHandler) Get(c *gin.Context) {
	cs, err := h.client.GetCaseStudy(c.Request.Context(), session(c).Token(), c.Param("case_study_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondView(c, cs)
}

// GetPublic godoc
// @Summary     Get a published case study
// @Tags        public
// @Produce     json
// @Param       case_study_id path string true "Case study ID"
// @Success     200 {object} CaseStudyView
// @Failure     404 {object} models.ErrorResponse
// @Router      /public/case-studies/{case_study_id} [get]
func (h *CaseStudiesHandler) GetPublic(c *gin.Context) {
	cs, err := h.client.GetPublicCaseStudy(c.Request.Context(), c.Param("case_study_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondView(c, cs)
}

func (h *CaseStudiesHandler) respondView(c *gin.Context, cs *models.CaseStudy) {
	v, err := view(cs)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "invalid fieldValues from backend",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, v)
}

// Delete godoc
// @Summary     Delete one of my case studies
// @Tags        case-studies
// @Security    Bearer
// @Param       case_study_id path string true "Case study ID"
// @Success     204
// @Failure     404 {object} models.ErrorResponse
// @Router      /case-studies/{case_study_id} [delete]
func (h *CaseStudiesHandler) Delete(c *gin.Context) {
	if err := h.client.DeleteCaseStudy(c.Request.Context(), session(c).Token(), c.Param("case_study_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
