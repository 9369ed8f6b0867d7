package handlers

import (
	"net/http"
	"strings"

	"designfoli-web/internal/auth"
	"designfoli-web/internal/designfoli"
	"designfoli-web/internal/models"
	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	client   *designfoli.Client
	identity auth.Provider
}

// NewAccountHandler wires account routes. identity may be nil, in which case
// login and refresh answer 503.
func NewAccountHandler(client *designfoli.Client, identity auth.Provider) *AccountHandler {
	return &AccountHandler{
		client:   client,
		identity: identity,
	}
}

func (h *AccountHandler) identityAvailable(c *gin.Context) bool {
	if h.identity == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "identity provider not configured",
			Message: "set SUPABASE_URL and SUPABASE_PUBLISHABLE_KEY",
		})
		return false
	}
	return true
}

// Login godoc
// @Summary     Sign in with email and password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.LoginRequest true "Credentials"
// @Success     200 {object} models.TokenResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /auth/login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	if !h.identityAvailable(c) {
		return
	}
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	s := &auth.Session{}
	if err := s.SignIn(c.Request.Context(), h.identity, strings.TrimSpace(req.Email), req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

// Refresh godoc
// @Summary     Exchange a refresh token
// @Description Browsers call this on the same 55 minute cadence the CLI uses.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.RefreshRequest true "Refresh token"
// @Success     200 {object} models.TokenResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /auth/refresh [post]
func (h *AccountHandler) Refresh(c *gin.Context) {
	if !h.identityAvailable(c) {
		return
	}
	var req models.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}
	s := auth.NewSession(&models.TokenResponse{RefreshToken: req.RefreshToken})
	if err := s.Refresh(c.Request.Context(), h.identity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

// Register godoc
// @Summary     Create the DesignFoli account of a signed-in user
// @Tags        auth
// @Accept      json
// @Security    Bearer
// @Param       request body models.RegisterRequest true "Account"
// @Success     201
// @Failure     400 {object} models.ErrorResponse
// @Router      /auth/register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.client.Register(c.Request.Context(), session(c).Token(), req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// EmailRegister godoc
// @Summary     Sign up with email and password
// @Tags        auth
// @Accept      json
// @Param       request body models.EmailRegisterRequest true "Account"
// @Success     201
// @Failure     400 {object} models.ErrorResponse
// @Router      /auth/email/register [post]
func (h *AccountHandler) EmailRegister(c *gin.Context) {
	var req models.EmailRegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.client.EmailRegister(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// SuggestUsername godoc
// @Summary     Username suggestions
// @Tags        publish
// @Produce     json
// @Security    Bearer
// @Success     200 {array} string
// @Router      /publish/suggest-username [get]
func (h *AccountHandler) SuggestUsername(c *gin.Context) {
	suggestions, err := h.client.SuggestUsername(c.Request.Context(), session(c).Token())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

// CheckUsername godoc
// @Summary     Is a username free
// @Tags        publish
// @Produce     json
// @Security    Bearer
// @Param       username query string true "Username"
// @Success     200 {object} models.UsernameAvailability
// @Failure     400 {object} models.ErrorResponse
// @Router      /publish/check-username [get]
func (h *AccountHandler) CheckUsername(c *gin.Context) {
	username := strings.TrimSpace(c.Query("username"))
	if username == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "username is required", Field: "username"})
		return
	}
	available, err := h.client.CheckUsername(c.Request.Context(), session(c).Token(), username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.UsernameAvailability{Username: username, Available: available})
}

// Publish godoc
// @Summary     Claim a username and publish the portfolio
// @Tags        publish
// @Accept      json
// @Security    Bearer
// @Param       request body models.PublishRequest true "Username and display name"
// @Success     204
// @Failure     400 {object} models.ErrorResponse
// @Router      /publish [post]
func (h *AccountHandler) Publish(c *gin.Context) {
	var req models.PublishRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.client.SetUsernameAndPublish(c.Request.Context(), session(c).Token(), req.Username, req.Fullname); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
