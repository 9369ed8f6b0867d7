package handlers

import (
	"github.com/gin-gonic/gin"
)

// Handlers groups every route handler of the gateway.
type Handlers struct {
	Health      *HealthHandler
	Wizard      *WizardHandler
	CaseStudies *CaseStudiesHandler
	Profile     *ProfileHandler
	Account     *AccountHandler
	Proxy       *ProxyHandler
}

// Register mounts the gateway API under /api/v1 and the passthrough proxy
// under /api/proxy. requireAuth guards every route that acts for a user.
func (h *Handlers) Register(router *gin.Engine, requireAuth gin.HandlerFunc) {
	router.GET("/health", h.Health.Health)

	// Passthrough (auth is the backend's business)
	proxy := router.Group("/api/proxy")
	for _, method := range []string{"GET", "POST", "PUT", "PATCH", "DELETE"} {
		proxy.Handle(method, "/*path", h.Proxy.Forward)
	}

	api := router.Group("/api/v1")

	// Public
	api.POST("/auth/login", h.Account.Login)
	api.POST("/auth/refresh", h.Account.Refresh)
	api.POST("/auth/email/register", h.Account.EmailRegister)
	api.GET("/public/case-studies/:case_study_id", h.CaseStudies.GetPublic)
	api.GET("/public/profiles/:username", h.Profile.GetPublicProfile)

	authed := api.Group("")
	authed.Use(requireAuth)

	authed.POST("/auth/register", h.Account.Register)

	// Publishing
	authed.GET("/publish/suggest-username", h.Account.SuggestUsername)
	authed.GET("/publish/check-username", h.Account.CheckUsername)
	authed.POST("/publish", h.Account.Publish)

	// Case studies
	authed.GET("/configuration", h.CaseStudies.GetConfiguration)
	authed.GET("/case-studies/:case_study_id", h.CaseStudies.Get)
	authed.DELETE("/case-studies/:case_study_id", h.CaseStudies.Delete)
	authed.POST("/case-studies/:case_study_id/drafts", h.Wizard.StartEdit)

	// Wizard drafts
	authed.POST("/drafts", h.Wizard.Start)
	authed.GET("/drafts/:draft_id", h.Wizard.Get)
	authed.DELETE("/drafts/:draft_id", h.Wizard.Cancel)
	authed.POST("/drafts/:draft_id/fields/toggle", h.Wizard.ToggleField)
	authed.PATCH("/drafts/:draft_id/metadata", h.Wizard.SetMetadata)
	authed.GET("/drafts/:draft_id/tags", h.Wizard.SearchTags)
	authed.POST("/drafts/:draft_id/tags", h.Wizard.AddTag)
	authed.DELETE("/drafts/:draft_id/tags/:tag", h.Wizard.RemoveTag)
	authed.PUT("/drafts/:draft_id/thumbnail", h.Wizard.SetThumbnail)
	authed.PUT("/drafts/:draft_id/cover", h.Wizard.SetCoverImage)
	authed.POST("/drafts/:draft_id/advance", h.Wizard.Advance)
	authed.POST("/drafts/:draft_id/back", h.Wizard.Back)
	authed.PUT("/drafts/:draft_id/values/:name", h.Wizard.SetFieldValue)
	authed.POST("/drafts/:draft_id/pictures/:name", h.Wizard.UploadPictures)
	authed.PUT("/drafts/:draft_id/pictures/:name/caption", h.Wizard.SetCaption)
	authed.DELETE("/drafts/:draft_id/pictures/:name/:index", h.Wizard.RemovePicture)
	authed.PUT("/drafts/:draft_id/privacy", h.Wizard.SetPrivate)
	authed.GET("/drafts/:draft_id/form", h.Wizard.Form)
	authed.POST("/drafts/:draft_id/submit", h.Wizard.Submit)

	// Profile
	authed.GET("/profile", h.Profile.GetProfile)
	authed.PUT("/profile", h.Profile.UpdateProfile)
	authed.PUT("/profile/social-links", h.Profile.UpdateSocialLinks)
	authed.GET("/profile/style", h.Profile.GetStyle)
	authed.PUT("/profile/style", h.Profile.UpdateStyle)
	authed.POST("/profile/experience", h.Profile.SaveExperience)
	authed.PUT("/profile/experience/:id", h.Profile.SaveExperience)
	authed.DELETE("/profile/experience/:id", h.Profile.DeleteExperience)
	authed.POST("/profile/education", h.Profile.SaveEducation)
	authed.PUT("/profile/education/:id", h.Profile.SaveEducation)
	authed.DELETE("/profile/education/:id", h.Profile.DeleteEducation)
	authed.POST("/profile/skills", h.Profile.SaveSkill)
	authed.PUT("/profile/skills/:id", h.Profile.SaveSkill)
	authed.DELETE("/profile/skills/:id", h.Profile.DeleteSkill)
}
