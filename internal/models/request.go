package models

type MetadataRequest struct {
	ProjectTitle *string   `json:"projectTitle,omitempty" example:"Checkout redesign"`
	Tags         *[]string `json:"tags,omitempty"`
}

type ToggleFieldRequest struct {
	SectionID string `json:"sectionId" binding:"required"`
	FieldID   string `json:"fieldId" binding:"required"`
}

type TagRequest struct {
	Tag string `json:"tag" binding:"required"`
}

// FieldValueRequest sets a text field (Text) or a list field (Values).
type FieldValueRequest struct {
	Text   *string  `json:"text,omitempty"`
	Values []string `json:"values,omitempty"`
}

type CaptionRequest struct {
	Caption string `json:"caption"`
}

type PrivacyRequest struct {
	IsPrivate bool `json:"isPrivate"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RegisterRequest completes a federated sign-up for an already authenticated user.
type RegisterRequest struct {
	Username     string `json:"username" binding:"required"`
	Title        string `json:"title"`
	CompanyName  string `json:"companyName"`
	Introduction string `json:"introduction"`
}

type EmailRegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Username     string `json:"username" binding:"required"`
	Title        string `json:"title"`
	CompanyName  string `json:"companyName"`
	Introduction string `json:"introduction"`
}

type PublishRequest struct {
	Username    string `json:"username" binding:"required"`
	Fullname    string `json:"fullname"`
	IsPublished bool   `json:"isPublished"`
}
