package models

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Envelope is the backend's standard response wrapper.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type DraftResponse struct {
	Draft   *Draft `json:"draft"`
	Warning string `json:"warning,omitempty"`
}

type FormResponse struct {
	DraftID  string            `json:"draft_id"`
	Sections []SectionControls `json:"sections"`
}

// SectionControls groups rendered step-2 controls by their owning section.
type SectionControls struct {
	SectionID   string    `json:"sectionId"`
	SectionName string    `json:"sectionName"`
	Controls    []Control `json:"controls"`
}

type ControlKind string

const (
	ControlNone     ControlKind = "none"
	ControlInput    ControlKind = "input"
	ControlTextarea ControlKind = "textarea"
	ControlPictures ControlKind = "pictures"
	ControlNumber   ControlKind = "number"
	ControlCheckbox ControlKind = "checkbox"
)

// Control describes one input widget for a selected field.
type Control struct {
	Kind        ControlKind    `json:"kind"`
	Name        string         `json:"name"`
	Label       string         `json:"label"`
	Required    bool           `json:"required"`
	Placeholder string         `json:"placeholder,omitempty"`
	Hint        string         `json:"hint,omitempty"`
	Rows        int            `json:"rows,omitempty"`
	Options     []string       `json:"options,omitempty"`
	Value       string         `json:"value,omitempty"`
	Values      []string       `json:"values,omitempty"`
	Images      []PictureEntry `json:"images,omitempty"`
	CaptionName string         `json:"captionName,omitempty"`
	Caption     string         `json:"caption,omitempty"`
	MaxSizeMB   int            `json:"maxSizeMB,omitempty"`
}

// PictureEntry is one element of a picture field's merged image list.
type PictureEntry struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
	Uploaded bool   `json:"uploaded"`
}

type SubmitResponse struct {
	CaseStudyID     string `json:"case_study_id,omitempty"`
	Message         string `json:"message"`
	Redirect        string `json:"redirect"`
	RedirectAfterMs int    `json:"redirectAfterMs"`
}

type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
}

type UsernameAvailability struct {
	Username  string `json:"username"`
	Available bool   `json:"available"`
}
