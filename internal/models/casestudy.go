package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type DraftMode string

type WizardStep string

const (
	DraftModeCreate DraftMode = "create"
	DraftModeEdit   DraftMode = "edit"
)

const (
	StepSelection WizardStep = "selection"
	StepValues    WizardStep = "values"
)

// Draft is the working state of one wizard session. Nothing reaches the
// backend until the draft is submitted as a whole.
type Draft struct {
	ID             uuid.UUID             `json:"id"`
	UserID         string                `json:"user_id"`
	Mode           DraftMode             `json:"mode"`
	CaseStudyID    string                `json:"case_study_id,omitempty"`
	Step           WizardStep            `json:"step"`
	ProjectTitle   string                `json:"projectTitle"`
	ThumbnailImage *ImageRef             `json:"thumbnailImage,omitempty"`
	Tags           []string              `json:"tags"`
	SelectedFields []SelectedField       `json:"selectedFields"`
	CoverImage     *ImageRef             `json:"coverImage,omitempty"`
	IsPrivate      bool                  `json:"isPrivate"`
	FieldValues    map[string]FieldValue `json:"fieldValues"`

	// Configuration fetched when the session started.
	Sections      []Section `json:"sections"`
	AvailableTags []string  `json:"availableTags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewDraft(userID string, mode DraftMode) *Draft {
	now := time.Now().UTC()
	return &Draft{
		ID:             uuid.New(),
		UserID:         userID,
		Mode:           mode,
		Step:           StepSelection,
		Tags:           []string{},
		SelectedFields: []SelectedField{},
		FieldValues:    map[string]FieldValue{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// StagedFiles lists every upload the draft still references.
func (d *Draft) StagedFiles() []FileRef {
	var refs []FileRef
	if d.ThumbnailImage != nil && d.ThumbnailImage.File != nil {
		refs = append(refs, *d.ThumbnailImage.File)
	}
	if d.CoverImage != nil && d.CoverImage.File != nil {
		refs = append(refs, *d.CoverImage.File)
	}
	for _, v := range d.FieldValues {
		refs = append(refs, v.FileRefs()...)
	}
	return refs
}

// CaseStudy is the persisted entity as the backend returns it. FieldValues may
// arrive either as a JSON-encoded string or as an object; picture fields can
// also be echoed back as top-level arrays of hosted URLs, kept in Extra.
type CaseStudy struct {
	ID             string          `json:"_id"`
	ProjectTitle   string          `json:"projectTitle"`
	Tags           []string        `json:"tags"`
	SelectedFields []SelectedField `json:"selectedFields"`
	FieldValues    json.RawMessage `json:"fieldValues"`
	CoverImage     string          `json:"coverImage"`
	ThumbnailImage string          `json:"thumbnailImage"`
	IsPrivate      bool            `json:"isPrivate"`

	Extra map[string]json.RawMessage `json:"-"`
}

var caseStudyKeys = map[string]struct{}{
	"_id": {}, "projectTitle": {}, "tags": {}, "selectedFields": {}, "fieldValues": {},
	"coverImage": {}, "thumbnailImage": {}, "isPrivate": {},
}

func (c *CaseStudy) UnmarshalJSON(data []byte) error {
	type plain CaseStudy
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for k := range caseStudyKeys {
		delete(all, k)
	}
	if len(all) > 0 {
		p.Extra = all
	}
	*c = CaseStudy(p)
	return nil
}

// ParseFieldValues decodes FieldValues whether it was sent as a string or an
// object. A missing or null value yields an empty map.
func (c *CaseStudy) ParseFieldValues() (map[string]any, error) {
	out := map[string]any{}
	raw := c.FieldValues
	if len(raw) == 0 || string(raw) == "null" {
		return out, nil
	}
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if encoded == "" {
			return out, nil
		}
		raw = json.RawMessage(encoded)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type CaseStudyResponse struct {
	Success bool       `json:"success"`
	Data    *CaseStudy `json:"data,omitempty"`
	Error   string     `json:"error,omitempty"`
}
