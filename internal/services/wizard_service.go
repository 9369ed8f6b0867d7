package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"designfoli-web/internal/casestudy"
	"designfoli-web/internal/drafts"
	"designfoli-web/internal/errorz"
	"designfoli-web/internal/events"
	"designfoli-web/internal/models"
	"designfoli-web/internal/staging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// After a successful submit the UI shows the message, then goes home.
const (
	SubmitRedirect        = "/"
	SubmitRedirectAfterMs = 1500
)

// CaseStudyBackend is the part of the DesignFoli API the wizard needs.
type CaseStudyBackend interface {
	GetConfiguration(ctx context.Context, token string) (*models.Configuration, error)
	GetCaseStudy(ctx context.Context, token, id string) (*models.CaseStudy, error)
	CreateCaseStudy(ctx context.Context, token string, payload *casestudy.Payload) (*models.CaseStudy, error)
	UpdateCaseStudy(ctx context.Context, token, id string, payload *casestudy.Payload) (*models.CaseStudy, error)
}

// Upload is a file received from the browser.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// WizardService runs the two-step case-study wizard against server-side drafts.
type WizardService struct {
	backend   CaseStudyBackend
	drafts    drafts.Store
	files     staging.Store
	publisher events.Publisher

	// cleanupBackoffs spaces retries of failed staged-file deletes.
	cleanupBackoffs []time.Duration
}

func NewWizardService(
	backend CaseStudyBackend,
	draftStore drafts.Store,
	files staging.Store,
	publisher events.Publisher,
) *WizardService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &WizardService{
		backend:         backend,
		drafts:          draftStore,
		files:           files,
		publisher:       publisher,
		cleanupBackoffs: []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second},
	}
}

// Start opens a create-mode draft. A configuration failure does not stop the
// wizard: the draft starts with no sections and the failure comes back as a
// warning.
func (s *WizardService) Start(ctx context.Context, userID, token string) (*models.Draft, string, error) {
	d := models.NewDraft(userID, models.DraftModeCreate)
	warning := s.loadConfiguration(ctx, d, token)
	if err := s.drafts.Save(ctx, d); err != nil {
		return nil, "", fmt.Errorf("failed to save draft: %w", err)
	}
	events.PublishUserEvent(ctx, s.publisher, userID, events.DraftStarted, events.DraftStartedPayload(d.ID, string(d.Mode)))
	return d, warning, nil
}

// StartEdit opens an edit-mode draft hydrated from an existing case study.
func (s *WizardService) StartEdit(ctx context.Context, userID, token, caseStudyID string) (*models.Draft, string, error) {
	cs, err := s.backend.GetCaseStudy(ctx, token, caseStudyID)
	if err != nil {
		return nil, "", err
	}
	d, err := casestudy.Hydrate(userID, cs)
	if err != nil {
		return nil, "", err
	}
	warning := s.loadConfiguration(ctx, d, token)
	if err := s.drafts.Save(ctx, d); err != nil {
		return nil, "", fmt.Errorf("failed to save draft: %w", err)
	}
	events.PublishUserEvent(ctx, s.publisher, userID, events.DraftStarted, events.DraftStartedPayload(d.ID, string(d.Mode)))
	return d, warning, nil
}

func (s *WizardService) loadConfiguration(ctx context.Context, d *models.Draft, token string) string {
	cfg, err := s.backend.GetConfiguration(ctx, token)
	if err != nil {
		log.Printf("Failed to fetch configuration for draft %s: %v", d.ID, err)
		d.Sections = []models.Section{}
		d.AvailableTags = []string{}
		return fmt.Sprintf("Failed to fetch configuration: %v", err)
	}
	d.Sections = cfg.Sections
	d.AvailableTags = cfg.Tags
	return ""
}

// Get loads a draft owned by userID.
func (s *WizardService) Get(ctx context.Context, userID string, draftID uuid.UUID) (*models.Draft, error) {
	d, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if d.UserID != userID {
		return nil, fmt.Errorf("draft %s: %w", draftID, errorz.ErrForbidden)
	}
	return d, nil
}

// mutate changes a draft owned by userID through drafts.Store.Update. fn's
// error aborts without saving. fn may be retried, so it only touches d and
// plain assignments in its closure.
func (s *WizardService) mutate(ctx context.Context, userID string, draftID uuid.UUID, fn func(d *models.Draft) error) (*models.Draft, error) {
	return s.drafts.Update(ctx, draftID, func(d *models.Draft) error {
		if d.UserID != userID {
			return fmt.Errorf("draft %s: %w", draftID, errorz.ErrForbidden)
		}
		if err := fn(d); err != nil {
			return err
		}
		d.UpdatedAt = time.Now().UTC()
		return nil
	})
}

// ToggleField selects or deselects a field and reports the new state.
func (s *WizardService) ToggleField(ctx context.Context, userID string, draftID uuid.UUID, sectionID, fieldID string) (*models.Draft, bool, error) {
	var selected bool
	d, err := s.mutate(ctx, userID, draftID, func(d *models.Draft) error {
		section, field, err := casestudy.FindField(d.Sections, sectionID, fieldID)
		if err != nil {
			return err
		}
		selected = casestudy.ToggleField(d, section, field)
		return nil
	})
	return d, selected, err
}

func (s *WizardService) SetMetadata(ctx context.Context, userID string, draftID uuid.UUID, req models.MetadataRequest) (*models.Draft, error) {
	return s.mutate(ctx, userID, draftID, func(d *models.Draft) error {
		if req.Tags != nil {
			for _, tag := range *req.Tags {
				if !containsTag(d.AvailableTags, tag) {
					return errorz.Invalid("tags", "Unknown tag: %s", tag)
				}
			}
		}
		casestudy.SetMetadata(d, casestudy.Metadata{ProjectTitle: req.ProjectTitle, Tags: req.Tags})
		return nil
	})
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (s *WizardService) AddTag(ctx context.Context, userID string, draftID uuid.UUID, tag string) (*models.Draft, error) {
	return s.mutate(ctx, userID, draftID, func(d *models.Draft) error {
		return casestudy.AddTag(d, tag)
	})
}

func (s *WizardService) RemoveTag(ctx context.Context, userID string, draftID uuid.UUID, tag string) (*models.Draft, error) {
	return s.mutate(ctx, userID, draftID, func(d *models.Draft) error {
		casestudy.RemoveTag(d, tag)
		return nil
	})
}

// SearchTags filters the draft's tag vocabulary.
func (s *WizardService) SearchTags(ctx context.Context, userID string, draftID uuid.UUID, query string) ([]string, error) {
	d, err := s.Get(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	return casestudy.FilterTags(d.AvailableTags, query), nil
}

// SetThumbnail stages a thumbnail upload, replacing any previous one.
func (s *WizardService) SetThumbnail(ctx context.Context, userID string, draftID uuid.UUID, up Upload, maxBytes int64) (*models.Draft, error) {
	return s.replaceImage(ctx, userID, draftID, "thumbnailImage", up, maxBytes, func(d *models.Draft) **models.ImageRef {
		return &d.ThumbnailImage
	})
}

// SetCoverImage stages a cover upload, replacing any previous one.
func (s *WizardService) SetCoverImage(ctx context.Context, userID string, draftID uuid.UUID, up Upload, maxBytes int64) (*models.Draft, error) {
	return s.replaceImage(ctx, userID, draftID, "coverImage", up, maxBytes, func(d *models.Draft) **models.ImageRef {
		return &d.CoverImage
	})
}

func (s *WizardService) replaceImage(ctx context.Context, userID string, draftID uuid.UUID, field string, up Upload, maxBytes int64, slot func(*models.Draft) **models.ImageRef) (*models.Draft, error) {
	up, err := checkImage(field, up, maxBytes)
	if err != nil {
		return nil, err
	}
	if _, err := s.Get(ctx, userID, draftID); err != nil {
		return nil, err
	}
	ref, err := s.files.Put(ctx, userID, draftID, up.Filename, up.ContentType, up.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to stage %s: %w", field, err)
	}

	var old *models.FileRef
	d, err := s.mutate(ctx, userID, draftID, func(d *models.Draft) error {
		old = nil
		target := slot(d)
		if *target != nil {
			old = (*target).File
		}
		if field == "thumbnailImage" {
			casestudy.SetMetadata(d, casestudy.Metadata{ThumbnailImage: models.UploadedImage(ref)})
		} else {
			casestudy.SetCoverImage(d, models.UploadedImage(ref))
		}
		return nil
	})
	if err != nil {
		s.cleanup(ref)
		return nil, err
	}
	if old != nil {
		s.cleanup(*old)
	}
	return d, nil
}

// checkImage enforces the size limit and sniffs the bytes; the client's
// Content-Type is replaced by the detected one.
func checkImage(field string, up Upload, maxBytes int64) (Upload, error) {
	if len(up.Data) == 0 {
		return up, errorz.Invalid(field, "File %s is empty", up.Filename)
	}
	if maxBytes > 0 && int64(len(up.Data)) > maxBytes {
		return up, errorz.Invalid(field, "File %s exceeds the %dMB limit", up.Filename, maxBytes>>20)
	}
	mtype := mimetype.Detect(up.Data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return up, errorz.Invalid(field, "File %s is not an image", up.Filename)
	}
	up.ContentType = mtype.String()
	return up, nil
}

// Advance moves to the values step once the project has a title.
func (s *WizardService) Advance(ctx context.Context, userID string, draftID uuid.UUID) (*models.Draft, error) {
	return s.mutate(ctx, userID, draftID, casestudy.Advance)
}

func (s *WizardService) Back(ctx context.Context, userID string, draftID uuid.UUID) (*models.Draft, error) {
	return s.mutate(ctx, userID, draftID, func(d *models.Draft) error {
		casestudy.Back(d)
		return nil
	})
}

// SetFieldValue overwrites the value of a selected text-like field.
func (s *WizardService) SetFieldValue(ctx context.Context, userID string, draftID uuid.UUID, name string, req models.FieldValueRequest) (*models.Draft, error) {
	return s.mutate(ctx, userID, draftID, func(d *models.Draft) error {
		sf, ok := casestudy.SelectedByName(d, name)
		if !ok {
			return errorz.Invalid(name, "Field %s is not selected", name)
		}
		switch sf.FieldType {
		case models.FieldTypePicture:
			return errorz.Invalid(name, "Upload images for %s instead", sf.FieldLabel)
		case models.FieldTypeCheckbox:
			casestudy.SetFieldValue(d, name, models.TextArrayValue(append([]string{}, req.Values...)))
		default:
			if req.Text != nil {
				casestudy.SetFieldValue(d, name, models.TextValue(*req.Text))
			} else {
				casestudy.SetFieldValue(d, name, models.TextArrayValue(append([]string{}, req.Values...)))
			}
		}
		return nil
	})
}

// UploadPictures stages files and appends them to a picture field.
func (s *WizardService) UploadPictures(ctx context.Context, userID string, draftID uuid.UUID, name string, uploads []Upload, maxBytes int64) (*models.Draft, error) {
	if len(uploads) == 0 {
		return nil, errorz.Invalid(name, "No files uploaded")
	}
	checked := make([]Upload, 0, len(uploads))
	for _, up := range uploads {
		up, err := checkImage(name, up, maxBytes)
		if err != nil {
			return nil, err
		}
		checked = append(checked, up)
	}
	takesPictures := func(d *models.Draft) error {
		sf, ok := casestudy.SelectedByName(d, name)
		if !ok || sf.FieldType != models.FieldTypePicture {
			return errorz.Invalid(name, "Field %s does not take pictures", name)
		}
		return nil
	}

	current, err := s.Get(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	if err := takesPictures(current); err != nil {
		return nil, err
	}

	// Files are staged outside the draft update so concurrent uploads only
	// serialize on the append.
	staged := make([]models.FileRef, 0, len(checked))
	for _, up := range checked {
		ref, err := s.files.Put(ctx, userID, draftID, up.Filename, up.ContentType, up.Data)
		if err != nil {
			s.cleanup(staged...)
			return nil, fmt.Errorf("failed to stage %s: %w", up.Filename, err)
		}
		staged = append(staged, ref)
	}

	d, err := s.mutate(ctx, userID, draftID, func(d *models.Draft) error {
		if err := takesPictures(d); err != nil {
			return err
		}
		casestudy.AppendPicture(d, name, staged...)
		return nil
	})
	if err != nil {
		s.cleanup(staged...)
		return nil, err
	}
	return d, nil
}

// RemovePicture drops one image of a picture field by merged index.
func (s *WizardService) RemovePicture(ctx context.Context, userID string, draftID uuid.UUID, name string, index int) (*models.Draft, error) {
	var removed *models.FileRef
	d, err := s.mutate(ctx, userID, draftID, func(d *models.Draft) error {
		var err error
		removed, err = casestudy.RemovePicture(d, name, index)
		return err
	})
	if err != nil {
		return nil, err
	}
	if removed != nil {
		s.cleanup(*removed)
	}
	return d, nil
}

func (s *WizardService) SetCaption(ctx context.Context, userID string, draftID uuid.UUID, name, caption string) (*models.Draft, error) {
	return s.mutate(ctx, userID, draftID, func(d *models.Draft) error {
		sf, ok := casestudy.SelectedByName(d, name)
		if !ok || sf.FieldType != models.FieldTypePicture {
			return errorz.Invalid(name, "Field %s does not take pictures", name)
		}
		casestudy.SetCaption(d, name, caption)
		return nil
	})
}

func (s *WizardService) SetPrivate(ctx context.Context, userID string, draftID uuid.UUID, private bool) (*models.Draft, error) {
	return s.mutate(ctx, userID, draftID, func(d *models.Draft) error {
		casestudy.SetPrivate(d, private)
		return nil
	})
}

// Form renders the values step for a draft.
func (s *WizardService) Form(ctx context.Context, userID string, draftID uuid.UUID) (*models.FormResponse, error) {
	d, err := s.Get(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	return &models.FormResponse{
		DraftID:  d.ID.String(),
		Sections: casestudy.RenderForm(d),
	}, nil
}

// Submit validates, serializes and sends the draft. On success the draft and
// its staged files are gone; on failure nothing changes so the user can retry.
func (s *WizardService) Submit(ctx context.Context, userID, token string, draftID uuid.UUID) (*models.SubmitResponse, error) {
	d, err := s.Get(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	if d.Step != models.StepValues {
		return nil, errorz.Invalid("step", "Finish selecting fields before submitting")
	}

	var saved *models.CaseStudy
	err = casestudy.ValidateAndSubmit(d, func(casestudy.Completion) error {
		payload, err := casestudy.Serialize(ctx, d, s.files)
		if err != nil {
			return fmt.Errorf("failed to serialize case study: %w", err)
		}
		if d.Mode == models.DraftModeEdit {
			saved, err = s.backend.UpdateCaseStudy(ctx, token, d.CaseStudyID, payload)
		} else {
			saved, err = s.backend.CreateCaseStudy(ctx, token, payload)
		}
		return err
	})
	if err != nil {
		if !errors.Is(err, errorz.ErrValidation) {
			events.PublishUserEvent(ctx, s.publisher, userID, events.SubmitFailed, events.SubmitFailedPayload(d.ID, err.Error()))
		}
		return nil, err
	}

	resp := &models.SubmitResponse{
		CaseStudyID:     d.CaseStudyID,
		Message:         "Case study created successfully!",
		Redirect:        SubmitRedirect,
		RedirectAfterMs: SubmitRedirectAfterMs,
	}
	if d.Mode == models.DraftModeEdit {
		resp.Message = "Case study updated successfully!"
	}
	if saved != nil && saved.ID != "" {
		resp.CaseStudyID = saved.ID
	}

	s.discard(ctx, d)
	events.PublishUserEvent(ctx, s.publisher, userID, events.DraftSubmitted, events.DraftSubmittedPayload(d.ID, resp.CaseStudyID))
	return resp, nil
}

// Cancel throws a draft and its uploads away.
func (s *WizardService) Cancel(ctx context.Context, userID string, draftID uuid.UUID) error {
	d, err := s.Get(ctx, userID, draftID)
	if err != nil {
		return err
	}
	s.discard(ctx, d)
	events.PublishUserEvent(ctx, s.publisher, userID, events.DraftCancelled, events.DraftCancelledPayload(d.ID))
	return nil
}

func (s *WizardService) discard(ctx context.Context, d *models.Draft) {
	if err := s.drafts.Delete(ctx, d.ID); err != nil {
		log.Printf("Failed to delete draft %s: %v", d.ID, err)
	}
	if err := s.files.DeleteDraft(ctx, d.UserID, d.ID); err != nil {
		log.Printf("Failed to delete staged files of draft %s, retrying: %v", d.ID, err)
		go func() {
			if err := RetryWithBackoff(func() error {
				return s.files.DeleteDraft(context.Background(), d.UserID, d.ID)
			}, s.cleanupBackoffs); err != nil {
				log.Printf("Giving up on staged files of draft %s: %v", d.ID, err)
			}
		}()
	}
}

// PurgeExpired removes drafts past their expiry together with their staged
// files and reports how many drafts went.
func (s *WizardService) PurgeExpired(ctx context.Context) (int, error) {
	expired, err := s.drafts.PurgeExpired(ctx)
	for _, e := range expired {
		if e.UserID == "" {
			log.Printf("Expired draft %s has no owner, staged files left in place", e.ID)
			continue
		}
		if err := s.files.DeleteDraft(ctx, e.UserID, e.ID); err != nil {
			log.Printf("Failed to delete staged files of expired draft %s: %v", e.ID, err)
		}
	}
	return len(expired), err
}

// cleanup deletes staged files that no draft references any more. The first
// attempt is inline; retries run in the background.
func (s *WizardService) cleanup(refs ...models.FileRef) {
	if len(refs) == 0 {
		return
	}
	if err := s.files.Delete(context.Background(), refs...); err == nil {
		return
	}
	go func() {
		if err := RetryWithBackoff(func() error {
			return s.files.Delete(context.Background(), refs...)
		}, s.cleanupBackoffs); err != nil {
			log.Printf("Failed to delete %d staged files: %v", len(refs), err)
		}
	}()
}

// RetryWithBackoff runs fn until it succeeds, sleeping backoffs[i] after
// failure i. It gives up after len(backoffs)+1 attempts.
func RetryWithBackoff(fn func() error, backoffs []time.Duration) error {
	var lastErr error
	for i := 0; i <= len(backoffs); i++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		if i < len(backoffs) {
			time.Sleep(backoffs[i])
		}
	}

	return fmt.Errorf("failed after %d retries: %w", len(backoffs)+1, lastErr)
}
