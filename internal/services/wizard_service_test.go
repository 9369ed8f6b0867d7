package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"designfoli-web/internal/casestudy"
	"designfoli-web/internal/designfoli"
	"designfoli-web/internal/drafts"
	"designfoli-web/internal/errorz"
	"designfoli-web/internal/events"
	"designfoli-web/internal/models"
	"designfoli-web/internal/services"
	"designfoli-web/internal/staging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	mu        sync.Mutex
	configErr error
	submitErr error
	stored    *models.CaseStudy
	created   []*casestudy.Payload
	updated   map[string]*casestudy.Payload
}

func (f *fakeBackend) GetConfiguration(_ context.Context, token string) (*models.Configuration, error) {
	if f.configErr != nil {
		return nil, f.configErr
	}
	return &models.Configuration{
		Sections: []models.Section{
			{ID: "sec-overview", Name: "Overview", Order: 1, Fields: []models.Field{
				{ID: "f-summary", Name: "summary", Label: "Summary", Type: models.FieldTypeText, Required: true, Order: 1},
				{ID: "f-platforms", Name: "platforms", Label: "Platforms", Type: models.FieldTypeCheckbox, Order: 2, Options: []string{"iOS", "Web"}},
			}},
			{ID: "sec-gallery", Name: "Gallery", Order: 2, Fields: []models.Field{
				{ID: "f-photos", Name: "photos", Label: "Photos", Type: models.FieldTypePicture, Order: 1},
			}},
		},
		Tags: []string{"UX", "Mobile"},
	}, nil
}

func (f *fakeBackend) GetCaseStudy(_ context.Context, token, id string) (*models.CaseStudy, error) {
	if f.stored == nil || f.stored.ID != id {
		return nil, &designfoli.APIError{Status: 404, Message: "Case study not found"}
	}
	return f.stored, nil
}

func (f *fakeBackend) CreateCaseStudy(_ context.Context, token string, p *casestudy.Payload) (*models.CaseStudy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.created = append(f.created, p)
	return &models.CaseStudy{ID: "cs-new"}, nil
}

func (f *fakeBackend) UpdateCaseStudy(_ context.Context, token, id string, p *casestudy.Payload) (*models.CaseStudy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	if f.updated == nil {
		f.updated = map[string]*casestudy.Payload{}
	}
	f.updated[id] = p
	return nil, nil
}

type harness struct {
	svc     *services.WizardService
	backend *fakeBackend
	drafts  *drafts.Memory
	files   *staging.Memory
	events  *events.Recorder
}

func newHarness() *harness {
	h := &harness{
		backend: &fakeBackend{},
		drafts:  drafts.NewMemory(time.Hour),
		files:   staging.NewMemory(),
		events:  &events.Recorder{},
	}
	h.svc = services.NewWizardService(h.backend, h.drafts, h.files, h.events)
	return h
}

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func png(name string) services.Upload {
	data := append(append([]byte{}, pngHeader...), name...)
	return services.Upload{Filename: name, ContentType: "image/png", Data: data}
}

// slowFiles makes every Put take as long as a storage round trip.
type slowFiles struct {
	*staging.Memory
	delay time.Duration
}

func (s slowFiles) Put(ctx context.Context, userID string, draftID uuid.UUID, filename, contentType string, data []byte) (models.FileRef, error) {
	time.Sleep(s.delay)
	return s.Memory.Put(ctx, userID, draftID, filename, contentType, data)
}

// brokenUpdates loses its connection whenever a draft is changed.
type brokenUpdates struct {
	*drafts.Memory
}

func (brokenUpdates) Update(context.Context, uuid.UUID, func(*models.Draft) error) (*models.Draft, error) {
	return nil, errors.New("connection reset by peer")
}

const maxBytes = 5 << 20

// readyDraft walks a create-mode draft to the values step with a summary and cover.
func readyDraft(t *testing.T, h *harness) *models.Draft {
	t.Helper()
	ctx := context.Background()
	d, warning, err := h.svc.Start(ctx, "user-1", "tok")
	require.NoError(t, err)
	require.Empty(t, warning)

	_, selected, err := h.svc.ToggleField(ctx, "user-1", d.ID, "sec-overview", "f-summary")
	require.NoError(t, err)
	require.True(t, selected)
	title := "Checkout redesign"
	_, err = h.svc.SetMetadata(ctx, "user-1", d.ID, models.MetadataRequest{ProjectTitle: &title})
	require.NoError(t, err)
	_, err = h.svc.Advance(ctx, "user-1", d.ID)
	require.NoError(t, err)
	summary := "Shorter flow"
	_, err = h.svc.SetFieldValue(ctx, "user-1", d.ID, "summary", models.FieldValueRequest{Text: &summary})
	require.NoError(t, err)
	d, err = h.svc.SetCoverImage(ctx, "user-1", d.ID, png("cover.png"), maxBytes)
	require.NoError(t, err)
	return d
}

func TestStart_DegradesWhenConfigurationFails(t *testing.T) {
	h := newHarness()
	h.backend.configErr = errors.New("HTTP error! status: 500")

	d, warning, err := h.svc.Start(context.Background(), "user-1", "tok")

	require.NoError(t, err)
	assert.Empty(t, d.Sections)
	assert.Contains(t, warning, "HTTP error! status: 500")
	_, err = h.drafts.Get(context.Background(), d.ID)
	assert.NoError(t, err)
}

func TestGet_ChecksOwnership(t *testing.T) {
	h := newHarness()
	d, _, err := h.svc.Start(context.Background(), "user-1", "tok")
	require.NoError(t, err)

	_, err = h.svc.Get(context.Background(), "user-2", d.ID)
	assert.True(t, errors.Is(err, errorz.ErrForbidden))

	_, err = h.svc.Get(context.Background(), "user-1", uuid.New())
	assert.True(t, errors.Is(err, errorz.ErrNotFound))
}

func TestAdvance_RejectsBlankTitle(t *testing.T) {
	h := newHarness()
	d, _, _ := h.svc.Start(context.Background(), "user-1", "tok")

	_, err := h.svc.Advance(context.Background(), "user-1", d.ID)

	assert.True(t, errors.Is(err, errorz.ErrValidation))
	stored, _ := h.svc.Get(context.Background(), "user-1", d.ID)
	assert.Equal(t, models.StepSelection, stored.Step)
}

func TestSetMetadata_RejectsUnknownTags(t *testing.T) {
	h := newHarness()
	d, _, _ := h.svc.Start(context.Background(), "user-1", "tok")
	tags := []string{"UX", "Blockchain"}

	_, err := h.svc.SetMetadata(context.Background(), "user-1", d.ID, models.MetadataRequest{Tags: &tags})

	assert.True(t, errors.Is(err, errorz.ErrValidation))
}

func TestSetFieldValue_Checkbox(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	d, _, _ := h.svc.Start(ctx, "user-1", "tok")
	_, _, err := h.svc.ToggleField(ctx, "user-1", d.ID, "sec-overview", "f-platforms")
	require.NoError(t, err)

	d, err = h.svc.SetFieldValue(ctx, "user-1", d.ID, "platforms", models.FieldValueRequest{Values: []string{"iOS"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"iOS"}, d.FieldValues["platforms"].Texts)

	_, err = h.svc.SetFieldValue(ctx, "user-1", d.ID, "unselected", models.FieldValueRequest{Values: []string{"x"}})
	assert.True(t, errors.Is(err, errorz.ErrValidation))
}

func TestUploadAndRemovePictures(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	d, _, _ := h.svc.Start(ctx, "user-1", "tok")
	_, _, err := h.svc.ToggleField(ctx, "user-1", d.ID, "sec-gallery", "f-photos")
	require.NoError(t, err)

	d, err = h.svc.UploadPictures(ctx, "user-1", d.ID, "photos", []services.Upload{png("a.png"), png("b.png"), png("c.png")}, maxBytes)
	require.NoError(t, err)
	require.Equal(t, 3, h.files.Len())

	d, err = h.svc.RemovePicture(ctx, "user-1", d.ID, "photos", 1)
	require.NoError(t, err)

	p := d.FieldValues["photos"].PictureOrEmpty()
	require.Len(t, p.Uploads, 2)
	assert.Equal(t, "a.png", p.Uploads[0].Filename)
	assert.Equal(t, "c.png", p.Uploads[1].Filename)
	assert.Equal(t, 2, h.files.Len())
}

func TestUploadPictures_Limits(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	d, _, _ := h.svc.Start(ctx, "user-1", "tok")
	_, _, _ = h.svc.ToggleField(ctx, "user-1", d.ID, "sec-gallery", "f-photos")

	big := services.Upload{Filename: "big.png", ContentType: "image/png", Data: make([]byte, 11)}
	_, err := h.svc.UploadPictures(ctx, "user-1", d.ID, "photos", []services.Upload{big}, 10)
	assert.True(t, errors.Is(err, errorz.ErrValidation))

	pdf := services.Upload{Filename: "cv.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}
	_, err = h.svc.UploadPictures(ctx, "user-1", d.ID, "photos", []services.Upload{pdf}, maxBytes)
	assert.True(t, errors.Is(err, errorz.ErrValidation))

	_, err = h.svc.UploadPictures(ctx, "user-1", d.ID, "summary", []services.Upload{png("a.png")}, maxBytes)
	assert.True(t, errors.Is(err, errorz.ErrValidation))
	assert.Equal(t, 0, h.files.Len())
}

func TestUploadPictures_ConcurrentUploadsAllLand(t *testing.T) {
	h := newHarness()
	svc := services.NewWizardService(h.backend, h.drafts, slowFiles{Memory: h.files, delay: 20 * time.Millisecond}, h.events)
	ctx := context.Background()
	d, _, err := svc.Start(ctx, "user-1", "tok")
	require.NoError(t, err)
	_, _, err = svc.ToggleField(ctx, "user-1", d.ID, "sec-gallery", "f-photos")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 5)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.UploadPictures(ctx, "user-1", d.ID, "photos", []services.Upload{png(fmt.Sprintf("p%d.png", i))}, maxBytes)
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	stored, err := svc.Get(ctx, "user-1", d.ID)
	require.NoError(t, err)
	assert.Len(t, stored.FieldValues["photos"].PictureOrEmpty().Uploads, 5)
	assert.Equal(t, 5, h.files.Len())
}

func TestUploads_SniffContent(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	d, _, _ := h.svc.Start(ctx, "user-1", "tok")
	_, _, _ = h.svc.ToggleField(ctx, "user-1", d.ID, "sec-gallery", "f-photos")

	spoofed := services.Upload{Filename: "notes.png", ContentType: "image/png", Data: []byte("just some text")}
	_, err := h.svc.UploadPictures(ctx, "user-1", d.ID, "photos", []services.Upload{spoofed}, maxBytes)
	assert.True(t, errors.Is(err, errorz.ErrValidation))
	_, err = h.svc.SetCoverImage(ctx, "user-1", d.ID, spoofed, maxBytes)
	assert.True(t, errors.Is(err, errorz.ErrValidation))
	assert.Equal(t, 0, h.files.Len())

	unlabelled := png("a.png")
	unlabelled.ContentType = ""
	d, err = h.svc.UploadPictures(ctx, "user-1", d.ID, "photos", []services.Upload{unlabelled}, maxBytes)
	require.NoError(t, err)
	uploads := d.FieldValues["photos"].PictureOrEmpty().Uploads
	require.Len(t, uploads, 1)
	assert.Equal(t, "image/png", uploads[0].ContentType)
}

func TestImageUploads_ReleaseFilesWhenDraftUpdateFails(t *testing.T) {
	h := newHarness()
	svc := services.NewWizardService(h.backend, brokenUpdates{Memory: h.drafts}, h.files, h.events)
	ctx := context.Background()
	d := models.NewDraft("user-1", models.DraftModeCreate)
	d.SelectedFields = []models.SelectedField{{FieldID: "f-photos", FieldName: "photos", FieldType: models.FieldTypePicture, SectionID: "sec-gallery", Selected: true}}
	require.NoError(t, h.drafts.Save(ctx, d))

	_, err := svc.SetCoverImage(ctx, "user-1", d.ID, png("cover.png"), maxBytes)
	require.Error(t, err)
	_, err = svc.SetThumbnail(ctx, "user-1", d.ID, png("thumb.png"), maxBytes)
	require.Error(t, err)
	_, err = svc.UploadPictures(ctx, "user-1", d.ID, "photos", []services.Upload{png("a.png")}, maxBytes)
	require.Error(t, err)

	assert.Equal(t, 0, h.files.Len())
}

func TestPurgeExpired_DeletesStagedFiles(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	h := newHarness()
	h.drafts = drafts.NewMemory(time.Hour).WithClock(func() time.Time { return now })
	h.svc = services.NewWizardService(h.backend, h.drafts, h.files, h.events)
	ctx := context.Background()

	stale, _, err := h.svc.Start(ctx, "user-1", "tok")
	require.NoError(t, err)
	_, err = h.svc.SetCoverImage(ctx, "user-1", stale.ID, png("old.png"), maxBytes)
	require.NoError(t, err)

	now = now.Add(50 * time.Minute)
	fresh, _, err := h.svc.Start(ctx, "user-2", "tok")
	require.NoError(t, err)
	_, err = h.svc.SetCoverImage(ctx, "user-2", fresh.ID, png("new.png"), maxBytes)
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	n, err := h.svc.PurgeExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, h.files.Len())
	_, err = h.svc.Get(ctx, "user-2", fresh.ID)
	assert.NoError(t, err)
	_, err = h.svc.Get(ctx, "user-1", stale.ID)
	assert.True(t, errors.Is(err, errorz.ErrNotFound))
}

func TestSetCoverImage_ReplacesStagedFile(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	d, _, _ := h.svc.Start(ctx, "user-1", "tok")

	_, err := h.svc.SetCoverImage(ctx, "user-1", d.ID, png("one.png"), maxBytes)
	require.NoError(t, err)
	d, err = h.svc.SetCoverImage(ctx, "user-1", d.ID, png("two.png"), maxBytes)
	require.NoError(t, err)

	assert.Equal(t, "two.png", d.CoverImage.File.Filename)
	assert.Equal(t, 1, h.files.Len())
}

func TestSubmit_CreateDeletesDraftAndFiles(t *testing.T) {
	h := newHarness()
	d := readyDraft(t, h)

	resp, err := h.svc.Submit(context.Background(), "user-1", "tok", d.ID)

	require.NoError(t, err)
	assert.Equal(t, "cs-new", resp.CaseStudyID)
	assert.Equal(t, "/", resp.Redirect)
	assert.Equal(t, 1500, resp.RedirectAfterMs)
	assert.Equal(t, "Case study created successfully!", resp.Message)
	require.Len(t, h.backend.created, 1)
	assert.Contains(t, h.backend.created[0].Parts, "coverImage")

	_, err = h.drafts.Get(context.Background(), d.ID)
	assert.True(t, errors.Is(err, errorz.ErrNotFound))
	assert.Equal(t, 0, h.files.Len())
	require.NotEmpty(t, h.events.Messages)
	assert.Equal(t, events.DraftSubmitted, h.events.Messages[len(h.events.Messages)-1].Event)
}

func TestSubmit_FailureKeepsDraft(t *testing.T) {
	h := newHarness()
	d := readyDraft(t, h)
	h.backend.submitErr = &designfoli.APIError{Status: 500, Message: "HTTP error! status: 500"}

	_, err := h.svc.Submit(context.Background(), "user-1", "tok", d.ID)

	require.Error(t, err)
	stored, getErr := h.drafts.Get(context.Background(), d.ID)
	require.NoError(t, getErr)
	assert.Equal(t, "Shorter flow", stored.FieldValues["summary"].Text)
	assert.Equal(t, 1, h.files.Len())
	assert.Equal(t, events.SubmitFailed, h.events.Messages[len(h.events.Messages)-1].Event)

	h.backend.submitErr = nil
	_, err = h.svc.Submit(context.Background(), "user-1", "tok", d.ID)
	assert.NoError(t, err)
}

func TestSubmit_ValidationBlocksBeforeNetwork(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	d, _, _ := h.svc.Start(ctx, "user-1", "tok")
	_, _, _ = h.svc.ToggleField(ctx, "user-1", d.ID, "sec-overview", "f-summary")
	title := "No cover"
	_, _ = h.svc.SetMetadata(ctx, "user-1", d.ID, models.MetadataRequest{ProjectTitle: &title})

	_, err := h.svc.Submit(ctx, "user-1", "tok", d.ID)
	assert.True(t, errors.Is(err, errorz.ErrValidation))

	_, err = h.svc.Advance(ctx, "user-1", d.ID)
	require.NoError(t, err)
	_, err = h.svc.Submit(ctx, "user-1", "tok", d.ID)

	var verr *errorz.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "coverImage", verr.Field)
	assert.Empty(t, h.backend.created)
}

func TestStartEdit_HydratesAndUpdates(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	h.backend.stored = &models.CaseStudy{
		ID:           "cs-7",
		ProjectTitle: "Existing",
		CoverImage:   "https://cdn/cover.png",
		SelectedFields: []models.SelectedField{
			{FieldID: "f-summary", FieldName: "summary", FieldLabel: "Summary", FieldType: models.FieldTypeText, SectionID: "sec-overview", SectionName: "Overview", Required: true, Selected: true},
		},
		FieldValues: []byte(`"{\"summary\":\"Persisted\"}"`),
	}

	d, _, err := h.svc.StartEdit(ctx, "user-1", "tok", "cs-7")
	require.NoError(t, err)
	assert.Equal(t, models.DraftModeEdit, d.Mode)
	assert.Equal(t, "Persisted", d.FieldValues["summary"].Text)
	assert.NotEmpty(t, d.Sections)

	_, err = h.svc.Advance(ctx, "user-1", d.ID)
	require.NoError(t, err)
	resp, err := h.svc.Submit(ctx, "user-1", "tok", d.ID)
	require.NoError(t, err)

	assert.Equal(t, "cs-7", resp.CaseStudyID)
	assert.Equal(t, "Case study updated successfully!", resp.Message)
	require.Contains(t, h.backend.updated, "cs-7")
	assert.NotContains(t, h.backend.updated["cs-7"].Parts, "coverImage")

	_, _, err = h.svc.StartEdit(ctx, "user-1", "tok", "missing")
	assert.True(t, errors.Is(err, errorz.ErrNotFound))
}

func TestForm(t *testing.T) {
	h := newHarness()
	d := readyDraft(t, h)

	form, err := h.svc.Form(context.Background(), "user-1", d.ID)

	require.NoError(t, err)
	assert.Equal(t, d.ID.String(), form.DraftID)
	require.Len(t, form.Sections, 1)
	assert.Equal(t, "Shorter flow", form.Sections[0].Controls[0].Value)
}

func TestCancel(t *testing.T) {
	h := newHarness()
	d := readyDraft(t, h)

	require.Error(t, h.svc.Cancel(context.Background(), "user-2", d.ID))
	require.NoError(t, h.svc.Cancel(context.Background(), "user-1", d.ID))

	_, err := h.drafts.Get(context.Background(), d.ID)
	assert.Error(t, err)
	assert.Equal(t, 0, h.files.Len())
}

func TestRetryWithBackoff(t *testing.T) {
	callCount := 0
	err := services.RetryWithBackoff(func() error {
		callCount++
		if callCount < 3 {
			return assert.AnError
		}
		return nil
	}, []time.Duration{time.Millisecond, time.Millisecond})

	assert.NoError(t, err)
	assert.Equal(t, 3, callCount)
}

func TestRetryWithBackoff_Exhausted(t *testing.T) {
	err := services.RetryWithBackoff(func() error {
		return assert.AnError
	}, []time.Duration{time.Millisecond, time.Millisecond})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 3 retries")
}
