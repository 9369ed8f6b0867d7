package casestudy_test

import (
	"errors"
	"testing"

	"designfoli-web/internal/casestudy"
	"designfoli-web/internal/errorz"
	"designfoli-web/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ref(name string) models.FileRef {
	return models.FileRef{Path: "staged/" + name, Filename: name, ContentType: "image/png"}
}

func TestRemovePicture_PreservesOrder(t *testing.T) {
	d := newDraft()
	casestudy.AppendPicture(d, "photos", ref("a.png"))
	casestudy.AppendPicture(d, "photos", ref("b.png"))
	casestudy.AppendPicture(d, "photos", ref("c.png"))

	removed, err := casestudy.RemovePicture(d, "photos", 1)

	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, "b.png", removed.Filename)
	p := d.FieldValues["photos"].PictureOrEmpty()
	require.Equal(t, 2, p.Len())
	assert.Equal(t, "a.png", p.Uploads[0].Filename)
	assert.Equal(t, "c.png", p.Uploads[1].Filename)
}

func TestRemovePicture_MixedHostedAndUploads(t *testing.T) {
	d := newDraft()
	casestudy.SetFieldValue(d, "photos", models.PictureOf(models.PictureValue{
		Existing: []string{"https://cdn/1.png", "https://cdn/2.png"},
		Caption:  "kept",
	}))
	casestudy.AppendPicture(d, "photos", ref("new.png"))

	removed, err := casestudy.RemovePicture(d, "photos", 0)
	require.NoError(t, err)
	assert.Nil(t, removed)

	p := d.FieldValues["photos"].PictureOrEmpty()
	assert.Equal(t, []string{"https://cdn/2.png"}, p.Existing)
	assert.Len(t, p.Uploads, 1)
	assert.Equal(t, "kept", p.Caption)

	removed, err = casestudy.RemovePicture(d, "photos", 1)
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, "new.png", removed.Filename)

	_, err = casestudy.RemovePicture(d, "photos", 5)
	assert.True(t, errors.Is(err, errorz.ErrValidation))
}

func TestSetCaption(t *testing.T) {
	d := newDraft()
	casestudy.AppendPicture(d, "photos", ref("a.png"))
	casestudy.SetCaption(d, "photos", "Early sketches")

	p := d.FieldValues["photos"].PictureOrEmpty()
	assert.Equal(t, "Early sketches", p.Caption)
	assert.Len(t, p.Uploads, 1)
}

func TestValidate_Order(t *testing.T) {
	d := newDraft()
	err := casestudy.Validate(d)
	var verr *errorz.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "selectedFields", verr.Field)

	s := testSections()[0]
	casestudy.ToggleField(d, s, s.Fields[0])
	err = casestudy.Validate(d)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "coverImage", verr.Field)

	casestudy.SetCoverImage(d, models.UploadedImage(ref("cover.png")))
	err = casestudy.Validate(d)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "summary", verr.Field)
	assert.Contains(t, verr.Message, "Summary")

	casestudy.SetFieldValue(d, "summary", models.TextValue("A faster checkout"))
	assert.NoError(t, casestudy.Validate(d))
}

func TestValidate_BlankAndEmptyValues(t *testing.T) {
	d := newDraft()
	sections := testSections()
	casestudy.ToggleField(d, sections[0], sections[0].Fields[0])
	gallery := sections[1]
	gallery.Fields[0].Required = true
	casestudy.ToggleField(d, gallery, gallery.Fields[0])
	casestudy.SetCoverImage(d, models.HostedImage("https://cdn/cover.png"))

	casestudy.SetFieldValue(d, "summary", models.TextValue("  \n"))
	assert.Error(t, casestudy.Validate(d))

	casestudy.SetFieldValue(d, "summary", models.TextValue("ok"))
	casestudy.SetFieldValue(d, "photos", models.PictureOf(models.PictureValue{Caption: "only a caption"}))
	err := casestudy.Validate(d)
	var verr *errorz.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "photos", verr.Field)

	casestudy.AppendPicture(d, "photos", ref("a.png"))
	assert.NoError(t, casestudy.Validate(d))
}

func TestValidateAndSubmit_BlocksBeforeCompletion(t *testing.T) {
	d := newDraft()
	s := testSections()[0]
	casestudy.ToggleField(d, s, s.Fields[0])
	casestudy.SetCoverImage(d, models.UploadedImage(ref("cover.png")))

	called := false
	err := casestudy.ValidateAndSubmit(d, func(casestudy.Completion) error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
}

func TestValidateAndSubmit_PackagesCompletion(t *testing.T) {
	d := newDraft()
	s := testSections()[0]
	casestudy.ToggleField(d, s, s.Fields[0])
	cover := models.UploadedImage(ref("cover.png"))
	casestudy.SetCoverImage(d, cover)
	casestudy.SetFieldValue(d, "summary", models.TextValue("done"))
	casestudy.SetPrivate(d, true)

	var got casestudy.Completion
	err := casestudy.ValidateAndSubmit(d, func(c casestudy.Completion) error {
		got = c
		return nil
	})

	require.NoError(t, err)
	assert.True(t, got.IsPrivate)
	assert.Equal(t, cover, got.CoverImage)
	assert.Equal(t, "done", got.FieldValues["summary"].Text)
}
