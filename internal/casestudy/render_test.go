package casestudy_test

import (
	"testing"

	"designfoli-web/internal/casestudy"
	"designfoli-web/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderField_ByType(t *testing.T) {
	base := models.SelectedField{FieldName: "summary", FieldLabel: "Project Summary", SectionName: "Overview", Required: true}

	text := base
	text.FieldType = models.FieldTypeText
	c := casestudy.RenderField(text, models.TextValue("hello"), nil)
	assert.Equal(t, models.ControlInput, c.Kind)
	assert.Equal(t, "Enter project summary", c.Placeholder)
	assert.Equal(t, "Project Summary for Overview", c.Hint)
	assert.Equal(t, "hello", c.Value)
	assert.True(t, c.Required)

	area := base
	area.FieldType = models.FieldTypeTextarea
	c = casestudy.RenderField(area, models.FieldValue{}, nil)
	assert.Equal(t, models.ControlTextarea, c.Kind)
	assert.Equal(t, 4, c.Rows)

	pic := base
	pic.FieldName = "photos"
	pic.FieldType = models.FieldTypePicture
	c = casestudy.RenderField(pic, models.PictureOf(models.PictureValue{
		Existing: []string{"https://cdn/1.png"},
		Uploads:  []models.FileRef{{Filename: "new.png"}},
		Caption:  "note",
	}), nil)
	assert.Equal(t, models.ControlPictures, c.Kind)
	assert.Equal(t, "photos_addition", c.CaptionName)
	assert.Equal(t, "note", c.Caption)
	require.Len(t, c.Images, 2)
	assert.Equal(t, "Existing image 1", c.Images[0].Name)
	assert.Equal(t, 1, c.Images[1].Index)
	assert.True(t, c.Images[1].Uploaded)

	box := base
	box.FieldType = models.FieldTypeCheckbox
	c = casestudy.RenderField(box, models.TextArrayValue([]string{"iOS"}), []string{"iOS", "Android"})
	assert.Equal(t, models.ControlCheckbox, c.Kind)
	assert.Equal(t, []string{"iOS", "Android"}, c.Options)
	assert.Equal(t, []string{"iOS"}, c.Values)

	unknown := base
	unknown.FieldType = "video"
	assert.Equal(t, models.ControlNone, casestudy.RenderField(unknown, models.FieldValue{}, nil).Kind)
}

func TestRenderForm_GroupsBySection(t *testing.T) {
	d := newDraft()
	s := testSections()
	casestudy.ToggleField(d, s[1], s[1].Fields[0])
	casestudy.ToggleField(d, s[0], s[0].Fields[0])

	groups := casestudy.RenderForm(d)

	require.Len(t, groups, 2)
	assert.Equal(t, "Gallery", groups[0].SectionName)
	assert.Equal(t, "Overview", groups[1].SectionName)
	assert.Equal(t, "summary", groups[1].Controls[0].Name)
}
