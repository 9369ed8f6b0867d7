package casestudy_test

import (
	"encoding/json"
	"testing"

	"designfoli-web/internal/casestudy"
	"designfoli-web/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const persistedCaseStudy = `{
	"_id": "cs-42",
	"projectTitle": "Banking app",
	"tags": ["Mobile"],
	"isPrivate": true,
	"coverImage": "https://cdn/cover.png",
	"thumbnailImage": "",
	"selectedFields": [
		{"fieldId": "f-summary", "fieldName": "summary", "fieldLabel": "Summary", "fieldType": "text",
		 "sectionId": "sec-overview", "sectionName": "Overview", "required": true, "order": 1, "selected": true},
		{"fieldId": "f-photos", "fieldName": "photos", "fieldLabel": "Photos", "fieldType": "picture",
		 "sectionId": "sec-gallery", "sectionName": "Gallery", "required": false, "order": 1, "selected": true}
	],
	"fieldValues": "{\"summary\":\"Faster onboarding\",\"photos\":[{},{}],\"photos_addition\":\"Sketches\"}",
	"photos": ["https://cdn/p1.png", "https://cdn/p2.png"]
}`

func TestHydrate_EditScenario(t *testing.T) {
	var cs models.CaseStudy
	require.NoError(t, json.Unmarshal([]byte(persistedCaseStudy), &cs))

	d, err := casestudy.Hydrate("user-1", &cs)
	require.NoError(t, err)

	assert.Equal(t, models.DraftModeEdit, d.Mode)
	assert.Equal(t, "cs-42", d.CaseStudyID)
	assert.Equal(t, models.StepSelection, d.Step)
	assert.Len(t, d.SelectedFields, 2)
	assert.Equal(t, "Faster onboarding", d.FieldValues["summary"].Text)
	assert.Equal(t, "https://cdn/cover.png", d.CoverImage.URL)
	assert.Nil(t, d.ThumbnailImage)
	assert.True(t, d.IsPrivate)

	p := d.FieldValues["photos"].PictureOrEmpty()
	assert.Equal(t, []string{"https://cdn/p1.png", "https://cdn/p2.png"}, p.Existing)
	assert.Equal(t, "Sketches", p.Caption)
	_, hasCaptionKey := d.FieldValues["photos_addition"]
	assert.False(t, hasCaptionKey)

	for _, sf := range d.SelectedFields {
		_, ok := d.FieldValues[sf.FieldName]
		assert.True(t, ok, sf.FieldName)
	}
}

func TestHydrate_FieldValuesAsObject(t *testing.T) {
	cs := &models.CaseStudy{
		ID:          "cs-1",
		FieldValues: json.RawMessage(`{"count": 3, "flag": true, "list": ["a", {}, "b"]}`),
	}

	d, err := casestudy.Hydrate("user-1", cs)
	require.NoError(t, err)

	assert.Equal(t, "3", d.FieldValues["count"].Text)
	assert.Equal(t, "true", d.FieldValues["flag"].Text)
	assert.Equal(t, []string{"a", "b"}, d.FieldValues["list"].Texts)
}

func TestHydrate_EmptyAndInvalidFieldValues(t *testing.T) {
	for _, raw := range []string{``, `null`, `""`} {
		d, err := casestudy.Hydrate("u", &models.CaseStudy{FieldValues: json.RawMessage(raw)})
		require.NoError(t, err, raw)
		assert.Empty(t, d.FieldValues)
	}

	_, err := casestudy.Hydrate("u", &models.CaseStudy{FieldValues: json.RawMessage(`"{not json"`)})
	assert.Error(t, err)
}

func TestCaseStudy_UnmarshalKeepsExtras(t *testing.T) {
	var cs models.CaseStudy
	require.NoError(t, json.Unmarshal([]byte(persistedCaseStudy), &cs))

	assert.Equal(t, "Banking app", cs.ProjectTitle)
	assert.Contains(t, cs.Extra, "photos")
	assert.NotContains(t, cs.Extra, "projectTitle")
}
