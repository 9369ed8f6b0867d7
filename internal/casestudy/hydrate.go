package casestudy

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"designfoli-web/internal/models"
)

// Hydrate turns a persisted case study into an edit-mode draft owned by userID.
func Hydrate(userID string, cs *models.CaseStudy) (*models.Draft, error) {
	raw, err := cs.ParseFieldValues()
	if err != nil {
		return nil, fmt.Errorf("failed to parse fieldValues: %w", err)
	}

	d := models.NewDraft(userID, models.DraftModeEdit)
	d.CaseStudyID = cs.ID
	d.ProjectTitle = cs.ProjectTitle
	d.IsPrivate = cs.IsPrivate
	d.CoverImage = models.HostedImage(cs.CoverImage)
	d.ThumbnailImage = models.HostedImage(cs.ThumbnailImage)
	if cs.Tags != nil {
		d.Tags = append([]string{}, cs.Tags...)
	}
	if cs.SelectedFields != nil {
		d.SelectedFields = append([]models.SelectedField{}, cs.SelectedFields...)
	}
	d.FieldValues = DecodeFieldValues(d.SelectedFields, raw, cs.Extra)
	return d, nil
}

// DecodeFieldValues maps the backend's untyped field document onto typed
// values, using the selection to recognise picture fields and their captions.
// extra holds top-level keys of the persisted record; hosted picture URLs found
// there win over the copy inside the document.
func DecodeFieldValues(selected []models.SelectedField, raw map[string]any, extra map[string]json.RawMessage) map[string]models.FieldValue {
	pictures := map[string]bool{}
	for _, sf := range selected {
		if sf.FieldType == models.FieldTypePicture {
			pictures[sf.FieldName] = true
		}
	}

	out := map[string]models.FieldValue{}
	captions := map[string]string{}
	for key, value := range raw {
		if base, ok := strings.CutSuffix(key, captionSuffix); ok && pictures[base] {
			if s, ok := value.(string); ok {
				captions[base] = s
			}
			continue
		}
		if pictures[key] {
			out[key] = models.PictureOf(models.PictureValue{Existing: stringsOf(value)})
			continue
		}
		if v, ok := decodeScalar(value); ok {
			out[key] = v
		}
	}

	for name := range pictures {
		if urls := hostedURLs(extra[name]); len(urls) > 0 {
			p := out[name].PictureOrEmpty()
			p.Existing = urls
			out[name] = models.PictureOf(p)
		}
	}
	for name, caption := range captions {
		p := out[name].PictureOrEmpty()
		p.Caption = caption
		out[name] = models.PictureOf(p)
	}
	return out
}

func decodeScalar(value any) (models.FieldValue, bool) {
	switch v := value.(type) {
	case string:
		return models.TextValue(v), true
	case float64:
		return models.TextValue(strconv.FormatFloat(v, 'f', -1, 64)), true
	case bool:
		return models.TextValue(strconv.FormatBool(v)), true
	case []any:
		texts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				texts = append(texts, s)
			}
		}
		return models.TextArrayValue(texts), true
	}
	return models.FieldValue{}, false
}

// stringsOf keeps the string elements of a JSON array; upload placeholders
// and other shapes are dropped.
func stringsOf(value any) []string {
	switch v := value.(type) {
	case string:
		if v == "" {
			return []string{}
		}
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{}
}

func hostedURLs(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return stringsOf(items)
}
