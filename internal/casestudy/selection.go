// Package casestudy implements the two-step case-study wizard: field
// selection, value entry, validation and the multipart submission format the
// DesignFoli backend expects.
package casestudy

import (
	"slices"
	"sort"
	"strings"
	"time"

	"designfoli-web/internal/errorz"
	"designfoli-web/internal/models"
)

// Metadata is a partial update of the step-1 header. Nil members are left as is.
type Metadata struct {
	ProjectTitle   *string
	ThumbnailImage *models.ImageRef
	Tags           *[]string
}

// ToggleField adds field to the selection, or removes it when it is already
// selected. It reports whether the field is selected afterwards.
func ToggleField(d *models.Draft, section models.Section, field models.Field) bool {
	for i, sf := range d.SelectedFields {
		if sf.FieldID == field.ID {
			d.SelectedFields = slices.Delete(slices.Clone(d.SelectedFields), i, i+1)
			touch(d)
			return false
		}
	}
	d.SelectedFields = append(d.SelectedFields, models.SelectedField{
		FieldID:     field.ID,
		FieldName:   field.Name,
		FieldLabel:  field.Label,
		FieldType:   field.Type,
		SectionID:   section.ID,
		SectionName: section.Name,
		Required:    field.Required,
		Order:       field.Order,
		Selected:    true,
	})
	touch(d)
	return true
}

func IsSelected(d *models.Draft, fieldID string) bool {
	for _, sf := range d.SelectedFields {
		if sf.FieldID == fieldID {
			return true
		}
	}
	return false
}

func SetMetadata(d *models.Draft, m Metadata) {
	if m.ProjectTitle != nil {
		d.ProjectTitle = *m.ProjectTitle
	}
	if m.ThumbnailImage != nil {
		d.ThumbnailImage = m.ThumbnailImage
	}
	if m.Tags != nil {
		d.Tags = append([]string{}, (*m.Tags)...)
	}
	touch(d)
}

// Advance moves a draft from field selection to value entry. Only the
// project title is checked here; field values are validated on submit.
func Advance(d *models.Draft) error {
	if strings.TrimSpace(d.ProjectTitle) == "" {
		return errorz.Invalid("projectTitle", "Please enter a project title")
	}
	d.Step = models.StepValues
	touch(d)
	return nil
}

// Back returns to field selection. Entered values are kept.
func Back(d *models.Draft) {
	d.Step = models.StepSelection
	touch(d)
}

// AddTag selects a tag from the server vocabulary. Adding a tag twice is a no-op.
func AddTag(d *models.Draft, tag string) error {
	if !slices.Contains(d.AvailableTags, tag) {
		return errorz.Invalid("tags", "unknown tag %q", tag)
	}
	if slices.Contains(d.Tags, tag) {
		return nil
	}
	d.Tags = append(d.Tags, tag)
	touch(d)
	return nil
}

func RemoveTag(d *models.Draft, tag string) {
	d.Tags = slices.DeleteFunc(slices.Clone(d.Tags), func(t string) bool { return t == tag })
	touch(d)
}

// FilterTags is the tag picker search: a case-insensitive substring match
// that keeps vocabulary order.
func FilterTags(available []string, query string) []string {
	q := strings.ToLower(query)
	out := make([]string, 0, len(available))
	for _, tag := range available {
		if strings.Contains(strings.ToLower(tag), q) {
			out = append(out, tag)
		}
	}
	return out
}

// SortedFields returns the section's fields by ascending order without
// mutating the configuration.
func SortedFields(section models.Section) []models.Field {
	fields := slices.Clone(section.Fields)
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].Order < fields[j].Order })
	return fields
}

// FindField locates a field of the cached configuration.
func FindField(sections []models.Section, sectionID, fieldID string) (models.Section, models.Field, error) {
	for _, s := range sections {
		if s.ID != sectionID {
			continue
		}
		if f, ok := s.FindField(fieldID); ok {
			return s, f, nil
		}
		return models.Section{}, models.Field{}, errorz.Invalid("fieldId", "field %s not found in section %s", fieldID, sectionID)
	}
	return models.Section{}, models.Field{}, errorz.Invalid("sectionId", "section %s not found", sectionID)
}

func touch(d *models.Draft) {
	d.UpdatedAt = time.Now().UTC()
}
