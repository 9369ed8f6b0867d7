package casestudy

import (
	"fmt"
	"strings"

	"designfoli-web/internal/models"
)

// Upload limits shown to the user and enforced on intake.
const (
	PictureMaxMB   = 5
	ThumbnailMaxMB = 2
	CoverMaxMB     = 5
)

const (
	textareaRows    = 4
	captionRows     = 2
	captionSuffix   = "_addition"
	existingImgName = "Existing image %d"
)

// CaptionKey is the wire key carrying a picture field's caption.
func CaptionKey(fieldName string) string {
	return fieldName + captionSuffix
}

// RenderField maps a selected field to the control that edits it. It is pure:
// the same field and value always give the same control.
func RenderField(sf models.SelectedField, v models.FieldValue, options []string) models.Control {
	c := models.Control{
		Name:     sf.FieldName,
		Label:    sf.FieldLabel,
		Required: sf.Required,
	}
	switch sf.FieldType {
	case models.FieldTypeText, models.FieldTypeTextarea:
		c.Kind = models.ControlInput
		if sf.FieldType == models.FieldTypeTextarea {
			c.Kind = models.ControlTextarea
			c.Rows = textareaRows
		}
		c.Placeholder = fmt.Sprintf("Enter %s", strings.ToLower(sf.FieldLabel))
		c.Hint = fmt.Sprintf("%s for %s", sf.FieldLabel, sf.SectionName)
		if v.Kind == models.ValueText {
			c.Value = v.Text
		}
	case models.FieldTypeNumber:
		c.Kind = models.ControlNumber
		c.Placeholder = fmt.Sprintf("Enter %s", strings.ToLower(sf.FieldLabel))
		if v.Kind == models.ValueText {
			c.Value = v.Text
		}
	case models.FieldTypeCheckbox:
		c.Kind = models.ControlCheckbox
		c.Options = options
		if v.Kind == models.ValueTextArray {
			c.Values = v.Texts
		}
	case models.FieldTypePicture:
		p := v.PictureOrEmpty()
		c.Kind = models.ControlPictures
		c.Placeholder = fmt.Sprintf("Add %s", strings.ToLower(sf.FieldLabel))
		c.Hint = fmt.Sprintf("Upload multiple images for %s (Max %dMB each). You can upload several images.", sf.SectionName, PictureMaxMB)
		c.MaxSizeMB = PictureMaxMB
		c.Rows = captionRows
		c.CaptionName = CaptionKey(sf.FieldName)
		c.Caption = p.Caption
		c.Images = pictureEntries(p)
	default:
		c.Kind = models.ControlNone
	}
	return c
}

func pictureEntries(p models.PictureValue) []models.PictureEntry {
	entries := make([]models.PictureEntry, 0, p.Len())
	for i, url := range p.Existing {
		entries = append(entries, models.PictureEntry{
			Index: i,
			Name:  fmt.Sprintf(existingImgName, i+1),
			URL:   url,
		})
	}
	for j, ref := range p.Uploads {
		entries = append(entries, models.PictureEntry{
			Index:    len(p.Existing) + j,
			Name:     ref.Filename,
			Uploaded: true,
		})
	}
	return entries
}

// RenderForm renders every selected field, grouped by section in the order
// sections first appear in the selection.
func RenderForm(d *models.Draft) []models.SectionControls {
	groups := []models.SectionControls{}
	index := map[string]int{}
	for _, sf := range d.SelectedFields {
		i, ok := index[sf.SectionID]
		if !ok {
			i = len(groups)
			index[sf.SectionID] = i
			groups = append(groups, models.SectionControls{
				SectionID:   sf.SectionID,
				SectionName: sf.SectionName,
			})
		}
		c := RenderField(sf, d.FieldValues[sf.FieldName], fieldOptions(d.Sections, sf))
		if c.Kind == models.ControlNone {
			continue
		}
		groups[i].Controls = append(groups[i].Controls, c)
	}
	return groups
}

func fieldOptions(sections []models.Section, sf models.SelectedField) []string {
	for _, s := range sections {
		if s.ID != sf.SectionID {
			continue
		}
		if f, ok := s.FindField(sf.FieldID); ok {
			return f.Options
		}
	}
	return nil
}
