package casestudy

import (
	"designfoli-web/internal/errorz"
	"designfoli-web/internal/models"
)

// Completion is what a successful value step hands to the wizard.
type Completion struct {
	FieldValues map[string]models.FieldValue
	CoverImage  *models.ImageRef
	IsPrivate   bool
}

// SelectedByName returns the selected field with the given machine name.
func SelectedByName(d *models.Draft, name string) (models.SelectedField, bool) {
	for _, sf := range d.SelectedFields {
		if sf.FieldName == name {
			return sf, true
		}
	}
	return models.SelectedField{}, false
}

// SetFieldValue overwrites the value of name. Appends and removals go through
// here too, with the new full value.
func SetFieldValue(d *models.Draft, name string, v models.FieldValue) {
	if d.FieldValues == nil {
		d.FieldValues = map[string]models.FieldValue{}
	}
	d.FieldValues[name] = v
	touch(d)
}

// AppendPicture adds new uploads after the images already in the field.
func AppendPicture(d *models.Draft, name string, refs ...models.FileRef) {
	p := d.FieldValues[name].PictureOrEmpty()
	p.Uploads = append(append([]models.FileRef{}, p.Uploads...), refs...)
	SetFieldValue(d, name, models.PictureOf(p))
}

// RemovePicture drops the image at index of the merged list (hosted images
// first, then uploads). The removed upload is returned so its staged bytes
// can be released; it is nil when a hosted image was removed.
func RemovePicture(d *models.Draft, name string, index int) (*models.FileRef, error) {
	p := d.FieldValues[name].PictureOrEmpty()
	var removed *models.FileRef
	if i := index - len(p.Existing); i >= 0 && i < len(p.Uploads) {
		ref := p.Uploads[i]
		removed = &ref
	}
	next, ok := p.Remove(index)
	if !ok {
		return nil, errorz.Invalid(name, "no image at index %d", index)
	}
	SetFieldValue(d, name, models.PictureOf(next))
	return removed, nil
}

// SetCaption stores the free-text commentary attached to a picture field.
func SetCaption(d *models.Draft, name, caption string) {
	p := d.FieldValues[name].PictureOrEmpty()
	p.Caption = caption
	SetFieldValue(d, name, models.PictureOf(p))
}

func SetCoverImage(d *models.Draft, img *models.ImageRef) {
	d.CoverImage = img
	touch(d)
}

func SetPrivate(d *models.Draft, private bool) {
	d.IsPrivate = private
	touch(d)
}

// Validate runs the submit-time checks in order: a non-empty selection, a
// cover image, then every required field.
func Validate(d *models.Draft) error {
	if len(d.SelectedFields) == 0 {
		return errorz.Invalid("selectedFields", "Please select at least one field in step 1")
	}
	if !d.CoverImage.IsSet() {
		return errorz.Invalid("coverImage", "Please upload a cover image")
	}
	for _, sf := range d.SelectedFields {
		if !sf.Required {
			continue
		}
		v, ok := d.FieldValues[sf.FieldName]
		if !ok || v.IsEmpty() {
			return errorz.Invalid(sf.FieldName, "Please fill in the required field: %s", sf.FieldLabel)
		}
	}
	return nil
}

// ValidateAndSubmit validates d and, only when it passes, calls complete.
func ValidateAndSubmit(d *models.Draft, complete func(Completion) error) error {
	if err := Validate(d); err != nil {
		return err
	}
	return complete(Completion{
		FieldValues: d.FieldValues,
		CoverImage:  d.CoverImage,
		IsPrivate:   d.IsPrivate,
	})
}
