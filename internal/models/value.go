package models

import "strings"

type ValueKind string

const (
	ValueText      ValueKind = "text"
	ValueTextArray ValueKind = "text_array"
	ValueFile      ValueKind = "file"
	ValueFileArray ValueKind = "file_array"
	ValuePicture   ValueKind = "picture"
)

// FileRef is an opaque handle to an upload staged by the gateway. The bytes
// live in the file store under Path until the draft is submitted or dropped.
type FileRef struct {
	Path        string `json:"path" yaml:"path"`
	Filename    string `json:"filename" yaml:"filename"`
	ContentType string `json:"contentType,omitempty" yaml:"contentType,omitempty"`
	Size        int64  `json:"size,omitempty" yaml:"size,omitempty"`
}

// PictureValue keeps already-hosted images and new uploads as two ordered
// lists. The merged order is Existing followed by Uploads.
type PictureValue struct {
	Existing []string  `json:"existing,omitempty"`
	Uploads  []FileRef `json:"uploads,omitempty"`
	Caption  string    `json:"caption,omitempty"`
}

func (p PictureValue) Len() int {
	return len(p.Existing) + len(p.Uploads)
}

// Remove drops the element at index of the merged list.
func (p PictureValue) Remove(index int) (PictureValue, bool) {
	if index < 0 || index >= p.Len() {
		return p, false
	}
	out := PictureValue{Caption: p.Caption}
	if index < len(p.Existing) {
		out.Existing = append(append([]string{}, p.Existing[:index]...), p.Existing[index+1:]...)
		out.Uploads = append([]FileRef{}, p.Uploads...)
		return out, true
	}
	i := index - len(p.Existing)
	out.Existing = append([]string{}, p.Existing...)
	out.Uploads = append(append([]FileRef{}, p.Uploads[:i]...), p.Uploads[i+1:]...)
	return out, true
}

// FieldValue is a tagged union over the shapes a dynamic field can hold.
// Only the member matching Kind is meaningful.
type FieldValue struct {
	Kind    ValueKind     `json:"kind"`
	Text    string        `json:"text,omitempty"`
	Texts   []string      `json:"texts,omitempty"`
	File    *FileRef      `json:"file,omitempty"`
	Files   []FileRef     `json:"files,omitempty"`
	Picture *PictureValue `json:"picture,omitempty"`
}

func TextValue(s string) FieldValue {
	return FieldValue{Kind: ValueText, Text: s}
}

func TextArrayValue(values []string) FieldValue {
	return FieldValue{Kind: ValueTextArray, Texts: values}
}

func FileValue(ref FileRef) FieldValue {
	return FieldValue{Kind: ValueFile, File: &ref}
}

func FileArrayValue(refs []FileRef) FieldValue {
	return FieldValue{Kind: ValueFileArray, Files: refs}
}

func PictureOf(p PictureValue) FieldValue {
	return FieldValue{Kind: ValuePicture, Picture: &p}
}

// IsEmpty reports whether a required field holding v would block submission:
// blank text or an empty list.
func (v FieldValue) IsEmpty() bool {
	switch v.Kind {
	case ValueText:
		return strings.TrimSpace(v.Text) == ""
	case ValueTextArray:
		return len(v.Texts) == 0
	case ValueFile:
		return v.File == nil
	case ValueFileArray:
		return len(v.Files) == 0
	case ValuePicture:
		return v.Picture == nil || v.Picture.Len() == 0
	}
	return true
}

// PictureOrEmpty returns the picture member, or an empty picture for any
// other kind.
func (v FieldValue) PictureOrEmpty() PictureValue {
	if v.Kind == ValuePicture && v.Picture != nil {
		return *v.Picture
	}
	return PictureValue{}
}

// FileRefs lists every staged upload referenced by v.
func (v FieldValue) FileRefs() []FileRef {
	switch v.Kind {
	case ValueFile:
		if v.File != nil {
			return []FileRef{*v.File}
		}
	case ValueFileArray:
		return v.Files
	case ValuePicture:
		if v.Picture != nil {
			return v.Picture.Uploads
		}
	}
	return nil
}

// ImageRef is either a hosted URL (edit mode, unchanged) or a staged upload.
type ImageRef struct {
	URL  string   `json:"url,omitempty"`
	File *FileRef `json:"file,omitempty"`
}

func (r *ImageRef) IsSet() bool {
	return r != nil && (r.URL != "" || r.File != nil)
}

func HostedImage(url string) *ImageRef {
	if url == "" {
		return nil
	}
	return &ImageRef{URL: url}
}

func UploadedImage(ref FileRef) *ImageRef {
	return &ImageRef{File: &ref}
}
