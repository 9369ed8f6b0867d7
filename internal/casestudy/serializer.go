package casestudy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sort"
	"strings"

	"designfoli-web/internal/models"
)

// FileOpener reads staged uploads back for submission.
type FileOpener interface {
	Open(ctx context.Context, ref models.FileRef) (io.ReadCloser, error)
}

// Payload is a serialized submission ready to be sent as a request body.
type Payload struct {
	Body        []byte
	ContentType string
	Parts       []string
}

// EncodeIsPrivate writes the privacy flag the way the backend reads it:
// "true" when set and an empty string otherwise, never "false".
func EncodeIsPrivate(private bool) string {
	if private {
		return "true"
	}
	return ""
}

// Serialize writes the draft as a multipart/form-data body. Part names and
// their order depend only on the draft, so equal drafts give equal layouts.
func Serialize(ctx context.Context, d *models.Draft, files FileOpener) (*Payload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	p := &Payload{}

	writeField := func(name, value string) error {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		p.Parts = append(p.Parts, name)
		return nil
	}
	writeJSON := func(name string, v any) error {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", name, err)
		}
		return writeField(name, string(b))
	}
	writeFile := func(name string, ref models.FileRef) error {
		if err := copyFilePart(ctx, w, files, name, ref); err != nil {
			return err
		}
		p.Parts = append(p.Parts, name)
		return nil
	}

	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	selected := d.SelectedFields
	if selected == nil {
		selected = []models.SelectedField{}
	}

	if err := writeField("projectTitle", d.ProjectTitle); err != nil {
		return nil, err
	}
	if err := writeField("isPrivate", EncodeIsPrivate(d.IsPrivate)); err != nil {
		return nil, err
	}
	if err := writeJSON("tags", tags); err != nil {
		return nil, err
	}
	if err := writeJSON("selectedFields", selected); err != nil {
		return nil, err
	}
	if err := writeJSON("fieldValues", WireFieldValues(d.FieldValues)); err != nil {
		return nil, err
	}
	if d.CoverImage != nil && d.CoverImage.File != nil {
		if err := writeFile("coverImage", *d.CoverImage.File); err != nil {
			return nil, err
		}
	}
	if d.ThumbnailImage != nil && d.ThumbnailImage.File != nil {
		if err := writeFile("thumbnailImage", *d.ThumbnailImage.File); err != nil {
			return nil, err
		}
	}
	for _, name := range sortedKeys(d.FieldValues) {
		for _, part := range fileParts(name, d.FieldValues[name]) {
			if err := writeFile(part.name, part.ref); err != nil {
				return nil, err
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}
	p.Body = buf.Bytes()
	p.ContentType = w.FormDataContentType()
	return p, nil
}

// WireFieldValues converts typed values into the JSON document stored by the
// backend. New uploads appear as empty objects at their merged index, hosted
// images as their URLs, and captions under "<field>_addition".
func WireFieldValues(values map[string]models.FieldValue) map[string]any {
	out := make(map[string]any, len(values))
	for name, v := range values {
		switch v.Kind {
		case models.ValueText:
			out[name] = v.Text
		case models.ValueTextArray:
			texts := v.Texts
			if texts == nil {
				texts = []string{}
			}
			out[name] = texts
		case models.ValueFile:
			out[name] = map[string]any{}
		case models.ValueFileArray:
			items := make([]any, len(v.Files))
			for i := range v.Files {
				items[i] = map[string]any{}
			}
			out[name] = items
		case models.ValuePicture:
			pic := v.PictureOrEmpty()
			items := make([]any, 0, pic.Len())
			for _, url := range pic.Existing {
				items = append(items, url)
			}
			for range pic.Uploads {
				items = append(items, map[string]any{})
			}
			out[name] = items
			if pic.Caption != "" {
				out[CaptionKey(name)] = pic.Caption
			}
		}
	}
	return out
}

type filePart struct {
	name string
	ref  models.FileRef
}

func fileParts(name string, v models.FieldValue) []filePart {
	switch v.Kind {
	case models.ValueFile:
		if v.File != nil {
			return []filePart{{name: name, ref: *v.File}}
		}
	case models.ValueFileArray:
		parts := make([]filePart, len(v.Files))
		for i, ref := range v.Files {
			parts[i] = filePart{name: indexedName(name, i), ref: ref}
		}
		return parts
	case models.ValuePicture:
		pic := v.PictureOrEmpty()
		parts := make([]filePart, len(pic.Uploads))
		for j, ref := range pic.Uploads {
			parts[j] = filePart{name: indexedName(name, len(pic.Existing)+j), ref: ref}
		}
		return parts
	}
	return nil
}

func indexedName(name string, i int) string {
	return fmt.Sprintf("%s[%d]", name, i)
}

func sortedKeys(m map[string]models.FieldValue) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func copyFilePart(ctx context.Context, w *multipart.Writer, files FileOpener, name string, ref models.FileRef) error {
	if files == nil {
		return fmt.Errorf("failed to attach %s: no file store configured", name)
	}
	src, err := files.Open(ctx, ref)
	if err != nil {
		return fmt.Errorf("failed to open %s (%s): %w", name, ref.Path, err)
	}
	defer src.Close()

	contentType := ref.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(name), quoteEscaper.Replace(ref.Filename)))
	h.Set("Content-Type", contentType)
	dst, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create part %s: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy %s: %w", name, err)
	}
	return nil
}
