package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"designfoli-web/internal/casestudy"
	"designfoli-web/internal/models"
	"designfoli-web/internal/staging"
	"github.com/gabriel-vasile/mimetype"
	"gopkg.in/yaml.v3"
)

// Manifest describes a case study in a YAML file:
//
//	title: Checkout redesign
//	tags: [UX, Mobile]
//	cover: ./cover.png
//	fields:
//	  - section: Overview
//	    field: summary
//	    text: We rebuilt checkout.
//	  - section: Gallery
//	    field: photos
//	    files: [./a.png, ./b.png]
//	    caption: Before and after
//
// Sections and fields may be named by id or by name. Paths are relative to
// the manifest.
type Manifest struct {
	Title     string          `yaml:"title"`
	Private   *bool           `yaml:"private"`
	Tags      []string        `yaml:"tags"`
	Cover     string          `yaml:"cover"`
	Thumbnail string          `yaml:"thumbnail"`
	Fields    []ManifestField `yaml:"fields"`

	dir string
}

type ManifestField struct {
	Section string   `yaml:"section"`
	Field   string   `yaml:"field"`
	Text    string   `yaml:"text"`
	Values  []string `yaml:"values"`
	Files   []string `yaml:"files"`
	Caption string   `yaml:"caption"`
}

// LoadManifest reads and decodes a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	m.dir = filepath.Dir(path)
	return &m, nil
}

// Apply runs the manifest through the wizard steps on d: selection and
// metadata first, then values. Local files are staged in files.
func (m *Manifest) Apply(ctx context.Context, d *models.Draft, files staging.Store) error {
	if m.Title != "" {
		title := m.Title
		casestudy.SetMetadata(d, casestudy.Metadata{ProjectTitle: &title})
	}
	for _, tag := range m.Tags {
		if err := casestudy.AddTag(d, tag); err != nil {
			return err
		}
	}
	if m.Thumbnail != "" {
		ref, err := m.stage(ctx, d, files, m.Thumbnail, casestudy.ThumbnailMaxMB)
		if err != nil {
			return err
		}
		casestudy.SetMetadata(d, casestudy.Metadata{ThumbnailImage: models.UploadedImage(ref)})
	}

	chosen := make([]models.Field, 0, len(m.Fields))
	for _, mf := range m.Fields {
		section, field, err := resolveField(d.Sections, mf.Section, mf.Field)
		if err != nil {
			return err
		}
		if !casestudy.IsSelected(d, field.ID) {
			casestudy.ToggleField(d, section, field)
		}
		chosen = append(chosen, field)
	}

	if d.Step == models.StepSelection {
		if err := casestudy.Advance(d); err != nil {
			return err
		}
	}

	for i, mf := range m.Fields {
		if err := m.applyValue(ctx, d, files, chosen[i], mf); err != nil {
			return err
		}
	}
	if m.Cover != "" {
		ref, err := m.stage(ctx, d, files, m.Cover, casestudy.CoverMaxMB)
		if err != nil {
			return err
		}
		casestudy.SetCoverImage(d, models.UploadedImage(ref))
	}
	if m.Private != nil {
		casestudy.SetPrivate(d, *m.Private)
	}
	return nil
}

func (m *Manifest) applyValue(ctx context.Context, d *models.Draft, files staging.Store, field models.Field, mf ManifestField) error {
	switch field.Type {
	case models.FieldTypePicture:
		if len(mf.Files) > 0 {
			refs := make([]models.FileRef, 0, len(mf.Files))
			for _, p := range mf.Files {
				ref, err := m.stage(ctx, d, files, p, casestudy.PictureMaxMB)
				if err != nil {
					return err
				}
				refs = append(refs, ref)
			}
			casestudy.AppendPicture(d, field.Name, refs...)
		}
		if mf.Caption != "" {
			casestudy.SetCaption(d, field.Name, mf.Caption)
		}
	case models.FieldTypeCheckbox:
		if mf.Values != nil {
			casestudy.SetFieldValue(d, field.Name, models.TextArrayValue(mf.Values))
		}
	default:
		if mf.Text != "" {
			casestudy.SetFieldValue(d, field.Name, models.TextValue(mf.Text))
		}
	}
	return nil
}

func (m *Manifest) stage(ctx context.Context, d *models.Draft, files staging.Store, path string, maxMB int) (models.FileRef, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return models.FileRef{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) > maxMB<<20 {
		return models.FileRef{}, fmt.Errorf("%s exceeds the %dMB limit", path, maxMB)
	}
	contentType := mimetype.Detect(data).String()
	if !strings.HasPrefix(contentType, "image/") {
		return models.FileRef{}, fmt.Errorf("%s is not an image (%s)", path, contentType)
	}
	return files.Put(ctx, d.UserID, d.ID, filepath.Base(path), contentType, data)
}

func resolveField(sections []models.Section, sectionKey, fieldKey string) (models.Section, models.Field, error) {
	for _, s := range sections {
		if s.ID != sectionKey && !strings.EqualFold(s.Name, sectionKey) {
			continue
		}
		for _, f := range s.Fields {
			if f.ID == fieldKey || f.Name == fieldKey {
				return s, f, nil
			}
		}
		return models.Section{}, models.Field{}, fmt.Errorf("section %q has no field %q", sectionKey, fieldKey)
	}
	return models.Section{}, models.Field{}, fmt.Errorf("unknown section %q", sectionKey)
}
