package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"designfoli-web/internal/casestudy"
	"designfoli-web/internal/models"
	"designfoli-web/internal/staging"
	"github.com/spf13/cobra"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the case-study configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "sections",
		Short: "List sections, their fields and the tag vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, stop, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			defer stop()
			cfg, err := a.Client.GetConfiguration(cmd.Context(), s.Token())
			if err != nil {
				return err
			}
			for _, section := range cfg.Sections {
				a.printf("%s (%s)\n", section.Name, section.ID)
				for _, f := range casestudy.SortedFields(section) {
					req := ""
					if f.Required {
						req = " *"
					}
					a.printf("  %-24s %-10s %s%s\n", f.Name, f.Type, f.Label, req)
				}
			}
			if len(cfg.Tags) > 0 {
				a.printf("\nTags: %s\n", strings.Join(cfg.Tags, ", "))
			}
			return nil
		},
	})
	return cmd
}

func (a *app) caseStudyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "casestudy",
		Aliases: []string{"cs"},
		Short:   "Create, update, show and delete case studies",
	}
	cmd.AddCommand(a.createCmd())
	cmd.AddCommand(a.updateCmd())
	cmd.AddCommand(a.getCmd())
	cmd.AddCommand(a.deleteCmd())
	return cmd
}

func (a *app) createCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "create -f study.yaml",
		Short: "Create a case study from a manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := LoadManifest(file)
			if err != nil {
				return err
			}
			s, stop, err := a.session(ctx)
			if err != nil {
				return err
			}
			defer stop()
			cfg, err := a.Client.GetConfiguration(ctx, s.Token())
			if err != nil {
				return err
			}

			d := models.NewDraft(s.User().ID, models.DraftModeCreate)
			d.Sections = cfg.Sections
			d.AvailableTags = cfg.Tags

			files := staging.NewMemory()
			if err := m.Apply(ctx, d, files); err != nil {
				return err
			}
			if err := casestudy.Validate(d); err != nil {
				return err
			}
			payload, err := casestudy.Serialize(ctx, d, files)
			if err != nil {
				return err
			}
			cs, err := a.Client.CreateCaseStudy(ctx, s.Token(), payload)
			if err != nil {
				return err
			}
			a.printf("Created case study %s\n", cs.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Manifest path")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) updateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "update <id> -f study.yaml",
		Short: "Apply a manifest to an existing case study",
		Long: `Apply a manifest to an existing case study.

Fields named in the manifest are selected and overwritten; everything else
keeps its saved value. Picture files are added after the hosted images.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := LoadManifest(file)
			if err != nil {
				return err
			}
			s, stop, err := a.session(ctx)
			if err != nil {
				return err
			}
			defer stop()
			existing, err := a.Client.GetCaseStudy(ctx, s.Token(), args[0])
			if err != nil {
				return err
			}
			d, err := casestudy.Hydrate(s.User().ID, existing)
			if err != nil {
				return err
			}
			cfg, err := a.Client.GetConfiguration(ctx, s.Token())
			if err != nil {
				return err
			}
			d.Sections = cfg.Sections
			d.AvailableTags = cfg.Tags

			files := staging.NewMemory()
			if err := m.Apply(ctx, d, files); err != nil {
				return err
			}
			if err := casestudy.Validate(d); err != nil {
				return err
			}
			payload, err := casestudy.Serialize(ctx, d, files)
			if err != nil {
				return err
			}
			if _, err := a.Client.UpdateCaseStudy(ctx, s.Token(), args[0], payload); err != nil {
				return err
			}
			a.printf("Updated case study %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Manifest path")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// caseStudyOutput is what get prints: the record with its values decoded.
type caseStudyOutput struct {
	ID             string                       `json:"id"`
	ProjectTitle   string                       `json:"projectTitle"`
	IsPrivate      bool                         `json:"isPrivate"`
	Tags           []string                     `json:"tags"`
	CoverImage     string                       `json:"coverImage,omitempty"`
	ThumbnailImage string                       `json:"thumbnailImage,omitempty"`
	SelectedFields []models.SelectedField       `json:"selectedFields"`
	Values         map[string]models.FieldValue `json:"values"`
}

func (a *app) getCmd() *cobra.Command {
	var public bool
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Print a case study as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var cs *models.CaseStudy
			if public {
				var err error
				if cs, err = a.Client.GetPublicCaseStudy(ctx, args[0]); err != nil {
					return err
				}
			} else {
				s, stop, err := a.session(ctx)
				if err != nil {
					return err
				}
				defer stop()
				if cs, err = a.Client.GetCaseStudy(ctx, s.Token(), args[0]); err != nil {
					return err
				}
			}

			raw, err := cs.ParseFieldValues()
			if err != nil {
				return fmt.Errorf("failed to parse fieldValues: %w", err)
			}
			out := caseStudyOutput{
				ID:             cs.ID,
				ProjectTitle:   cs.ProjectTitle,
				IsPrivate:      cs.IsPrivate,
				Tags:           cs.Tags,
				CoverImage:     cs.CoverImage,
				ThumbnailImage: cs.ThumbnailImage,
				SelectedFields: cs.SelectedFields,
				Values:         casestudy.DecodeFieldValues(cs.SelectedFields, raw, cs.Extra),
			}
			enc := json.NewEncoder(a.Out)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().BoolVar(&public, "public", false, "Read through the public endpoint without signing in")
	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a case study",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to delete without --yes")
			}
			s, stop, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			defer stop()
			if err := a.Client.DeleteCaseStudy(cmd.Context(), s.Token(), args[0]); err != nil {
				return err
			}
			a.printf("Deleted case study %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the deletion")
	return cmd
}
