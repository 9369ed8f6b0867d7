package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"designfoli-web/internal/designfoli"
	"designfoli-web/internal/errorz"
	"designfoli-web/internal/models"
)

var (
	styleFonts         = []string{"Serif", "Sans Serif", "Monospace", "Cursive"}
	styleHeadingStyles = []string{"Regular", "Bold", "Semi-Bold", "Light"}
	styleButtonStyles  = []string{"Fill", "Stroke"}
	styleSpacings      = []string{"S", "M", "L", "XL"}

	hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// DefaultStyle is the portfolio look before the user changes anything.
func DefaultStyle() models.StyleConfig {
	return models.StyleConfig{
		Font:         "Sans Serif",
		HeadingStyle: "Regular",
		Colors: models.StyleColors{
			Primary:    "#1a1a1a",
			Secondary:  "#6c757d",
			Accent:     "#6155F5",
			Background: "#F8F9FA",
		},
		ButtonStyle: "Fill",
		Spacing:     "M",
	}
}

// MergeStyle overlays the non-empty members of patch onto base.
func MergeStyle(base, patch models.StyleConfig) models.StyleConfig {
	out := base
	if patch.Font != "" {
		out.Font = patch.Font
	}
	if patch.HeadingStyle != "" {
		out.HeadingStyle = patch.HeadingStyle
	}
	if patch.ButtonStyle != "" {
		out.ButtonStyle = patch.ButtonStyle
	}
	if patch.Spacing != "" {
		out.Spacing = patch.Spacing
	}
	if patch.Colors.Primary != "" {
		out.Colors.Primary = patch.Colors.Primary
	}
	if patch.Colors.Secondary != "" {
		out.Colors.Secondary = patch.Colors.Secondary
	}
	if patch.Colors.Accent != "" {
		out.Colors.Accent = patch.Colors.Accent
	}
	if patch.Colors.Background != "" {
		out.Colors.Background = patch.Colors.Background
	}
	return out
}

func ValidateStyle(s models.StyleConfig) error {
	checks := []struct {
		field, value string
		allowed      []string
	}{
		{"font", s.Font, styleFonts},
		{"headingStyle", s.HeadingStyle, styleHeadingStyles},
		{"buttonStyle", s.ButtonStyle, styleButtonStyles},
		{"spacing", s.Spacing, styleSpacings},
	}
	for _, c := range checks {
		if !oneOf(c.value, c.allowed) {
			return errorz.Invalid(c.field, "must be one of %s", strings.Join(c.allowed, ", "))
		}
	}
	colors := map[string]string{
		"colors.primary":    s.Colors.Primary,
		"colors.secondary":  s.Colors.Secondary,
		"colors.accent":     s.Colors.Accent,
		"colors.background": s.Colors.Background,
	}
	for _, field := range []string{"colors.primary", "colors.secondary", "colors.accent", "colors.background"} {
		if !hexColor.MatchString(colors[field]) {
			return errorz.Invalid(field, "must be a hex color")
		}
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// NormalizeExperience fills the introduction from title and company and
// drops the end date while the user still works there.
func NormalizeExperience(e models.Experience) (models.Experience, error) {
	e.Title = strings.TrimSpace(e.Title)
	e.CompanyName = strings.TrimSpace(e.CompanyName)
	if e.Title == "" {
		return e, errorz.Invalid("title", "Job title is required")
	}
	if e.CompanyName == "" {
		return e, errorz.Invalid("companyName", "Company is required")
	}
	if e.StartDate == "" {
		return e, errorz.Invalid("startDate", "Start date is required")
	}
	if strings.TrimSpace(e.Introduction) == "" {
		e.Introduction = fmt.Sprintf("%s at %s", e.Title, e.CompanyName)
	}
	if e.CurrentlyWorking {
		e.EndDate = ""
	}
	return e, nil
}

// NormalizeEducation drops the end date for ongoing studies.
func NormalizeEducation(e models.Education) models.Education {
	if e.Current {
		e.EndDate = ""
	}
	return e
}

// ProfileBackend is the profile part of the DesignFoli API.
type ProfileBackend interface {
	GetProfile(ctx context.Context, token string) (*models.UserInfo, error)
	UpdateStyle(ctx context.Context, token string, style models.StyleConfig) error
	AddExperience(ctx context.Context, token string, e models.Experience) error
	UpdateExperience(ctx context.Context, token, id string, e models.Experience) error
	AddEducation(ctx context.Context, token string, e models.Education) error
	UpdateEducation(ctx context.Context, token, id string, e models.Education) error
}

var _ ProfileBackend = (*designfoli.Client)(nil)

// ProfileService applies the profile editor's rules before forwarding.
type ProfileService struct {
	backend ProfileBackend
}

func NewProfileService(backend ProfileBackend) *ProfileService {
	return &ProfileService{backend: backend}
}

// Style returns the stored style, or the default when none is set.
func (s *ProfileService) Style(ctx context.Context, token string) (models.StyleConfig, error) {
	profile, err := s.backend.GetProfile(ctx, token)
	if err != nil {
		return models.StyleConfig{}, err
	}
	if profile.StyleConfig == nil {
		return DefaultStyle(), nil
	}
	return MergeStyle(DefaultStyle(), *profile.StyleConfig), nil
}

// UpdateStyle merges patch into the current style, validates and saves it.
func (s *ProfileService) UpdateStyle(ctx context.Context, token string, patch models.StyleConfig) (models.StyleConfig, error) {
	current, err := s.Style(ctx, token)
	if err != nil {
		return models.StyleConfig{}, err
	}
	merged := MergeStyle(current, patch)
	if err := ValidateStyle(merged); err != nil {
		return models.StyleConfig{}, err
	}
	if err := s.backend.UpdateStyle(ctx, token, merged); err != nil {
		return models.StyleConfig{}, err
	}
	return merged, nil
}

func (s *ProfileService) SaveExperience(ctx context.Context, token, id string, e models.Experience) error {
	e, err := NormalizeExperience(e)
	if err != nil {
		return err
	}
	if id == "" {
		return s.backend.AddExperience(ctx, token, e)
	}
	return s.backend.UpdateExperience(ctx, token, id, e)
}

func (s *ProfileService) SaveEducation(ctx context.Context, token, id string, e models.Education) error {
	e = NormalizeEducation(e)
	if id == "" {
		return s.backend.AddEducation(ctx, token, e)
	}
	return s.backend.UpdateEducation(ctx, token, id, e)
}
