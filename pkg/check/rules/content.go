package rules

import (
	"regexp"
	"strings"

	"github.com/yaklabco/uiguide/pkg/check"
	"github.com/yaklabco/uiguide/pkg/config"
	"github.com/yaklabco/uiguide/pkg/guide"
)

var (
	hexColorPattern = regexp.MustCompile(`#[0-9A-Fa-f]{6}\b`)
	fontSizePattern = regexp.MustCompile(`(?i)(font-size|px|rem)`)
)

// ColorPaletteRule warns when a document mentioning "Color Palette" has no hex colors.
type ColorPaletteRule struct {
	check.BaseRule
}

// NewColorPaletteRule creates a new color-palette-values rule.
func NewColorPaletteRule() *ColorPaletteRule {
	return &ColorPaletteRule{
		BaseRule: check.NewBaseRule(
			"GV004",
			"color-palette-values",
			"Color Palette content includes #RRGGBB color values",
			config.SeverityWarning,
		),
	}
}

// Apply is gated on the "Color Palette" text appearing anywhere, heading or not.
func (r *ColorPaletteRule) Apply(ctx *check.RuleContext) ([]guide.Finding, error) {
	text := ctx.Text()
	if !strings.Contains(text, "Color Palette") || hexColorPattern.MatchString(text) {
		return nil, nil
	}
	return []guide.Finding{r.Finding("Color Palette section should include hex color values")}, nil
}

// TypographyRule warns when a document mentioning "Typography" has no font sizes.
type TypographyRule struct {
	check.BaseRule
}

// NewTypographyRule creates a new typography-sizes rule.
func NewTypographyRule() *TypographyRule {
	return &TypographyRule{
		BaseRule: check.NewBaseRule(
			"GV005",
			"typography-sizes",
			"Typography content includes font-size, px, or rem values",
			config.SeverityWarning,
		),
	}
}

// Apply is gated on the "Typography" text appearing anywhere.
func (r *TypographyRule) Apply(ctx *check.RuleContext) ([]guide.Finding, error) {
	text := ctx.Text()
	if !strings.Contains(text, "Typography") || fontSizePattern.MatchString(text) {
		return nil, nil
	}
	return []guide.Finding{r.Finding("Typography section should include font size specifications")}, nil
}
