// Package config defines core configuration types for uiguide.
// These types are pure data structures; loading and merging live in internal/configloader.
package config

// Severity represents the severity level of a validation finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled *bool `yaml:"enabled"`
}

// OutputFormat specifies the output format for validation reports.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// DefaultRequiredSections returns the section titles every guideline document must contain.
func DefaultRequiredSections() []string {
	return []string{
		"Color Palette",
		"Typography",
		"Spacing Scale",
		"Components",
		"Buttons",
		"Cards",
	}
}

// DefaultComponentSections returns the closed catalog of known component topics.
func DefaultComponentSections() []string {
	return []string{
		"Buttons",
		"Cards",
		"Badges",
		"Modals",
		"Sidebar Navigation",
		"Tags",
		"Forms",
		"Text Styles",
		"Images",
		"Tooltips",
		"Tables",
		"Counters",
		"Charts",
	}
}

// Config is the root configuration structure for uiguide.
type Config struct {
	// RequiredSections must each appear as a heading of depth 1-3.
	RequiredSections []string `yaml:"required_sections" validate:"dive,required"`

	// ComponentSections is the catalog searched at heading depth 2-4.
	ComponentSections []string `yaml:"component_sections" validate:"dive,required"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Format specifies the report format.
	Format OutputFormat `yaml:"format" validate:"omitempty,oneof=text json"`

	// CLI-level options (not persisted to config files).

	// Strict is accepted for compatibility; warnings never change the verdict.
	Strict bool `yaml:"-"`

	// Output is an accepted report path; reports are written to stdout only.
	Output string `yaml:"-"`
}

// NewConfig returns a Config with the default catalogs.
func NewConfig() *Config {
	return &Config{
		RequiredSections:  DefaultRequiredSections(),
		ComponentSections: DefaultComponentSections(),
		Rules:             make(map[string]RuleConfig),
		Format:            FormatText,
	}
}

// RuleEnabled reports whether the rule with the given ID should run.
// Rules are enabled unless explicitly disabled.
func (c *Config) RuleEnabled(id string) bool {
	if c == nil || c.Rules == nil {
		return true
	}
	rc, ok := c.Rules[id]
	if !ok || rc.Enabled == nil {
		return true
	}
	return *rc.Enabled
}
