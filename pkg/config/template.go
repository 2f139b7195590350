package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Severity    Severity
}

// RuleInfoProvider is a function that returns rule information.
// This allows decoupling from the check package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the check package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

const templateHeader = `# uiguide configuration
# See: https://github.com/yaklabco/uiguide

`

// catalogTemplate is the serialized shape of the catalog portion of a template.
type catalogTemplate struct {
	RequiredSections  []string     `yaml:"required_sections"`
	ComponentSections []string     `yaml:"component_sections"`
	Format            OutputFormat `yaml:"format"`
}

// GenerateTemplate creates a commented configuration file holding the default catalogs.
func GenerateTemplate() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(templateHeader)

	buf.WriteString("# Headings of depth 1-3 that every guideline document must contain.\n")
	buf.WriteString("# Headings of depth 2-4 from component_sections; at least one is required.\n")

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent())
	err := encoder.Encode(catalogTemplate{
		RequiredSections:  DefaultRequiredSections(),
		ComponentSections: DefaultComponentSections(),
		Format:            FormatText,
	})
	if err != nil {
		return nil, fmt.Errorf("encode template: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	writeRuleSection(&buf)

	return buf.Bytes(), nil
}

// writeRuleSection appends commented per-rule toggles.
func writeRuleSection(buf *bytes.Buffer) {
	buf.WriteString("\n# Disable individual checks by ID:\n")
	buf.WriteString("# rules:\n")

	if DefaultRuleInfoProvider == nil {
		return
	}

	for _, rule := range DefaultRuleInfoProvider() {
		fmt.Fprintf(buf, "#   %s:  # %s (%s): %s\n", rule.ID, rule.Name, rule.Severity, rule.Description)
		buf.WriteString("#     enabled: true\n")
	}
}
