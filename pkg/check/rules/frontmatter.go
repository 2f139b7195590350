package rules

import (
	"strings"

	"github.com/yaklabco/uiguide/pkg/check"
	"github.com/yaklabco/uiguide/pkg/config"
	"github.com/yaklabco/uiguide/pkg/guide"
)

// frontmatterMarker is the literal a well-formed document starts with.
const frontmatterMarker = "---"

// FrontmatterRule warns when the document does not begin with frontmatter.
type FrontmatterRule struct {
	check.BaseRule
}

// NewFrontmatterRule creates a new frontmatter rule.
func NewFrontmatterRule() *FrontmatterRule {
	return &FrontmatterRule{
		BaseRule: check.NewBaseRule(
			"GV001",
			"frontmatter",
			"Document should start with YAML frontmatter",
			config.SeverityWarning,
		),
	}
}

// Apply inspects only the first three characters of the document.
func (r *FrontmatterRule) Apply(ctx *check.RuleContext) ([]guide.Finding, error) {
	if strings.HasPrefix(ctx.Text(), frontmatterMarker) {
		return nil, nil
	}
	return []guide.Finding{r.Finding("Document should start with YAML frontmatter (---)")}, nil
}
