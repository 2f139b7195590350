package rules

import (
	"regexp"
	"strings"

	"github.com/yaklabco/uiguide/pkg/check"
	"github.com/yaklabco/uiguide/pkg/config"
	"github.com/yaklabco/uiguide/pkg/guide"
)

// minTablePipes is the pipe count that makes a line a table row candidate.
const minTablePipes = 2

// codeFencePattern matches a fenced code block opener with an optional language tag.
var codeFencePattern = regexp.MustCompile("```\\w*")

// TablesRule warns when no markdown table is present.
type TablesRule struct {
	check.BaseRule
}

// NewTablesRule creates a new token-tables rule.
func NewTablesRule() *TablesRule {
	return &TablesRule{
		BaseRule: check.NewBaseRule(
			"GV006",
			"token-tables",
			"Design tokens are laid out in at least one table",
			config.SeverityWarning,
		),
	}
}

// Apply looks for two consecutive lines that each hold at least two pipes.
func (r *TablesRule) Apply(ctx *check.RuleContext) ([]guide.Finding, error) {
	if hasTable(ctx.Text()) {
		return nil, nil
	}
	return []guide.Finding{r.Finding("Guideline should include structured tables for design tokens")}, nil
}

func hasTable(text string) bool {
	prevRow := false
	for line := range strings.SplitSeq(text, "\n") {
		row := strings.Count(line, "|") >= minTablePipes
		if row && prevRow {
			return true
		}
		prevRow = row
	}
	return false
}

// CodeExamplesRule warns when no fenced code block is present.
type CodeExamplesRule struct {
	check.BaseRule
}

// NewCodeExamplesRule creates a new code-examples rule.
func NewCodeExamplesRule() *CodeExamplesRule {
	return &CodeExamplesRule{
		BaseRule: check.NewBaseRule(
			"GV007",
			"code-examples",
			"At least one fenced code block is present",
			config.SeverityWarning,
		),
	}
}

// Apply looks for a ``` fence anywhere in the document.
func (r *CodeExamplesRule) Apply(ctx *check.RuleContext) ([]guide.Finding, error) {
	if codeFencePattern.MatchString(ctx.Text()) {
		return nil, nil
	}
	return []guide.Finding{r.Finding("Guideline should include code examples")}, nil
}
