package rules

import (
	"fmt"

	"github.com/yaklabco/uiguide/pkg/check"
	"github.com/yaklabco/uiguide/pkg/config"
	"github.com/yaklabco/uiguide/pkg/guide"
)

// RequiredSectionsRule reports each required section without a depth 1-3 heading.
type RequiredSectionsRule struct {
	check.BaseRule
}

// NewRequiredSectionsRule creates a new required-sections rule.
func NewRequiredSectionsRule() *RequiredSectionsRule {
	return &RequiredSectionsRule{
		BaseRule: check.NewBaseRule(
			"GV002",
			"required-sections",
			"Every required section has a heading of depth 1-3",
			config.SeverityError,
		),
	}
}

// Apply returns one finding per missing title, in catalog order.
func (r *RequiredSectionsRule) Apply(ctx *check.RuleContext) ([]guide.Finding, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	var findings []guide.Finding
	seen := make(map[string]bool)

	for _, title := range ctx.Catalog.Required() {
		if seen[title] {
			continue
		}
		seen[title] = true

		if ctx.Cancelled() {
			return findings, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		if !ctx.Doc.HasHeading(title, guide.RequiredDepth) {
			findings = append(findings, r.Finding("Missing required section: "+title))
		}
	}

	return findings, nil
}

// ComponentSectionsRule requires at least one documented component section.
type ComponentSectionsRule struct {
	check.BaseRule
}

// NewComponentSectionsRule creates a new component-sections rule.
func NewComponentSectionsRule() *ComponentSectionsRule {
	return &ComponentSectionsRule{
		BaseRule: check.NewBaseRule(
			"GV003",
			"component-sections",
			"At least one component section has a heading of depth 2-4",
			config.SeverityError,
		),
	}
}

// Apply is all-or-nothing: one finding when no component heading exists.
func (r *ComponentSectionsRule) Apply(ctx *check.RuleContext) ([]guide.Finding, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	for _, title := range ctx.Catalog.Components() {
		if ctx.Doc.HasHeading(title, guide.ComponentDepth) {
			return nil, nil
		}
	}

	return []guide.Finding{r.Finding("No component sections found")}, nil
}
