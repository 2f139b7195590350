// Package check provides the rule interface, registry, and engine that
// validate guideline documents.
package check

import (
	"github.com/yaklabco/uiguide/pkg/config"
	"github.com/yaklabco/uiguide/pkg/guide"
)

// Rule defines the interface that all validation rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "GV001").
	// Rules run in ascending ID order.
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a short description of what the rule checks.
	Description() string

	// Severity returns the severity of the findings this rule produces.
	Severity() config.Severity

	// Apply runs the rule against the document and returns its findings.
	//
	// Rules must not depend on other rules' output and must return an
	// error only for internal failures, never for violations.
	Apply(ctx *RuleContext) ([]guide.Finding, error)
}

// BaseRule provides the metadata half of the Rule interface.
// Embed it in rule implementations and define Apply.
type BaseRule struct {
	id       string
	name     string
	desc     string
	severity config.Severity
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, severity config.Severity) BaseRule {
	return BaseRule{
		id:       id,
		name:     name,
		desc:     desc,
		severity: severity,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a short description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// Severity returns the severity of the findings this rule produces.
func (r *BaseRule) Severity() config.Severity {
	return r.severity
}

// Finding builds a finding attributed to this rule.
func (r *BaseRule) Finding(message string) guide.Finding {
	return guide.Finding{
		RuleID:   r.id,
		RuleName: r.name,
		Severity: r.severity,
		Message:  message,
	}
}
