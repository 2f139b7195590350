package guide

import "github.com/yaklabco/uiguide/pkg/config"

// Finding is a single validation outcome.
type Finding struct {
	// RuleID is the identifier of the rule that produced the finding (e.g., "GV002").
	// Empty for load failures.
	RuleID string

	// RuleName is the human-readable name of the rule.
	RuleName string

	// Severity is error or warning.
	Severity config.Severity

	// Message is the human-readable description.
	Message string
}

// IsError reports whether the finding fails validation.
func (f Finding) IsError() bool {
	return f.Severity == config.SeverityError
}

// Status is the pass/fail verdict of a validation run.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
)

// Result accumulates findings for one document in the order rules ran.
type Result struct {
	// Path is the validated document path.
	Path string

	// Errors are findings with error severity.
	Errors []Finding

	// Warnings are findings with warning severity.
	Warnings []Finding

	// Components lists the component sections found, in catalog order.
	Components []string

	// Meta holds frontmatter metadata when the document has parseable frontmatter.
	Meta *Meta
}

// NewResult creates an empty result for path.
func NewResult(path string) *Result {
	return &Result{Path: path}
}

// LoadFailure builds the result of a run whose document could not be loaded.
// It holds exactly one error and no warnings.
func LoadFailure(path string, err error) *Result {
	result := NewResult(path)
	result.Add(Finding{Severity: config.SeverityError, Message: err.Error()})
	return result
}

// Add appends a finding to the sequence matching its severity.
func (r *Result) Add(f Finding) {
	if f.IsError() {
		r.Errors = append(r.Errors, f)
		return
	}
	r.Warnings = append(r.Warnings, f)
}

// Status returns PASS iff there are no errors. Warnings never affect it.
func (r *Result) Status() Status {
	if len(r.Errors) == 0 {
		return StatusPass
	}
	return StatusFail
}

// Passed reports whether the status is PASS.
func (r *Result) Passed() bool {
	return r.Status() == StatusPass
}

// Clean reports whether there are neither errors nor warnings.
func (r *Result) Clean() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}

// ErrorMessages returns the error messages in order.
func (r *Result) ErrorMessages() []string {
	return messages(r.Errors)
}

// WarningMessages returns the warning messages in order.
func (r *Result) WarningMessages() []string {
	return messages(r.Warnings)
}

func messages(findings []Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Message)
	}
	return out
}
