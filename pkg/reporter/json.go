package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/uiguide/pkg/guide"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Path       string        `json:"path"`
	Title      string        `json:"title,omitempty"`
	Status     string        `json:"status"`
	Errors     []JSONFinding `json:"errors"`
	Warnings   []JSONFinding `json:"warnings"`
	Components []string      `json:"components"`
}

// JSONFinding represents a single finding.
type JSONFinding struct {
	RuleID   string `json:"ruleId,omitempty"`
	RuleName string `json:"ruleName,omitempty"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *guide.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(buildOutput(result)); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	return nil
}

func buildOutput(result *guide.Result) *JSONOutput {
	if result == nil {
		result = guide.NewResult("")
	}

	output := &JSONOutput{
		Path:       result.Path,
		Status:     string(result.Status()),
		Errors:     toJSONFindings(result.Errors),
		Warnings:   toJSONFindings(result.Warnings),
		Components: make([]string, 0, len(result.Components)),
	}
	output.Components = append(output.Components, result.Components...)

	if result.Meta != nil {
		output.Title = result.Meta.Title
	}

	return output
}

func toJSONFindings(findings []guide.Finding) []JSONFinding {
	out := make([]JSONFinding, 0, len(findings))
	for _, f := range findings {
		out = append(out, JSONFinding{
			RuleID:   f.RuleID,
			RuleName: f.RuleName,
			Severity: string(f.Severity),
			Message:  f.Message,
		})
	}
	return out
}
