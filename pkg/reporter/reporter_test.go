package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/uiguide/pkg/config"
	"github.com/yaklabco/uiguide/pkg/guide"
	"github.com/yaklabco/uiguide/pkg/reporter"
)

var banner = strings.Repeat("=", 60)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "unknown format", input: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	assert.True(t, reporter.FormatText.IsValid())
	assert.True(t, reporter.FormatJSON.IsValid())
	assert.False(t, reporter.Format("sarif").IsValid())
	assert.False(t, reporter.Format("").IsValid())
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		format  reporter.Format
		wantErr bool
	}{
		{name: "text reporter", format: reporter.FormatText},
		{name: "json reporter", format: reporter.FormatJSON},
		{name: "empty defaults to text", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rep, err := reporter.New(reporter.Options{Writer: &buf, Format: tt.format, Color: "never"})
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, rep)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

func failingResult() *guide.Result {
	result := guide.NewResult("docs/guide.md")
	result.Add(guide.Finding{RuleID: "GV002", RuleName: "required-sections", Severity: config.SeverityError, Message: "Missing required section: Cards"})
	result.Add(guide.Finding{RuleID: "GV003", RuleName: "component-sections", Severity: config.SeverityError, Message: "No component sections found"})
	result.Add(guide.Finding{RuleID: "GV007", RuleName: "code-examples", Severity: config.SeverityWarning, Message: "Guideline should include code examples"})
	return result
}

func renderText(t *testing.T, result *guide.Result) string {
	t.Helper()
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never"})
	require.NoError(t, rep.Report(context.Background(), result))
	return buf.String()
}

func TestTextReporter_Failing(t *testing.T) {
	want := "\n" +
		banner + "\n" +
		"GUIDELINE VALIDATION REPORT\n" +
		banner + "\n" +
		"File: docs/guide.md\n" +
		"\n" +
		"❌ ERRORS:\n" +
		"  • Missing required section: Cards\n" +
		"  • No component sections found\n" +
		"\n" +
		"⚠️  WARNINGS:\n" +
		"  • Guideline should include code examples\n" +
		"\n" +
		"Status: FAIL\n" +
		banner + "\n" +
		"\n"

	assert.Equal(t, want, renderText(t, failingResult()))
}

func TestTextReporter_Clean(t *testing.T) {
	want := "\n" +
		banner + "\n" +
		"GUIDELINE VALIDATION REPORT\n" +
		banner + "\n" +
		"File: guide.md\n" +
		"\n" +
		"✅ All validation checks passed!\n" +
		"\n" +
		"Status: PASS\n" +
		banner + "\n" +
		"\n"

	assert.Equal(t, want, renderText(t, guide.NewResult("guide.md")))
}

func TestTextReporter_WarningsOnlyPasses(t *testing.T) {
	result := guide.NewResult("guide.md")
	result.Add(guide.Finding{Severity: config.SeverityWarning, Message: "Guideline should include code examples"})

	out := renderText(t, result)
	assert.Contains(t, out, "⚠️  WARNINGS:\n  • Guideline should include code examples\n\n")
	assert.NotContains(t, out, "ERRORS")
	assert.NotContains(t, out, "All validation checks passed")
	assert.Contains(t, out, "Status: PASS\n")
}

func TestTextReporter_NilResult(t *testing.T) {
	out := renderText(t, nil)
	assert.Contains(t, out, "Status: PASS")
}

func TestJSONReporter(t *testing.T) {
	result := failingResult()
	result.Components = []string{"Buttons"}
	result.Meta = &guide.Meta{Title: "Acme"}

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{Writer: &buf, Format: reporter.FormatJSON})
	require.NoError(t, err)
	require.NoError(t, rep.Report(context.Background(), result))

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "docs/guide.md", output.Path)
	assert.Equal(t, "Acme", output.Title)
	assert.Equal(t, "FAIL", output.Status)
	require.Len(t, output.Errors, 2)
	assert.Equal(t, "GV002", output.Errors[0].RuleID)
	assert.Equal(t, "error", output.Errors[0].Severity)
	require.Len(t, output.Warnings, 1)
	assert.Equal(t, "Guideline should include code examples", output.Warnings[0].Message)
	assert.Equal(t, []string{"Buttons"}, output.Components)
}

func TestJSONReporter_EmptyListsNotNull(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, Compact: true})
	require.NoError(t, rep.Report(context.Background(), guide.NewResult("guide.md")))

	assert.JSONEq(t,
		`{"path":"guide.md","status":"PASS","errors":[],"warnings":[],"components":[]}`,
		buf.String())
}
