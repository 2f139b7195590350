package pretty_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/uiguide/internal/ui/pretty"
)

func TestNewStyles_ColorEnabled(t *testing.T) {
	styles := pretty.NewStyles(true)
	require.NotNil(t, styles)

	// Lipgloss may not emit ANSI codes outside a TTY, so only check rendering works.
	assert.NotEmpty(t, styles.Error.Render("x"))
	assert.NotEmpty(t, styles.Warning.Render("x"))
	assert.NotEmpty(t, styles.Success.Render("x"))
	assert.NotEmpty(t, styles.Failure.Render("x"))
	assert.NotEmpty(t, styles.Banner.Render("x"))
	assert.NotEmpty(t, styles.Bullet.Render("x"))
}

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	text := "test"
	assert.Equal(t, text, styles.Bold.Render(text), "No-color Bold should not add formatting")
	assert.Equal(t, text, styles.Error.Render(text), "No-color Error should not add formatting")
}

func TestIsColorEnabled_AlwaysMode(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf), "always mode should return true")
}

func TestIsColorEnabled_NeverMode(t *testing.T) {
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout), "never mode should return false")
}

func TestIsColorEnabled_AutoMode_NonTTY(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf), "auto mode with non-TTY should return false")
}

func TestIsColorEnabled_AutoMode_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	// Even with a TTY, NO_COLOR should disable colors
	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout), "auto mode with NO_COLOR set should return false")
}

func TestIsColorEnabled_DefaultsToAuto(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("", &buf), "empty mode with non-TTY should return false")
	assert.False(t, pretty.IsColorEnabled("unknown", &buf), "unknown mode with non-TTY should return false")
}

func TestReportFormatting_NoColor(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "banner", got: styles.FormatBanner(), want: strings.Repeat("=", 60)},
		{name: "title", got: styles.FormatTitle(), want: "GUIDELINE VALIDATION REPORT"},
		{name: "file", got: styles.FormatFileLine("docs/guide.md"), want: "File: docs/guide.md"},
		{name: "errors header", got: styles.FormatErrorsHeader(), want: "❌ ERRORS:"},
		{name: "warnings header", got: styles.FormatWarningsHeader(), want: "⚠️  WARNINGS:"},
		{name: "bullet", got: styles.FormatBullet("Missing required section: Cards"), want: "  • Missing required section: Cards"},
		{name: "all passed", got: styles.FormatAllPassed(), want: "✅ All validation checks passed!"},
		{name: "pass", got: styles.FormatStatus(true), want: "Status: PASS"},
		{name: "fail", got: styles.FormatStatus(false), want: "Status: FAIL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
