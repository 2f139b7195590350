package check_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/uiguide/pkg/check"
	"github.com/yaklabco/uiguide/pkg/config"
	"github.com/yaklabco/uiguide/pkg/guide"
)

func stubRegistry(rules ...check.Rule) *check.Registry {
	registry := check.NewRegistry()
	for _, rule := range rules {
		registry.Register(rule)
	}
	return registry
}

func TestEngine_Validate_AggregatesInIDOrder(t *testing.T) {
	registry := stubRegistry(
		newStubRule("GV003", "late-error", config.SeverityError, "e3"),
		newStubRule("GV001", "early-warning", config.SeverityWarning, "w1"),
		newStubRule("GV002", "mid-error", config.SeverityError, "e2a", "e2b"),
		newStubRule("GV004", "late-warning", config.SeverityWarning, "w4"),
	)

	engine := check.NewEngine(registry, nil)
	result, err := engine.Validate(context.Background(), guide.NewDocument("guide.md", "## Buttons\n"))
	require.NoError(t, err)

	assert.Equal(t, "guide.md", result.Path)
	assert.Equal(t, []string{"e2a", "e2b", "e3"}, result.ErrorMessages())
	assert.Equal(t, []string{"w1", "w4"}, result.WarningMessages())
	assert.Equal(t, guide.StatusFail, result.Status())
	assert.Equal(t, []string{"Buttons"}, result.Components)
}

func TestEngine_Validate_WarningsOnlyPass(t *testing.T) {
	registry := stubRegistry(newStubRule("GV001", "warn", config.SeverityWarning, "advice"))

	result, err := check.NewEngine(registry, nil).Validate(context.Background(), guide.NewDocument("g.md", ""))
	require.NoError(t, err)
	assert.Equal(t, guide.StatusPass, result.Status())
	assert.False(t, result.Clean())
}

func TestEngine_Validate_RuleFailure(t *testing.T) {
	broken := newStubRule("GV001", "broken", config.SeverityError)
	broken.err = errors.New("boom")

	_, err := check.NewEngine(stubRegistry(broken), nil).Validate(context.Background(), guide.NewDocument("g.md", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rule GV001")
}

func TestEngine_Validate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	registry := stubRegistry(newStubRule("GV001", "warn", config.SeverityWarning, "advice"))
	_, err := check.NewEngine(registry, nil).Validate(ctx, guide.NewDocument("g.md", ""))
	require.ErrorIs(t, err, context.Canceled)
}

func TestEngine_ValidateFile_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.md")
	registry := stubRegistry(newStubRule("GV001", "warn", config.SeverityWarning, "advice"))

	result, err := check.NewEngine(registry, nil).ValidateFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, guide.StatusFail, result.Status())
	assert.Equal(t, []string{"File not found: " + path}, result.ErrorMessages())
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Components)
}

func TestEngine_ValidateFile_Directory(t *testing.T) {
	dir := t.TempDir()

	result, err := check.NewEngine(stubRegistry(), nil).ValidateFile(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "File not readable: "+dir)
	assert.Empty(t, result.Warnings)
}

func TestEngine_ValidateFile_ReadsDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.md")
	require.NoError(t, os.WriteFile(path, []byte("---\ntitle: Acme\n---\n## Cards\n"), 0o600))

	result, err := check.NewEngine(stubRegistry(), nil).ValidateFile(context.Background(), path)
	require.NoError(t, err)

	assert.True(t, result.Clean())
	assert.Equal(t, []string{"Cards"}, result.Components)
	require.NotNil(t, result.Meta)
	assert.Equal(t, "Acme", result.Meta.Title)
}

func TestEngine_DisabledRuleSkipped(t *testing.T) {
	disabled := false
	cfg := config.NewConfig()
	cfg.Rules["GV002"] = config.RuleConfig{Enabled: &disabled}

	registry := stubRegistry(
		newStubRule("GV001", "warn", config.SeverityWarning, "w"),
		newStubRule("GV002", "err", config.SeverityError, "e"),
	)

	result, err := check.NewEngine(registry, cfg).Validate(context.Background(), guide.NewDocument("g.md", ""))
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
	assert.Equal(t, []string{"w"}, result.WarningMessages())
}
