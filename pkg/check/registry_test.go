package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/uiguide/pkg/check"
	"github.com/yaklabco/uiguide/pkg/config"
	"github.com/yaklabco/uiguide/pkg/guide"
)

// stubRule emits a fixed set of messages at its severity.
type stubRule struct {
	check.BaseRule
	messages []string
	err      error
}

func newStubRule(id, name string, severity config.Severity, messages ...string) *stubRule {
	return &stubRule{
		BaseRule: check.NewBaseRule(id, name, "stub "+name, severity),
		messages: messages,
	}
}

func (r *stubRule) Apply(_ *check.RuleContext) ([]guide.Finding, error) {
	if r.err != nil {
		return nil, r.err
	}
	findings := make([]guide.Finding, 0, len(r.messages))
	for _, msg := range r.messages {
		findings = append(findings, r.Finding(msg))
	}
	return findings, nil
}

func TestRegistry_RulesSortedByID(t *testing.T) {
	registry := check.NewRegistry()
	registry.Register(newStubRule("GV003", "third", config.SeverityError))
	registry.Register(newStubRule("GV001", "first", config.SeverityWarning))
	registry.Register(newStubRule("GV002", "second", config.SeverityError))

	rules := registry.Rules()
	require.Len(t, rules, 3)
	assert.Equal(t, "GV001", rules[0].ID())
	assert.Equal(t, "GV002", rules[1].ID())
	assert.Equal(t, "GV003", rules[2].ID())
}

func TestRegistry_Get(t *testing.T) {
	registry := check.NewRegistry()
	registry.Register(newStubRule("GV001", "frontmatter", config.SeverityWarning))

	tests := []struct {
		name   string
		key    string
		wantOK bool
	}{
		{name: "by id", key: "GV001", wantOK: true},
		{name: "by name", key: "frontmatter", wantOK: true},
		{name: "unknown", key: "GV999", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := registry.Get(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "GV001", rule.ID())
			}
		})
	}
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	registry := check.NewRegistry()
	registry.Register(newStubRule("GV001", "old", config.SeverityWarning))
	registry.Register(newStubRule("GV001", "new", config.SeverityError))

	rules := registry.Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, "new", rules[0].Name())
}

func TestRegistry_Enabled(t *testing.T) {
	registry := check.NewRegistry()
	registry.Register(newStubRule("GV001", "first", config.SeverityWarning))
	registry.Register(newStubRule("GV002", "second", config.SeverityError))

	disabled := false
	cfg := config.NewConfig()
	cfg.Rules["GV001"] = config.RuleConfig{Enabled: &disabled}

	enabled := registry.Enabled(cfg)
	require.Len(t, enabled, 1)
	assert.Equal(t, "GV002", enabled[0].ID())

	// Enabled must not disturb the full rule set.
	assert.Len(t, registry.Rules(), 2)
	assert.Len(t, registry.Enabled(nil), 2)
}

func TestRegistry_RuleInfos(t *testing.T) {
	registry := check.NewRegistry()
	registry.Register(newStubRule("GV002", "second", config.SeverityError))

	infos := registry.RuleInfos()
	require.Len(t, infos, 1)
	assert.Equal(t, config.RuleInfo{
		ID:          "GV002",
		Name:        "second",
		Description: "stub second",
		Severity:    config.SeverityError,
	}, infos[0])
}
