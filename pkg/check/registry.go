package check

import (
	"cmp"
	"slices"
	"sync"

	"github.com/yaklabco/uiguide/pkg/config"
)

// Registry holds all registered validation rules.
type Registry struct {
	mu     sync.RWMutex
	byID   map[string]Rule
	byName map[string]Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]Rule),
		byName: make(map[string]Rule),
	}
}

// Register adds a rule to the registry.
// If a rule with the same ID already exists, it is replaced.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[rule.ID()] = rule
	r.byName[rule.Name()] = rule
}

// Get retrieves a rule by ID, falling back to name.
func (r *Registry) Get(key string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rule, ok := r.byID[key]; ok {
		return rule, true
	}
	if rule, ok := r.byName[key]; ok {
		return rule, true
	}
	return nil, false
}

// Rules returns all registered rules sorted by ID, which is their run order.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, 0, len(r.byID))
	for _, rule := range r.byID {
		result = append(result, rule)
	}

	slices.SortFunc(result, func(a, b Rule) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	return result
}

// Enabled returns the rules to run under cfg, in run order.
func (r *Registry) Enabled(cfg *config.Config) []Rule {
	rules := r.Rules()
	enabled := rules[:0]
	for _, rule := range rules {
		if cfg.RuleEnabled(rule.ID()) {
			enabled = append(enabled, rule)
		}
	}
	return enabled
}

// RuleInfos returns rule metadata for config templates.
func (r *Registry) RuleInfos() []config.RuleInfo {
	rules := r.Rules()
	infos := make([]config.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, config.RuleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Severity:    rule.Severity(),
		})
	}
	return infos
}

// DefaultRegistry is the global registry for built-in rules.
// Rules register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()

//nolint:gochecknoinits // Wires the template extension point to the default registry.
func init() {
	config.DefaultRuleInfoProvider = DefaultRegistry.RuleInfos
}
