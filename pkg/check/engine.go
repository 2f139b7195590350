package check

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/uiguide/pkg/config"
	"github.com/yaklabco/uiguide/pkg/guide"
)

// Engine runs the enabled rules against one document at a time.
// It holds no per-run state and is safe for concurrent use.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry

	// Config selects the catalog and enabled rules.
	Config *config.Config
}

// NewEngine creates a new Engine. A nil cfg uses the defaults.
func NewEngine(registry *Registry, cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Engine{
		Registry: registry,
		Config:   cfg,
	}
}

// ValidateFile loads and validates the document at path.
//
// A document that cannot be loaded is not an error: the returned result
// holds exactly that load failure and no rules run. The error return is
// reserved for cancellation and internal rule failures.
func (e *Engine) ValidateFile(ctx context.Context, path string) (*guide.Result, error) {
	doc, err := guide.Load(ctx, path)
	if err != nil {
		var loadErr *guide.LoadError
		if errors.As(err, &loadErr) && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			return guide.LoadFailure(path, loadErr), nil
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return e.Validate(ctx, doc)
}

// Validate runs every enabled rule in ID order and aggregates the findings.
func (e *Engine) Validate(ctx context.Context, doc *guide.Document) (*guide.Result, error) {
	catalog := guide.CatalogFromConfig(e.Config)
	result := guide.NewResult(doc.Path())

	for _, rule := range e.Registry.Enabled(e.Config) {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("validation cancelled: %w", ctx.Err())
		default:
		}

		findings, err := rule.Apply(NewRuleContext(ctx, doc, catalog))
		if err != nil {
			return result, fmt.Errorf("rule %s: %w", rule.ID(), err)
		}

		for _, finding := range findings {
			result.Add(finding)
		}
	}

	result.Components = doc.MatchHeadings(catalog.Components(), guide.ComponentDepth)

	// Frontmatter metadata is informational only.
	if meta, err := doc.ParseMeta(); err == nil {
		result.Meta = meta
	}

	return result, nil
}
