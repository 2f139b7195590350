package check

import (
	"context"

	"github.com/yaklabco/uiguide/pkg/guide"
)

// RuleContext carries the inputs a rule needs for one document.
//
// It stores context.Context as a field because it is a short-lived
// per-invocation parameter object, which keeps Rule down to a single method.
type RuleContext struct {
	// Ctx is the context for cancellation.
	Ctx context.Context

	// Doc is the document under validation.
	Doc *guide.Document

	// Catalog holds the required and component section titles.
	Catalog guide.Catalog
}

// NewRuleContext creates a RuleContext for the given document and catalog.
func NewRuleContext(ctx context.Context, doc *guide.Document, catalog guide.Catalog) *RuleContext {
	return &RuleContext{
		Ctx:     ctx,
		Doc:     doc,
		Catalog: catalog,
	}
}

// Text returns the raw document text, or "" when no document is set.
func (rc *RuleContext) Text() string {
	if rc.Doc == nil {
		return ""
	}
	return rc.Doc.Text()
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}
