package rules

import "github.com/yaklabco/uiguide/pkg/check"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *check.Registry) {
	registry.Register(NewFrontmatterRule())       // GV001
	registry.Register(NewRequiredSectionsRule())  // GV002
	registry.Register(NewComponentSectionsRule()) // GV003
	registry.Register(NewColorPaletteRule())      // GV004
	registry.Register(NewTypographyRule())        // GV005
	registry.Register(NewTablesRule())            // GV006
	registry.Register(NewCodeExamplesRule())      // GV007
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(check.DefaultRegistry)
}
