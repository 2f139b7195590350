package guide

import (
	"slices"

	"github.com/yaklabco/uiguide/pkg/config"
)

// DepthRange bounds the heading levels (count of leading '#') a section may use.
type DepthRange struct {
	Min int
	Max int
}

var (
	// RequiredDepth is the heading range accepted for required sections.
	RequiredDepth = DepthRange{Min: 1, Max: 3}

	// ComponentDepth is the heading range accepted for component sections.
	ComponentDepth = DepthRange{Min: 2, Max: 4}
)

// Catalog holds the two read-only lists of section titles a document is checked against.
type Catalog struct {
	required   []string
	components []string
}

// NewCatalog copies the given titles into a Catalog.
func NewCatalog(required, components []string) Catalog {
	return Catalog{
		required:   slices.Clone(required),
		components: slices.Clone(components),
	}
}

// DefaultCatalog returns the built-in guideline catalog.
func DefaultCatalog() Catalog {
	return NewCatalog(config.DefaultRequiredSections(), config.DefaultComponentSections())
}

// CatalogFromConfig builds a Catalog from configured section lists.
func CatalogFromConfig(cfg *config.Config) Catalog {
	if cfg == nil {
		return DefaultCatalog()
	}
	return NewCatalog(cfg.RequiredSections, cfg.ComponentSections)
}

// Required returns a copy of the required section titles.
func (c Catalog) Required() []string {
	return slices.Clone(c.required)
}

// Components returns a copy of the component section titles.
func (c Catalog) Components() []string {
	return slices.Clone(c.components)
}
