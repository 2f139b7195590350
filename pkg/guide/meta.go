package guide

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// Meta is the subset of frontmatter fields surfaced in reports.
type Meta struct {
	Title       string   `yaml:"title"`
	Version     string   `yaml:"version"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

// ParseMeta extracts YAML frontmatter from the document.
// It returns nil without error when the document has no frontmatter.
func (d *Document) ParseMeta() (*Meta, error) {
	if !strings.HasPrefix(d.text, "---") {
		return nil, nil
	}

	var meta Meta
	if _, err := frontmatter.Parse(bytes.NewReader([]byte(d.text)), &meta); err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return &meta, nil
}
