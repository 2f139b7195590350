// Package guide defines the guideline document, its section catalog, and
// validation findings.
package guide

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/uiguide/pkg/fsutil"
)

// Document is the raw text of one guideline file plus its source path.
// It is immutable once loaded.
type Document struct {
	path string
	text string
}

// NewDocument wraps in-memory text as a Document.
func NewDocument(path, text string) *Document {
	return &Document{path: path, text: text}
}

// Path returns the path the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Text returns the raw document content.
func (d *Document) Text() string {
	return d.text
}

// LoadError reports a document that could not be loaded.
type LoadError struct {
	// Path is the requested document path.
	Path string

	// NotFound is true when the path does not exist.
	NotFound bool

	// Err is the underlying read error.
	Err error
}

// Error returns the message shown in the validation report.
func (e *LoadError) Error() string {
	if e.NotFound {
		return "File not found: " + e.Path
	}
	return fmt.Sprintf("File not readable: %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying read error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads the document at path. Any failure is returned as a *LoadError.
func Load(ctx context.Context, path string) (*Document, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, &LoadError{
			Path:     path,
			NotFound: errors.Is(err, fsutil.ErrNotFound),
			Err:      err,
		}
	}

	return NewDocument(path, string(content)), nil
}
