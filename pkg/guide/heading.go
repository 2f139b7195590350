package guide

import (
	"fmt"
	"regexp"
)

// headingPattern matches a line-anchored ATX heading with the given title.
// Matching is case-sensitive and a prefix match on the title text.
func headingPattern(title string, depth DepthRange) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?m)^#{%d,%d}[ \t]*%s`, depth.Min, depth.Max, regexp.QuoteMeta(title)))
}

// HasHeading reports whether the document has a heading for title within depth.
func (d *Document) HasHeading(title string, depth DepthRange) bool {
	return headingPattern(title, depth).MatchString(d.text)
}

// MatchHeadings returns the titles, in catalog order, that appear as headings within depth.
func (d *Document) MatchHeadings(titles []string, depth DepthRange) []string {
	var found []string
	for _, title := range titles {
		if d.HasHeading(title, depth) {
			found = append(found, title)
		}
	}
	return found
}
