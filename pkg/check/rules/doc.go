// Package rules provides the built-in guideline checks for uiguide.
//
// Rules run in ID order:
//
//   - GV001: frontmatter - Document should start with a "---" marker (warning)
//   - GV002: required-sections - Every required section has a depth 1-3 heading (error)
//   - GV003: component-sections - At least one component section has a depth 2-4 heading (error)
//   - GV004: color-palette-values - Color Palette content includes hex colors (warning)
//   - GV005: typography-sizes - Typography content includes font sizes (warning)
//   - GV006: token-tables - Design tokens are laid out in a table (warning)
//   - GV007: code-examples - At least one fenced code block is present (warning)
//
// Every rule works on the raw document text. GV004 and GV005 only run their
// content check when the section title text appears anywhere in the document.
package rules
