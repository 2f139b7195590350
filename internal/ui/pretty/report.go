package pretty

import "strings"

// BannerWidth is the width of the report's "=" divider lines.
const BannerWidth = 60

// Report section markers.
const (
	ReportTitle    = "GUIDELINE VALIDATION REPORT"
	ErrorsHeader   = "❌ ERRORS:"
	WarningsHeader = "⚠️  WARNINGS:"
	AllPassed      = "✅ All validation checks passed!"
	bulletPrefix   = "  • "
)

// FormatBanner returns the "=" divider line.
func (s *Styles) FormatBanner() string {
	return s.Banner.Render(strings.Repeat("=", BannerWidth))
}

// FormatTitle returns the styled report title.
func (s *Styles) FormatTitle() string {
	return s.Title.Render(ReportTitle)
}

// FormatFileLine returns the "File: path" line.
func (s *Styles) FormatFileLine(path string) string {
	return "File: " + s.FilePath.Render(path)
}

// FormatErrorsHeader returns the header above the error list.
func (s *Styles) FormatErrorsHeader() string {
	return s.Error.Render(ErrorsHeader)
}

// FormatWarningsHeader returns the header above the warning list.
func (s *Styles) FormatWarningsHeader() string {
	return s.Warning.Render(WarningsHeader)
}

// FormatBullet returns one indented list entry.
func (s *Styles) FormatBullet(message string) string {
	return s.Bullet.Render(bulletPrefix) + s.Message.Render(message)
}

// FormatAllPassed returns the clean-run line.
func (s *Styles) FormatAllPassed() string {
	return s.Success.Render(AllPassed)
}

// FormatStatus returns the "Status: PASS|FAIL" line.
func (s *Styles) FormatStatus(passed bool) string {
	if passed {
		return "Status: " + s.Success.Render("PASS")
	}
	return "Status: " + s.Failure.Render("FAIL")
}
