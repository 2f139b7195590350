package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/uiguide/internal/ui/pretty"
	"github.com/yaklabco/uiguide/pkg/guide"
)

// TextReporter formats results as the bannered validation report.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
//
// Errors are listed before warnings, each in the order the rules produced
// them. The all-passed line appears only when both lists are empty.
func (r *TextReporter) Report(_ context.Context, result *guide.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		result = guide.NewResult("")
	}

	fmt.Fprintln(r.bw)
	fmt.Fprintln(r.bw, r.styles.FormatBanner())
	fmt.Fprintln(r.bw, r.styles.FormatTitle())
	fmt.Fprintln(r.bw, r.styles.FormatBanner())
	fmt.Fprintln(r.bw, r.styles.FormatFileLine(result.Path))
	fmt.Fprintln(r.bw)

	if len(result.Errors) > 0 {
		fmt.Fprintln(r.bw, r.styles.FormatErrorsHeader())
		r.writeBullets(result.ErrorMessages())
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(r.bw, r.styles.FormatWarningsHeader())
		r.writeBullets(result.WarningMessages())
	}

	if result.Clean() {
		fmt.Fprintln(r.bw, r.styles.FormatAllPassed())
		fmt.Fprintln(r.bw)
	}

	fmt.Fprintln(r.bw, r.styles.FormatStatus(result.Passed()))
	fmt.Fprintln(r.bw, r.styles.FormatBanner())
	fmt.Fprintln(r.bw)

	return nil
}

func (r *TextReporter) writeBullets(messages []string) {
	for _, msg := range messages {
		fmt.Fprintln(r.bw, r.styles.FormatBullet(msg))
	}
	fmt.Fprintln(r.bw)
}
