package windcss

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// ReportOptions configures the human-readable reporter.
type ReportOptions struct {
	UseColors       bool
	PrintLines      bool // show source lines under each issue
	PrintLinterName bool // show the (windcss) suffix
}

// Reporter formats build results for terminals.
type Reporter struct {
	w    io.Writer
	opts ReportOptions
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, opts ReportOptions) *Reporter {
	return &Reporter{w: w, opts: opts}
}

// PrintIssues outputs diagnostics in golangci-lint format, sorted by
// file, line, then column.
func (r *Reporter) PrintIssues(issues []Issue) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue as file:line:col: message (linter).
func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.opts.PrintLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.opts.UseColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.opts.UseColors))

	if r.opts.PrintLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.opts.UseColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the
// column. Tabs in the prefix are mirrored so alignment survives tab
// expansion.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}
	return padding.String() + "^"
}

// PrintSummary outputs the build summary: scan counts, rule counts and
// what shaking and optimization removed.
func (r *Reporter) PrintSummary(result *BuildResult) {
	errs, warnings := countSeverities(result.Issues)

	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "%s %d files scanned (%d skipped), %d token references, %d rules, %d bytes\n",
		RenderStyle(StyleGreen, "✓", r.opts.UseColors),
		result.Scan.FilesScanned, result.Scan.FilesSkipped,
		result.TokensFound, result.Rules, result.Optimize.OutputBytes)

	if result.Shake.Removed > 0 {
		fmt.Fprintf(r.w, "  shaken: %d rules (%d responsive, %d state, %d custom-property, %d plain)\n",
			result.Shake.Removed, result.Shake.RemovedResponsive,
			result.Shake.RemovedStateVariant, result.Shake.RemovedCustomProperty,
			result.Shake.RemovedPlain)
	}
	if n := result.Optimize.MergedRules + result.Optimize.DuplicateDecls + result.Optimize.NormalizedValues; n > 0 {
		fmt.Fprintf(r.w, "  optimized: %d rules merged, %d duplicate declarations, %d values normalized\n",
			result.Optimize.MergedRules, result.Optimize.DuplicateDecls,
			result.Optimize.NormalizedValues)
	}

	if len(result.Issues) == 0 {
		return
	}

	fmt.Fprintf(r.w, "\n%s", pluralizeCount(len(result.Issues), "issue", "issues"))
	switch {
	case errs > 0 && warnings > 0:
		fmt.Fprintf(r.w, " (%s, %s)\n",
			RenderStyle(StyleRed, pluralizeCount(errs, "error", "errors"), r.opts.UseColors),
			RenderStyle(StyleYellow, pluralizeCount(warnings, "warning", "warnings"), r.opts.UseColors))
	case errs > 0:
		fmt.Fprintf(r.w, " (%s)\n",
			RenderStyle(StyleRed, pluralizeCount(errs, "error", "errors"), r.opts.UseColors))
	default:
		fmt.Fprintf(r.w, " (%s)\n",
			RenderStyle(StyleYellow, pluralizeCount(warnings, "warning", "warnings"), r.opts.UseColors))
	}
}

// pluralizeCount returns a formatted string with count and the
// singular or plural form.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
