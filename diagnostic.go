package windcss

import (
	"errors"
	"fmt"

	"github.com/yacobolo/windcss/internal/compiler"
)

// Issue is a single diagnostic in golangci-lint format.
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "windcss"
	Text        string   `json:"Text"`        // `unknown utility "fleex"`
	Severity    string   `json:"Severity"`    // "warning", "error"
	SourceLines []string `json:"SourceLines"` // lines of code with the issue
	Pos         IssuePos `json:"Pos"`         // file location
}

// IssuePos specifies the exact location of an issue.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based, exact start of the token
}

// Severity constants.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

const linterName = "windcss"

// issueFromError converts a compile failure on a scanned token into a
// positioned diagnostic. Unknown utilities are warnings: non-utility
// class names (BEM components, third-party widgets) are normal in real
// markup. Everything else means a token that was clearly meant to be a
// utility is broken, which is an error.
func issueFromError(err error, ref TokenReference) (Issue, bool) {
	var cerr *compiler.Error
	if !errors.As(err, &cerr) {
		return Issue{}, false
	}

	severity := SeverityError
	if cerr.Kind == compiler.ErrUnknownUtility {
		severity = SeverityWarning
	}

	text := fmt.Sprintf("%s %q", cerr.Kind, cerr.Token)
	if cerr.Detail != "" {
		text += ": " + cerr.Detail
	}

	return Issue{
		FromLinter:  linterName,
		Text:        text,
		Severity:    severity,
		SourceLines: []string{ref.LineContent},
		Pos: IssuePos{
			Filename: ref.Location.File,
			Line:     ref.Location.Line,
			Column:   ref.Location.Column,
		},
	}, true
}

// countSeverities tallies issues by severity.
func countSeverities(issues []Issue) (errs, warnings int) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errs++
		case SeverityWarning:
			warnings++
		}
	}
	return errs, warnings
}
