package windcss

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the machine-readable export schema for a build.
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level counts.
type JSONSummary struct {
	TokensFound  int `json:"tokens_found"`
	Rules        int `json:"rules"`
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats carries the shaker and optimizer counters.
type JSONStats struct {
	Shake    ShakeStats    `json:"shake"`
	Optimize OptimizeStats `json:"optimize"`
}

// JSONIssue is a single diagnostic.
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// WriteJSON writes the build result as indented JSON.
func WriteJSON(w io.Writer, result *BuildResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func buildJSONOutput(result *BuildResult) JSONOutput {
	errs, warnings := countSeverities(result.Issues)

	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TokensFound:  result.TokensFound,
			Rules:        result.Rules,
			TotalIssues:  len(result.Issues),
			Errors:       errs,
			Warnings:     warnings,
			FilesScanned: result.Scan.FilesScanned,
		},
		Stats: JSONStats{
			Shake:    result.Shake,
			Optimize: result.Optimize,
		},
		Issues: jsonIssues,
	}
}
