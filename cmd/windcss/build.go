package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/windcss"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile utility classes used in source files into a stylesheet",
	Long: `Scan the configured paths for utility class tokens, compile each one,
tree-shake rules no scanned file mentions, and write the minified
stylesheet to the output file.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringSlice("paths", nil, "Glob patterns for source files to scan")
	f.StringP("output", "o", "", "Output file path (default windcss.min.css, \"-\" for stdout)")
	f.String("dark-mode", "", "Dark mode strategy: media|class")
	f.StringSlice("safelist", nil, "Tokens to always include")
	f.StringSlice("include", nil, "Handwritten CSS files to prepend")
	f.Bool("no-shake", false, "Keep rules for tokens the scan no longer mentions")
	f.Bool("strict", false, "Exit 1 on any issue, warnings included (CI mode)")
	f.String("format", "", "Report format: text|json")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (windcss) suffix on issues")
}

func runBuild(_ *cobra.Command, _ []string) error {
	config := buildBuildConfig()

	result, err := windcss.Build(config)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	output := getStringWithFallback("output", "build.output", "windcss.min.css")
	if output == "-" {
		fmt.Print(result.CSS)
	} else if err := os.WriteFile(output, []byte(result.CSS), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		writeReport(result)
	}

	// Exit code logic, soft gate: errors fail the build, warnings only
	// fail under --strict.
	errs, warnings := countIssues(result)
	strict := getBoolWithFallback("strict", "build.strict", false)
	if errs > 0 || (strict && warnings > 0) {
		os.Exit(1)
	}

	return nil
}

// writeReport prints issues and the build summary. Reports go to stderr
// so stdout stays clean when the stylesheet is written there.
func writeReport(result *windcss.BuildResult) {
	format := getStringWithFallback("format", "build.format", "text")
	if format == "json" {
		_ = windcss.WriteJSON(os.Stderr, result)
		return
	}

	useColors := windcss.ShouldUseColors(getBoolWithFallback("color", "color", false))
	reporter := windcss.NewReporter(os.Stderr, windcss.ReportOptions{
		UseColors:       useColors,
		PrintLines:      getBoolWithFallback("print-lines", "build.print-lines", true),
		PrintLinterName: getBoolWithFallback("print-linter-name", "build.print-linter-name", true),
	})
	reporter.PrintIssues(result.Issues)
	reporter.PrintSummary(result)
}

// countIssues tallies the result's issues by severity.
func countIssues(result *windcss.BuildResult) (errs, warnings int) {
	for _, issue := range result.Issues {
		switch issue.Severity {
		case windcss.SeverityError:
			errs++
		case windcss.SeverityWarning:
			warnings++
		}
	}
	return errs, warnings
}
