// Package windcss compiles utility class tokens into a deduplicated,
// minified stylesheet. Source files are scanned for class attributes,
// each token (bg-blue-500, hover:scale-105, md:flex-col, w-[100px]) is
// resolved against the built-in theme, and the resulting rules are
// tree-shaken and optimized into compact CSS.
//
// # Library use
//
// Compile a token list directly:
//
//	engine, err := windcss.NewEngine(windcss.DarkModeMedia)
//	errs := engine.AddTokens([]string{"p-4", "hover:bg-blue-600"})
//	css, stats := engine.Generate()
//
// # Building from source files
//
// Scan a project and write the stylesheet in one call:
//
//	result, err := windcss.Build(windcss.Config{
//		ScanPaths: []string{"web/**/*.html", "internal/**/*.templ"},
//		DarkMode:  windcss.DarkModeClass,
//	})
//
// # CLI tool
//
// A CLI wraps the same pipeline. Install with:
//
//	go install github.com/yacobolo/windcss/cmd/windcss@latest
package windcss

import (
	"fmt"
	"os"
)

// Config controls one Build run.
type Config struct {
	// ScanPaths are glob patterns (doublestar syntax) for the source
	// files to scan for class usage.
	ScanPaths []string

	// DarkMode selects how dark: variants compile: "media" wraps them
	// in a prefers-color-scheme query, "class" scopes them under a
	// .dark ancestor. Empty means media.
	DarkMode string

	// Safelist tokens are always compiled, whether or not any scanned
	// file mentions them.
	Safelist []string

	// Include lists handwritten CSS files minified and prepended to
	// the generated utilities.
	Include []string

	// NoShake keeps rules for tokens the current scan no longer
	// mentions. Only meaningful for engines reused across scans; a
	// fresh Build generates exactly what it scanned either way.
	NoShake bool
}

// BuildResult is everything a Build run produced.
type BuildResult struct {
	CSS    string
	Issues []Issue

	TokensFound int // token references seen, including repeats
	Rules       int // live rules after shaking

	Scan     ScanStats
	Shake    ShakeStats
	Optimize OptimizeStats
}

// Build runs the whole pipeline: scan, compile, shake, optimize.
func Build(config Config) (*BuildResult, error) {
	engine, err := NewEngine(config.DarkMode)
	if err != nil {
		return nil, err
	}

	refs, scanStats, err := ScanFiles(config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	result := &BuildResult{Scan: scanStats}

	engine.AddReferences(refs)
	for _, tok := range config.Safelist {
		// safelist failures are configuration mistakes, not source
		// diagnostics
		if err := engine.AddToken(tok); err != nil {
			return nil, fmt.Errorf("safelist token %q: %w", tok, err)
		}
	}

	if !config.NoShake {
		used := make([]string, 0, len(refs)+len(config.Safelist))
		for _, ref := range refs {
			used = append(used, ref.Token)
		}
		used = append(used, config.Safelist...)
		result.Shake = engine.Shake(used)
	}

	for _, path := range config.Include {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("include %s: %w", path, err)
		}
		engine.AddCSS(string(content))
	}

	css, optStats := engine.Generate()

	result.CSS = css
	result.Issues = engine.Issues()
	result.TokensFound = engine.TokenCount()
	result.Rules = engine.RuleCount()
	result.Optimize = optStats
	return result, nil
}
