package windcss

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// TokenReference is one utility class token found in source code.
type TokenReference struct {
	Token       string       // individual token: "hover:bg-blue-600"
	Location    FileLocation // where it was found
	LineContent string       // the full line for context
}

// FileLocation tracks where a token was found.
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column, exact start of the token
	Text   string // full line content for source display
}

// ScanStats tracks file scanning statistics.
type ScanStats struct {
	FilesDiscovered int // total files found by glob patterns
	FilesScanned    int // files actually scanned after filtering
	FilesSkipped    int // files skipped due to filtering
}

// attrPatterns match the contexts where class lists appear. Each
// pattern captures the full attribute value, which is then split into
// individual tokens.
var attrPatterns = []*regexp.Regexp{
	regexp.MustCompile(`class="([^"]+)"`),
	regexp.MustCompile(`class='([^']+)'`),
	regexp.MustCompile(`className="([^"]+)"`),
	regexp.MustCompile(`className=\{\s*"([^"]+)"`),
	regexp.MustCompile(`class=\{\s*"([^"]+)"`),
	regexp.MustCompile(`templ\.Classes\(\s*"([^"]+)"`),
	regexp.MustCompile(`templ\.KV\(\s*"([^"]+)"`),
	regexp.MustCompile(`clsx\(\s*"([^"]+)"`),
}

var (
	// comment lines contribute no class usage
	commentPattern = regexp.MustCompile(`^\s*(//|/\*|\*|#|<!--)`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isGenerated reports whether a file is tool-generated output that
// should not count as class usage. Covers templ output and our own
// emitted stylesheets.
func isGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go") ||
		strings.HasSuffix(path, ".min.css")
}

// loadGitIgnore loads the .gitignore file once. Gracefully degrades if
// no .gitignore exists.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile applies two filter layers: a fast suffix check for
// generated files, then .gitignore for paths inside the project.
// Absolute paths are outside the project and ignore the gitignore.
func shouldSkipFile(path string) bool {
	if isGenerated(path) {
		return true
	}
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// ScanFiles scans files matching the glob patterns for utility class
// tokens. Files that fail to open are skipped rather than aborting the
// whole scan.
func ScanFiles(patterns []string) ([]TokenReference, ScanStats, error) {
	files, stats, err := expandGlobPatterns(patterns)
	if err != nil {
		return nil, stats, err
	}

	var allRefs []TokenReference
	for _, file := range files {
		refs, err := scanFile(file)
		if err != nil {
			continue
		}
		allRefs = append(allRefs, refs...)
	}

	return allRefs, stats, nil
}

// expandGlobPatterns expands glob patterns to deduplicated file paths,
// tracking discovery statistics.
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			seen[match] = true
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single file line by line.
func scanFile(filePath string) ([]TokenReference, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []TokenReference
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		refs = append(refs, extractTokensFromLine(scanner.Text(), lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return refs, nil
}

// extractTokensFromLine extracts every individual token from the class
// attribute values on one line.
func extractTokensFromLine(line string, lineNum int, file string) []TokenReference {
	if commentPattern.MatchString(line) {
		return nil
	}

	var refs []TokenReference
	trimmed := strings.TrimSpace(line)

	for _, pattern := range attrPatterns {
		matches := pattern.FindAllStringSubmatchIndex(line, -1)
		for _, match := range matches {
			if len(match) < 4 {
				continue
			}
			value := line[match[2]:match[3]]
			valueStart := match[2]

			for _, tok := range strings.Fields(value) {
				col := findTokenColumn(line, valueStart, tok)
				refs = append(refs, TokenReference{
					Token: tok,
					Location: FileLocation{
						File:   file,
						Line:   lineNum,
						Column: col,
						Text:   trimmed,
					},
					LineContent: trimmed,
				})
			}
		}
	}

	return refs
}

// findTokenColumn locates the 1-based column of a token, searching from
// the start of the attribute value so identical prefixes elsewhere on
// the line cannot mislead it.
func findTokenColumn(line string, valueStart int, token string) int {
	idx := strings.Index(line[valueStart:], token)
	if idx == -1 {
		return valueStart + 1
	}
	return valueStart + idx + 1
}

// GetRelativePath returns a path relative to the current working
// directory, falling back to the input when that fails.
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}
	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}
	return rel
}
