package windcss

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "index.html", `<body>
<div class="p-4 bg-blue-500/50 hover:bg-blue-600">
<span class="md:flex-col dark:text-white">x</span>
</div>
</body>`)

	result, err := Build(Config{
		ScanPaths: []string{filepath.Join(dir, "*.html")},
	})
	require.NoError(t, err)
	require.Empty(t, result.Issues)

	want := `.p-4{padding:1rem}` +
		`.bg-blue-500\/50{background-color:rgba(59,130,246,0.5)}` +
		`.hover\:bg-blue-600:hover{background-color:#2563eb}` +
		`@media (min-width:768px){.md\:flex-col{flex-direction:column}}` +
		`@media (prefers-color-scheme:dark){.dark\:text-white{color:#fff}}`
	assert.Equal(t, want, result.CSS)

	assert.Equal(t, 5, result.TokensFound)
	assert.Equal(t, 5, result.Rules)
	assert.Equal(t, 1, result.Scan.FilesScanned)
}

func TestBuildUnknownUtilityWarns(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "page.html", `<div class="card p-4">`)

	result, err := Build(Config{ScanPaths: []string{filepath.Join(dir, "*.html")}})
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityWarning, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Text, `unknown utility "card"`)

	// the broken token does not block the rest of the build
	assert.Contains(t, result.CSS, ".p-4{padding:1rem}")
}

func TestBuildSafelist(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "page.html", `<div class="p-4">`)

	result, err := Build(Config{
		ScanPaths: []string{filepath.Join(dir, "*.html")},
		Safelist:  []string{"hidden", "sr-only"},
	})
	require.NoError(t, err)

	assert.Contains(t, result.CSS, ".hidden{display:none}")
	assert.Contains(t, result.CSS, ".sr-only{")
}

func TestBuildSafelistErrorIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "page.html", `<div class="p-4">`)

	_, err := Build(Config{
		ScanPaths: []string{filepath.Join(dir, "*.html")},
		Safelist:  []string{"p-abc"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `safelist token "p-abc"`)
}

func TestBuildInclude(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "page.html", `<div class="p-4">`)
	base := writeTestFile(t, dir, "base.css", "/* reset */\nbody { margin: 0; }\n")

	result, err := Build(Config{
		ScanPaths: []string{filepath.Join(dir, "*.html")},
		Include:   []string{base},
	})
	require.NoError(t, err)

	// includes land ahead of generated utilities
	assert.True(t, strings.HasPrefix(result.CSS, "body{margin:0}"), "got %q", result.CSS)
	assert.Contains(t, result.CSS, ".p-4{padding:1rem}")
}

func TestBuildIncludeMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "page.html", `<div class="p-4">`)

	_, err := Build(Config{
		ScanPaths: []string{filepath.Join(dir, "*.html")},
		Include:   []string{filepath.Join(dir, "missing.css")},
	})
	require.Error(t, err)
}

func TestBuildDarkModeClass(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "page.html", `<div class="dark:text-white">`)

	result, err := Build(Config{
		ScanPaths: []string{filepath.Join(dir, "*.html")},
		DarkMode:  DarkModeClass,
	})
	require.NoError(t, err)
	assert.Equal(t, `.dark .dark\:text-white{color:#fff}`, result.CSS)
}

func TestBuildInvalidDarkMode(t *testing.T) {
	_, err := Build(Config{DarkMode: "sometimes"})
	require.Error(t, err)
}
