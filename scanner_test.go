package windcss

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractTokensFromLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		tokens []string
	}{
		{
			name:   "single token",
			line:   `<div class="p-4">`,
			tokens: []string{"p-4"},
		},
		{
			name:   "multiple tokens",
			line:   `<div class="p-4 bg-blue-500 hover:scale-105">`,
			tokens: []string{"p-4", "bg-blue-500", "hover:scale-105"},
		},
		{
			name:   "single quotes",
			line:   `<div class='flex items-center'>`,
			tokens: []string{"flex", "items-center"},
		},
		{
			name:   "jsx className",
			line:   `<div className="mt-2 text-lg">`,
			tokens: []string{"mt-2", "text-lg"},
		},
		{
			name:   "templ classes call",
			line:   `<div class={ templ.Classes("p-4 rounded") }>`,
			tokens: []string{"p-4", "rounded"},
		},
		{
			name:   "clsx call",
			line:   `cn := clsx("flex gap-2", props.Extra)`,
			tokens: []string{"flex", "gap-2"},
		},
		{
			name:   "arbitrary value survives",
			line:   `<div class="w-[100px] bg-[#1da1f2]">`,
			tokens: []string{"w-[100px]", "bg-[#1da1f2]"},
		},
		{
			name: "comment line skipped",
			line: `// <div class="p-4">`,
		},
		{
			name: "no class attribute",
			line: `<div id="main">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := extractTokensFromLine(tt.line, 1, "test.html")
			got := make([]string, len(refs))
			for i, r := range refs {
				got[i] = r.Token
			}
			if tt.tokens == nil {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tt.tokens, got)
		})
	}
}

func TestFindTokenColumn(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		token   string
		wantCol int
	}{
		{
			name:    "first token",
			line:    `<div class="p-4 m-2">`,
			token:   "p-4",
			wantCol: 13, // position of 'p' in "p-4"
		},
		{
			name:    "second token",
			line:    `<div class="p-4 m-2">`,
			token:   "m-2",
			wantCol: 17,
		},
		{
			name:    "with leading spaces",
			line:    `  <div class="flex">`,
			token:   "flex",
			wantCol: 15, // accounts for leading spaces
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := extractTokensFromLine(tt.line, 1, "test.html")
			for _, r := range refs {
				if r.Token == tt.token {
					require.Equal(t, tt.wantCol, r.Location.Column)
					return
				}
			}
			t.Fatalf("token %q not found in %q", tt.token, tt.line)
		})
	}
}

func TestIsGenerated(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{path: "internal/web/sidebar_templ.go", expected: true},
		{path: "internal/web/sidebar.templ.go", expected: true},
		{path: "dist/styles.min.css", expected: true},
		{path: "internal/api/handlers.go", expected: false},
		{path: "web/index.html", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.expected, isGenerated(tt.path))
		})
	}
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"),
		[]byte(`<body>
<div class="p-4 bg-blue-500">
<span class="hover:underline">x</span>
</div>
</body>`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page_templ.go"),
		[]byte(`w.Write([]byte("<div class=\"should-not-count\">"))`), 0644))

	refs, stats, err := ScanFiles([]string{filepath.Join(dir, "*")})
	require.NoError(t, err)

	require.Equal(t, 2, stats.FilesDiscovered)
	require.Equal(t, 1, stats.FilesScanned)
	require.Equal(t, 1, stats.FilesSkipped)

	tokens := make([]string, len(refs))
	for i, r := range refs {
		tokens[i] = r.Token
	}
	require.Equal(t, []string{"p-4", "bg-blue-500", "hover:underline"}, tokens)

	// positions point into the right lines
	require.Equal(t, 2, refs[0].Location.Line)
	require.Equal(t, 3, refs[2].Location.Line)
}
