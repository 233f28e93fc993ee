package windcss

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngineDarkMode(t *testing.T) {
	for _, strategy := range []string{"", DarkModeMedia, DarkModeClass} {
		_, err := NewEngine(strategy)
		require.NoError(t, err, "strategy %q", strategy)
	}

	_, err := NewEngine("auto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dark mode strategy")
}

func TestEngineAddTokens(t *testing.T) {
	engine, err := NewEngine(DarkModeMedia)
	require.NoError(t, err)

	errs := engine.AddTokens([]string{"p-4", "flex", "p-abc"})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "invalid value")

	assert.Equal(t, 2, engine.RuleCount())
	assert.Equal(t, 3, engine.TokenCount())
}

func TestEngineUnknownUtilityIsWarning(t *testing.T) {
	engine, err := NewEngine(DarkModeMedia)
	require.NoError(t, err)

	issues := engine.AddReferences([]TokenReference{
		{
			Token:       "card",
			Location:    FileLocation{File: "index.html", Line: 4, Column: 13},
			LineContent: `<div class="card p-4">`,
		},
	})
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Equal(t, "index.html", issues[0].Pos.Filename)
	assert.Equal(t, 4, issues[0].Pos.Line)
	assert.Equal(t, 13, issues[0].Pos.Column)
	assert.Contains(t, issues[0].Text, `unknown utility "card"`)
}

func TestEngineGenerate(t *testing.T) {
	engine, err := NewEngine(DarkModeMedia)
	require.NoError(t, err)

	errs := engine.AddTokens([]string{"p-4", "hover:bg-blue-600", "md:flex-col"})
	require.Empty(t, errs)

	css, stats := engine.Generate()
	assert.Contains(t, css, ".p-4{padding:1rem}")
	assert.Contains(t, css, `.hover\:bg-blue-600:hover{background-color:#2563eb}`)
	assert.Contains(t, css, `@media (min-width:768px){.md\:flex-col{flex-direction:column}}`)
	assert.Equal(t, 3, stats.RulesOut)
	assert.Equal(t, len(css), stats.OutputBytes)
}

func TestEngineGenerateIsRepeatable(t *testing.T) {
	engine, err := NewEngine(DarkModeMedia)
	require.NoError(t, err)
	require.Empty(t, engine.AddTokens([]string{"p-4", "m-2"}))

	first, _ := engine.Generate()
	second, _ := engine.Generate()
	assert.Equal(t, first, second)
}

func TestEngineDarkModeClass(t *testing.T) {
	engine, err := NewEngine(DarkModeClass)
	require.NoError(t, err)
	require.Empty(t, engine.AddTokens([]string{"dark:text-white"}))

	css, _ := engine.Generate()
	assert.Contains(t, css, `.dark .dark\:text-white{color:#fff}`)
	assert.NotContains(t, css, "prefers-color-scheme")
}

func TestEngineDeduplicates(t *testing.T) {
	engine, err := NewEngine(DarkModeMedia)
	require.NoError(t, err)
	require.Empty(t, engine.AddTokens([]string{"p-4", "p-4", "p-4"}))

	assert.Equal(t, 1, engine.RuleCount())
	assert.Equal(t, 3, engine.TokenCount())

	css, _ := engine.Generate()
	assert.Equal(t, 1, strings.Count(css, ".p-4{"))
}

// AddReferences compiles concurrently but the output must not depend on
// scheduling. Repeated runs over the same reference order produce
// byte-identical stylesheets.
func TestEngineDeterministicOrder(t *testing.T) {
	tokens := []string{
		"p-4", "m-2", "flex", "items-center", "justify-between",
		"bg-blue-500", "text-white", "rounded-lg", "shadow-md",
		"hover:bg-blue-600", "md:flex-col", "gap-4", "w-full",
	}
	refs := make([]TokenReference, len(tokens))
	for i, tok := range tokens {
		refs[i] = TokenReference{Token: tok}
	}

	var baseline string
	for run := 0; run < 5; run++ {
		engine, err := NewEngine(DarkModeMedia)
		require.NoError(t, err)
		require.Empty(t, engine.AddReferences(refs))

		css, _ := engine.Generate()
		if run == 0 {
			baseline = css
			continue
		}
		require.Equal(t, baseline, css, "run %d diverged", run)
	}
}

func TestEngineAddCSS(t *testing.T) {
	engine, err := NewEngine(DarkModeMedia)
	require.NoError(t, err)

	engine.AddCSS("/* reset */\nbody { margin: 0; }\n")
	require.Empty(t, engine.AddTokens([]string{"p-4"}))

	css, stats := engine.Generate()
	assert.Equal(t, "body{margin:0}.p-4{padding:1rem}", css)
	assert.Equal(t, len(css), stats.OutputBytes)
}

func TestEngineShake(t *testing.T) {
	engine, err := NewEngine(DarkModeMedia)
	require.NoError(t, err)
	require.Empty(t, engine.AddTokens([]string{"p-4", "m-2", "hover:underline"}))

	stats := engine.Shake([]string{"p-4"})
	assert.Equal(t, 1, stats.Kept)
	assert.Equal(t, 2, stats.Removed)
	assert.Equal(t, 1, stats.RemovedStateVariant)
	assert.Equal(t, 1, stats.RemovedPlain)

	css, _ := engine.Generate()
	assert.Contains(t, css, ".p-4{")
	assert.NotContains(t, css, ".m-2{")
}
