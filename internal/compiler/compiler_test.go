package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileSelectors(t *testing.T) {
	tests := []struct {
		token    string
		selector string
		wrappers []string
	}{
		{token: "p-4", selector: ".p-4"},
		{token: "hover:bg-blue-600", selector: `.hover\:bg-blue-600:hover`},
		{token: "md:flex-col", selector: `.md\:flex-col`, wrappers: []string{"@media (min-width:768px)"}},
		{token: "bg-blue-500/50", selector: `.bg-blue-500\/50`},
		{
			token:    "md:hover:scale-105",
			selector: `.md\:hover\:scale-105:hover`,
			wrappers: []string{"@media (min-width:768px)"},
		},
		{token: "group-hover:underline", selector: `.group:hover .group-hover\:underline`},
		{token: "peer-checked:block", selector: `.peer:checked~.peer-checked\:block`},
		{token: "space-x-4", selector: `.space-x-4` + childSuffix},
		{token: "hover:space-x-4", selector: `.hover\:space-x-4:hover` + childSuffix},
		{token: "dark:text-white", selector: `.dark\:text-white`, wrappers: []string{"@media (prefers-color-scheme:dark)"}},
		{token: "2xl:flex", selector: `.\32 xl\:flex`, wrappers: []string{"@media (min-width:1536px)"}},
		{token: "w-[100px]", selector: `.w-\[100px\]`},
	}

	c := New(nil)
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			rule, err := c.Compile(tt.token)
			require.NoError(t, err)
			require.Equal(t, tt.selector, rule.Selector)
			require.Equal(t, tt.wrappers, rule.Wrappers)
			require.Equal(t, tt.token, rule.Token)
		})
	}
}

func TestCompileDarkClassStrategy(t *testing.T) {
	theme := DefaultTheme()
	theme.Dark = DarkModeClass
	c := New(theme)

	rule, err := c.Compile("dark:text-white")
	require.NoError(t, err)
	require.Equal(t, `.dark .dark\:text-white`, rule.Selector)
	require.Empty(t, rule.Wrappers)
}

func TestCompileErrorsCarryRawToken(t *testing.T) {
	c := New(nil)

	tests := []struct {
		token string
		kind  ErrorKind
	}{
		{token: "hover:p-9999", kind: ErrInvalidValue},
		{token: "bogus:p-4", kind: ErrUnknownModifier},
		{token: "foo-bar", kind: ErrUnknownUtility},
		{token: "hover:", kind: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			_, err := c.Compile(tt.token)
			var e *Error
			require.ErrorAs(t, err, &e)
			require.Equal(t, tt.kind, e.Kind)
			require.Equal(t, tt.token, e.Token)
		})
	}
}

func TestCompileFailedTokenAddsNoRule(t *testing.T) {
	c := New(nil)
	require.Error(t, c.AddToken("p-9999"))
	require.Zero(t, c.Store().Len())
}

func TestModifierOrderProducesDistinctRules(t *testing.T) {
	c := New(nil)
	r1, err := c.Compile("md:hover:underline")
	require.NoError(t, err)
	r2, err := c.Compile("hover:md:underline")
	require.NoError(t, err)

	// same declarations, but the class attribute text differs so the
	// selectors must differ too
	require.Equal(t, r1.Decls, r2.Decls)
	require.NotEqual(t, r1.Selector, r2.Selector)
}

func TestGenerateScenario(t *testing.T) {
	c := New(nil)
	for _, tok := range []string{"p-4", "bg-blue-500/50", "hover:bg-blue-600", "md:flex-col", "dark:text-white"} {
		require.NoError(t, c.AddToken(tok))
	}

	css, _ := Optimize(c.Store().Rules())

	require.Equal(t,
		".p-4{padding:1rem}"+
			`.bg-blue-500\/50{background-color:rgba(59,130,246,0.5)}`+
			`.hover\:bg-blue-600:hover{background-color:#2563eb}`+
			"@media (min-width:768px){"+
			`.md\:flex-col{flex-direction:column}`+
			"}"+
			"@media (prefers-color-scheme:dark){"+
			`.dark\:text-white{color:#fff}`+
			"}",
		css)
}

func TestGenerateNestsSharedBreakpointBlock(t *testing.T) {
	c := New(nil)
	for _, tok := range []string{"md:flex-col", "md:dark:text-white"} {
		require.NoError(t, c.AddToken(tok))
	}

	rules := c.Store().Rules()
	SortRules(rules, c.Theme())
	css, _ := Optimize(rules)

	require.Equal(t,
		"@media (min-width:768px){"+
			`.md\:flex-col{flex-direction:column}`+
			"@media (prefers-color-scheme:dark){"+
			`.md\:dark\:text-white{color:#fff}`+
			"}}",
		css)
}

func TestGenerateDeterministic(t *testing.T) {
	tokens := []string{"p-4", "m-2", "hover:bg-blue-600", "md:flex-col", "text-lg"}

	build := func() string {
		c := New(nil)
		for _, tok := range tokens {
			require.NoError(t, c.AddToken(tok))
		}
		css, _ := Optimize(c.Store().Rules())
		return css
	}

	first := build()
	for i := 0; i < 5; i++ {
		require.Equal(t, first, build())
	}
}

func TestCompileEscapingRoundTrip(t *testing.T) {
	c := New(nil)
	for _, tok := range []string{"hover:bg-blue-600", "w-[100px]", "bg-blue-500/50", "!p-4"} {
		rule, err := c.Compile(tok)
		require.NoError(t, err)
		// the class part of the selector unescapes back to the token
		require.Contains(t, rule.Selector, "."+EscapeClass(tok))
		require.Equal(t, tok, UnescapeClass(EscapeClass(tok)))
	}
}
