package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveModifier(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		mod  string
		want variantEffect
	}{
		{mod: "hover", want: variantEffect{suffix: ":hover"}},
		{mod: "focus-visible", want: variantEffect{suffix: ":focus-visible"}},
		{mod: "first", want: variantEffect{suffix: ":first-child"}},
		{mod: "odd", want: variantEffect{suffix: ":nth-child(odd)"}},
		{mod: "before", want: variantEffect{suffix: "::before"}},
		{mod: "md", want: variantEffect{wrapper: "@media (min-width:768px)"}},
		{mod: "2xl", want: variantEffect{wrapper: "@media (min-width:1536px)"}},
		{mod: "print", want: variantEffect{wrapper: "@media print"}},
		{mod: "motion-reduce", want: variantEffect{wrapper: "@media (prefers-reduced-motion:reduce)"}},
		{mod: "dark", want: variantEffect{wrapper: "@media (prefers-color-scheme:dark)"}},
		{mod: "group-hover", want: variantEffect{prefix: ".group:hover "}},
		{mod: "peer-checked", want: variantEffect{prefix: ".peer:checked~"}},
		{mod: "rtl", want: variantEffect{prefix: `[dir="rtl"] `}},
		{mod: "aria-expanded", want: variantEffect{suffix: `[aria-expanded="true"]`}},
		{mod: "aria-[pressed=false]", want: variantEffect{suffix: "[aria-pressed=false]"}},
		{mod: "data-[state=open]", want: variantEffect{suffix: "[data-state=open]"}},
		{mod: "supports-[display:grid]", want: variantEffect{wrapper: "@supports (display:grid)"}},
		{mod: "min-[900px]", want: variantEffect{wrapper: "@media (min-width:900px)"}},
		{mod: "max-[600px]", want: variantEffect{wrapper: "@media (max-width:600px)"}},
		{mod: "@md", want: variantEffect{wrapper: "@container (min-width:768px)"}},
		{mod: "@[30rem]", want: variantEffect{wrapper: "@container (min-width:30rem)"}},
		{mod: "[&:nth-child(3)]", want: variantEffect{suffix: ":nth-child(3)"}},
		{mod: "[.sidebar]", want: variantEffect{prefix: ".sidebar "}},
	}

	for _, tt := range tests {
		t.Run(tt.mod, func(t *testing.T) {
			got, err := resolveModifier(theme, tt.mod)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolveModifierDarkClassStrategy(t *testing.T) {
	theme := DefaultTheme()
	theme.Dark = DarkModeClass

	got, err := resolveModifier(theme, "dark")
	require.NoError(t, err)
	require.Equal(t, variantEffect{prefix: ".dark "}, got)
}

func TestResolveModifierUnknown(t *testing.T) {
	theme := DefaultTheme()

	for _, mod := range []string{"hovver", "group-bounce", "peer-sideways", "data-open", "@huge"} {
		t.Run(mod, func(t *testing.T) {
			_, err := resolveModifier(theme, mod)
			var e *Error
			require.ErrorAs(t, err, &e)
			require.Equal(t, ErrUnknownModifier, e.Kind)
		})
	}
}

func TestResolveChainOrder(t *testing.T) {
	theme := DefaultTheme()

	prefixes, suffixes, wrappers, err := resolveChain(theme, []string{"md", "dark", "group-hover", "hover", "before"})
	require.NoError(t, err)
	require.Equal(t, []string{".group:hover "}, prefixes)
	require.Equal(t, []string{":hover", "::before"}, suffixes)
	require.Equal(t, []string{"@media (min-width:768px)", "@media (prefers-color-scheme:dark)"}, wrappers)
}

func TestResolveChainStopsAtFirstUnknown(t *testing.T) {
	theme := DefaultTheme()

	_, _, _, err := resolveChain(theme, []string{"md", "bogus", "hover"})
	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, ErrUnknownModifier, e.Kind)
	require.Equal(t, "bogus", e.Token)
}
