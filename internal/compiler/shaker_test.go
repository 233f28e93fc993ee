package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func addAll(t *testing.T, c *Compiler, tokens ...string) {
	t.Helper()
	for _, tok := range tokens {
		require.NoError(t, c.AddToken(tok))
	}
}

func tokensOf(rules []Rule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.Token
	}
	return out
}

func TestShakeKeepsUsedTokens(t *testing.T) {
	c := New(nil)
	addAll(t, c, "p-4", "m-2", "bg-blue-500")

	stats := NewShaker(c.Store()).Shake([]string{"p-4", "bg-blue-500"})

	require.Equal(t, 2, stats.Kept)
	require.Equal(t, 1, stats.Removed)
	require.Equal(t, 1, stats.RemovedPlain)
	require.Equal(t, []string{"p-4", "bg-blue-500"}, tokensOf(c.Store().Rules()))
}

func TestShakeKeepsBaseOfUsedVariant(t *testing.T) {
	c := New(nil)
	addAll(t, c, "bg-blue-600", "hover:bg-blue-600")

	// markup only mentions the hover form; the base utility survives as
	// its dependency
	stats := NewShaker(c.Store()).Shake([]string{"hover:bg-blue-600"})

	require.Equal(t, 2, stats.Kept)
	require.Zero(t, stats.Removed)
}

func TestShakeRemovalCategories(t *testing.T) {
	c := New(nil)
	addAll(t, c,
		"p-4",               // plain
		"md:flex-col",       // responsive
		"hover:bg-blue-600", // state conditional
		"ring-blue-500",     // custom property only
	)

	stats := NewShaker(c.Store()).Shake(nil)

	require.Equal(t, 4, stats.Removed)
	require.Equal(t, 1, stats.RemovedPlain)
	require.Equal(t, 1, stats.RemovedResponsive)
	require.Equal(t, 1, stats.RemovedStateVariant)
	require.Equal(t, 1, stats.RemovedCustomProperty)
	require.Equal(t, stats.Removed,
		stats.RemovedPlain+stats.RemovedResponsive+stats.RemovedStateVariant+stats.RemovedCustomProperty)
}

func TestShakeCustomPropertyWinsOverVariantCategory(t *testing.T) {
	c := New(nil)
	addAll(t, c, "hover:ring-blue-500")

	stats := NewShaker(c.Store()).Shake(nil)

	require.Equal(t, 1, stats.RemovedCustomProperty)
	require.Zero(t, stats.RemovedStateVariant)
}

func TestShakePhases(t *testing.T) {
	c := New(nil)
	addAll(t, c, "p-4")

	s := NewShaker(c.Store())
	require.Equal(t, ShakeIdle, s.Phase())

	s.Shake([]string{"p-4"})
	require.Equal(t, ShakeDone, s.Phase())
}

func TestShakeUnknownUsedTokensAreHarmless(t *testing.T) {
	c := New(nil)
	addAll(t, c, "p-4")

	// usage scanning can report tokens the compiler never produced
	stats := NewShaker(c.Store()).Shake([]string{"p-4", "btn", "nav__item"})

	require.Equal(t, 1, stats.Kept)
	require.Zero(t, stats.Removed)
}
