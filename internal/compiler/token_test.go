package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		modifiers []string
		base      BaseUtility
	}{
		{
			name: "plain utility",
			raw:  "p-4",
			base: BaseUtility{Name: "p-4"},
		},
		{
			name:      "single modifier",
			raw:       "hover:bg-blue-600",
			modifiers: []string{"hover"},
			base:      BaseUtility{Name: "bg-blue-600"},
		},
		{
			name:      "stacked modifiers keep order",
			raw:       "md:hover:scale-105",
			modifiers: []string{"md", "hover"},
			base:      BaseUtility{Name: "scale-105"},
		},
		{
			name: "opacity suffix",
			raw:  "bg-blue-500/50",
			base: BaseUtility{Name: "bg-blue-500", Opacity: "50"},
		},
		{
			name: "fraction splits provisionally",
			raw:  "w-1/2",
			base: BaseUtility{Name: "w-1", Opacity: "2"},
		},
		{
			name: "important",
			raw:  "!p-4",
			base: BaseUtility{Name: "p-4", Important: true},
		},
		{
			name: "negative",
			raw:  "-mt-2",
			base: BaseUtility{Name: "mt-2", Negative: true},
		},
		{
			name: "important then negative",
			raw:  "!-mt-2",
			base: BaseUtility{Name: "mt-2", Important: true, Negative: true},
		},
		{
			name: "colon inside brackets is not a split point",
			raw:  "bg-[url(https://x.test/a.png)]",
			base: BaseUtility{Name: "bg-[url(https://x.test/a.png)]"},
		},
		{
			name: "slash inside brackets is not an opacity suffix",
			raw:  "w-[calc(100%/3)]",
			base: BaseUtility{Name: "w-[calc(100%/3)]"},
		},
		{
			name:      "arbitrary variant with pseudo",
			raw:       "[&:nth-child(3)]:underline",
			modifiers: []string{"[&:nth-child(3)]"},
			base:      BaseUtility{Name: "underline"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := ParseToken(tt.raw)
			require.NoError(t, err)
			require.Equal(t, tt.raw, tok.Raw)
			require.Equal(t, tt.modifiers, tok.Modifiers)
			require.Equal(t, tt.base, tok.Base)
		})
	}
}

func TestParseTokenErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind ErrorKind
	}{
		{name: "empty", raw: "", kind: ErrEmptyToken},
		{name: "whitespace only", raw: "   ", kind: ErrEmptyToken},
		{name: "trailing colon", raw: "hover:", kind: ErrEmptyToken},
		{name: "empty modifier segment", raw: ":p-4", kind: ErrUnknownModifier},
		{name: "bare important", raw: "!", kind: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.raw)
			var e *Error
			require.ErrorAs(t, err, &e)
			require.Equal(t, tt.kind, e.Kind)
		})
	}
}

func TestEscapeClass(t *testing.T) {
	tests := []struct {
		raw     string
		escaped string
	}{
		{"p-4", "p-4"},
		{"hover:bg-blue-600", `hover\:bg-blue-600`},
		{"bg-blue-500/50", `bg-blue-500\/50`},
		{"w-[100px]", `w-\[100px\]`},
		{"p-2.5", `p-2\.5`},
		{"w-1/2", `w-1\/2`},
		{"!p-4", `\!p-4`},
		// a leading digit needs a hex escape or the selector is invalid
		{"2xl:flex", `\32 xl\:flex`},
		{"2xl:grid-cols-4", `\32 xl\:grid-cols-4`},
		// literal backslash must survive the round trip
		{`w-[a\b]`, `w-\[a\\b\]`},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			require.Equal(t, tt.escaped, EscapeClass(tt.raw))
			// escaping must be reversible or the shaker cannot map
			// selectors back to tokens
			require.Equal(t, tt.raw, UnescapeClass(tt.escaped))
		})
	}
}

func TestArbitraryValue(t *testing.T) {
	tests := []struct {
		name  string
		rest  string
		value string
		ok    bool
	}{
		{name: "simple length", rest: "[100px]", value: "100px", ok: true},
		{name: "underscores become spaces", rest: "[1px_solid_red]", value: "1px solid red", ok: true},
		{name: "empty brackets", rest: "[]", ok: false},
		{name: "no brackets", rest: "100px", ok: false},
		{name: "unterminated", rest: "[100px", ok: false},
		{name: "early close", rest: "[a]b]", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := arbitraryValue(tt.rest)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.value, v)
			}
		})
	}
}
