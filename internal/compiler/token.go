package compiler

import (
	"strconv"
	"strings"
)

// Token is one utility class string split into its modifier chain and
// base utility. Instances are ephemeral: built per resolution call and
// never mutated.
type Token struct {
	Raw       string   // literal source text, e.g. "md:hover:bg-blue-500/50"
	Modifiers []string // ["md", "hover"], in left-to-right application order
	Base      BaseUtility
}

// BaseUtility is the token remainder after modifier stripping.
type BaseUtility struct {
	Name      string // full base name including value part, e.g. "bg-blue-500"
	Opacity   string // digits after an unbracketed "/", "" if absent
	Important bool   // leading "!" on the base utility
	Negative  bool   // leading "-" on the base utility
}

// ParseToken splits a raw token into modifiers and base utility.
// Separators inside [...] are not split points, so arbitrary values
// like w-[calc(100%/3)] and variants like [&:nth-child(3)]:underline
// survive intact.
func ParseToken(raw string) (Token, error) {
	if strings.TrimSpace(raw) == "" {
		return Token{}, resolutionError(ErrEmptyToken, raw, "")
	}

	segments := splitOutsideBrackets(raw, ':')
	base := segments[len(segments)-1]
	modifiers := segments[:len(segments)-1]
	if len(modifiers) == 0 {
		modifiers = nil
	}

	for _, m := range modifiers {
		if m == "" {
			return Token{}, resolutionError(ErrUnknownModifier, raw, "empty modifier segment")
		}
	}
	if base == "" {
		return Token{}, resolutionError(ErrEmptyToken, raw, "no base utility after modifiers")
	}

	bu := BaseUtility{Name: base}

	if strings.HasPrefix(bu.Name, "!") {
		bu.Important = true
		bu.Name = bu.Name[1:]
	}
	if strings.HasPrefix(bu.Name, "-") {
		bu.Negative = true
		bu.Name = bu.Name[1:]
	}
	if bu.Name == "" {
		return Token{}, resolutionError(ErrEmptyToken, raw, "no base utility name")
	}

	// Opacity suffix: the part after the last "/" outside brackets.
	// Fractions like w-1/2 keep their slash because the suffix must be
	// consumed by a color utility; the split is undone there if the
	// family does not accept opacity.
	if idx := lastIndexOutsideBrackets(bu.Name, '/'); idx > 0 {
		bu.Opacity = bu.Name[idx+1:]
		bu.Name = bu.Name[:idx]
	}

	return Token{Raw: raw, Modifiers: modifiers, Base: bu}, nil
}

// splitOutsideBrackets splits s on sep, ignoring separators nested in
// square brackets.
func splitOutsideBrackets(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

func lastIndexOutsideBrackets(s string, c byte) int {
	depth := 0
	last := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case c:
			if depth == 0 {
				last = i
			}
		}
	}
	return last
}

// selectorMeta holds the characters that are legal in class attribute
// values but significant in CSS selectors. The backslash is in the set
// so that escaping stays reversible.
const selectorMeta = `:/.[]%!&>~*,'"()=\`

// EscapeClass escapes a literal class attribute value for use in a CSS
// class selector, so that ".{escaped}" matches exactly that attribute
// value in the document.
func EscapeClass(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i := 0; i < len(name); i++ {
		c := name[i]
		// a CSS identifier cannot start with a bare digit, so a leading
		// digit needs a hex escape with its terminating space:
		// "2xl:flex" -> `\32 xl\:flex`
		if i == 0 && c >= '0' && c <= '9' {
			b.WriteString(`\3`)
			b.WriteByte(c)
			b.WriteByte(' ')
			continue
		}
		if strings.IndexByte(selectorMeta, c) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// UnescapeClass reverses EscapeClass. A backslash followed by hex
// digits is a hex escape (up to six digits plus one terminating space);
// any other escaped byte is literal.
func UnescapeClass(sel string) string {
	var b strings.Builder
	b.Grow(len(sel))
	for i := 0; i < len(sel); i++ {
		if sel[i] != '\\' || i+1 >= len(sel) {
			b.WriteByte(sel[i])
			continue
		}
		i++
		if isHexDigit(sel[i]) {
			j := i
			for j < len(sel) && j-i < 6 && isHexDigit(sel[j]) {
				j++
			}
			code, _ := strconv.ParseUint(sel[i:j], 16, 32)
			b.WriteRune(rune(code))
			if j < len(sel) && sel[j] == ' ' {
				j++
			}
			i = j - 1
			continue
		}
		b.WriteByte(sel[i])
	}
	return b.String()
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// arbitraryValue extracts the literal from a bracketed value like
// "[13px]". Returns ok=false if rest is not a well-formed bracket
// expression or the literal is empty.
func arbitraryValue(rest string) (string, bool) {
	if len(rest) < 3 || rest[0] != '[' || rest[len(rest)-1] != ']' {
		return "", false
	}
	inner := rest[1 : len(rest)-1]
	if inner == "" {
		return "", false
	}
	// reject unescaped "]" in the middle, which would have ended the
	// bracket expression early in a real class attribute
	for i := 0; i < len(inner); i++ {
		if inner[i] == ']' && (i == 0 || inner[i-1] != '\\') {
			return "", false
		}
	}
	// underscores stand in for spaces in class attributes
	return strings.ReplaceAll(inner, "_", " "), true
}
