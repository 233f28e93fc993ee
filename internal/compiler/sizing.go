package compiler

import "strconv"

var maxWidthScale = map[string]string{
	"0":    "0rem",
	"none": "none",
	"xs":   "20rem",
	"sm":   "24rem",
	"md":   "28rem",
	"lg":   "32rem",
	"xl":   "36rem",
	"2xl":  "42rem",
	"3xl":  "48rem",
	"4xl":  "56rem",
	"5xl":  "64rem",
	"6xl":  "72rem",
	"7xl":  "80rem",
	"full": "100%",
	"min":  "min-content",
	"max":  "max-content",
	"fit":  "fit-content",
	"prose": "65ch",
}

// parseSizing handles width, height and their min/max variants.
func parseSizing(theme *Theme, b BaseUtility, rest string) (ParseResult, error) {
	prefix := matchedPrefix(b.Name, rest)
	value := fullValue(b, rest)
	if b.Negative {
		return ParseResult{}, invalidValue("sizing cannot be negative")
	}

	resolve := func(screenValue string) (string, bool) {
		switch value {
		case "screen":
			return screenValue, true
		case "min":
			return "min-content", true
		case "max":
			return "max-content", true
		case "fit":
			return "fit-content", true
		}
		return theme.lookupSpacing(value)
	}

	switch prefix {
	case "w-":
		v, ok := resolve("100vw")
		if !ok {
			return ParseResult{}, invalidValue("no sizing scale entry for " + strconv.Quote(value))
		}
		return ParseResult{Decls: []Declaration{decl("width", v)}}, nil
	case "h-":
		v, ok := resolve("100vh")
		if !ok {
			return ParseResult{}, invalidValue("no sizing scale entry for " + strconv.Quote(value))
		}
		return ParseResult{Decls: []Declaration{decl("height", v)}}, nil
	case "size-":
		v, ok := resolve("")
		if !ok || value == "screen" {
			return ParseResult{}, invalidValue("no sizing scale entry for " + strconv.Quote(value))
		}
		return ParseResult{Decls: decls("width", v, "height", v)}, nil
	case "min-w-":
		v, ok := resolve("100vw")
		if !ok {
			return ParseResult{}, invalidValue("no sizing scale entry for " + strconv.Quote(value))
		}
		return ParseResult{Decls: []Declaration{decl("min-width", v)}}, nil
	case "min-h-":
		v, ok := resolve("100vh")
		if !ok {
			return ParseResult{}, invalidValue("no sizing scale entry for " + strconv.Quote(value))
		}
		return ParseResult{Decls: []Declaration{decl("min-height", v)}}, nil
	case "max-w-":
		if v, ok := maxWidthScale[value]; ok {
			return ParseResult{Decls: []Declaration{decl("max-width", v)}}, nil
		}
		if v, ok := resolve("100vw"); ok {
			return ParseResult{Decls: []Declaration{decl("max-width", v)}}, nil
		}
		return ParseResult{}, invalidValue("no max-width scale entry for " + strconv.Quote(value))
	case "max-h-":
		v, ok := resolve("100vh")
		if !ok {
			return ParseResult{}, invalidValue("no sizing scale entry for " + strconv.Quote(value))
		}
		return ParseResult{Decls: []Declaration{decl("max-height", v)}}, nil
	}

	return ParseResult{}, invalidValue("unhandled sizing utility " + strconv.Quote(b.Name))
}
