package compiler

import (
	"strconv"
	"strings"
)

var blurScale = map[string]string{
	"none": "0",
	"sm":   "4px",
	"":     "8px",
	"md":   "12px",
	"lg":   "16px",
	"xl":   "24px",
	"2xl":  "40px",
	"3xl":  "64px",
}

var percentScales = map[string]map[string]bool{
	"brightness-": {"0": true, "50": true, "75": true, "90": true, "95": true,
		"100": true, "105": true, "110": true, "125": true, "150": true, "200": true},
	"contrast-": {"0": true, "50": true, "75": true, "100": true,
		"125": true, "150": true, "200": true},
	"saturate-": {"0": true, "50": true, "100": true, "150": true, "200": true},
}

// parseFilters handles filter and backdrop-filter utilities. Each
// utility emits a complete filter declaration rather than composing
// through custom properties.
func parseFilters(theme *Theme, b BaseUtility, rest string) (ParseResult, error) {
	prefix := matchedPrefix(b.Name, rest)
	filter := func(fn string) ParseResult {
		return ParseResult{Decls: []Declaration{decl("filter", fn)}}
	}

	switch b.Name {
	case "grayscale":
		return filter("grayscale(100%)"), nil
	case "grayscale-0":
		return filter("grayscale(0)"), nil
	case "invert":
		return filter("invert(100%)"), nil
	case "invert-0":
		return filter("invert(0)"), nil
	case "sepia":
		return filter("sepia(100%)"), nil
	case "sepia-0":
		return filter("sepia(0)"), nil
	}

	switch prefix {
	case "blur", "blur-":
		v, ok := blurScale[rest]
		if !ok {
			if v, ok = arbitraryValue(rest); !ok {
				return ParseResult{}, invalidValue("no blur scale entry for " + strconv.Quote(rest))
			}
		}
		return filter("blur(" + v + ")"), nil

	case "brightness-", "contrast-", "saturate-":
		fn := strings.TrimSuffix(prefix, "-")
		if v, ok := arbitraryValue(rest); ok {
			return filter(fn + "(" + v + ")"), nil
		}
		if !percentScales[prefix][rest] {
			return ParseResult{}, invalidValue("no " + fn + " scale entry for " + strconv.Quote(rest))
		}
		return filter(fn + "(" + rest + "%)"), nil

	case "hue-rotate-":
		if v, ok := arbitraryValue(rest); ok {
			return filter("hue-rotate(" + v + ")"), nil
		}
		if !isDigits(rest) {
			return ParseResult{}, invalidValue("hue-rotate must be numeric, got " + strconv.Quote(rest))
		}
		return filter("hue-rotate(" + negate(b, rest) + "deg)"), nil

	case "backdrop-blur", "backdrop-blur-":
		v, ok := blurScale[rest]
		if !ok {
			if v, ok = arbitraryValue(rest); !ok {
				return ParseResult{}, invalidValue("no blur scale entry for " + strconv.Quote(rest))
			}
		}
		return ParseResult{Decls: []Declaration{decl("backdrop-filter", "blur(" + v + ")")}}, nil
	}

	return ParseResult{}, invalidValue("unhandled filter utility " + strconv.Quote(b.Name))
}
