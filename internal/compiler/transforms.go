package compiler

import (
	"strconv"
	"strings"
)

var transformOrigins = map[string]bool{
	"center": true, "top": true, "top-right": true, "right": true,
	"bottom-right": true, "bottom": true, "bottom-left": true,
	"left": true, "top-left": true,
}

// parseTransforms handles scale, rotate, translate, skew and
// transform-origin utilities.
func parseTransforms(theme *Theme, b BaseUtility, rest string) (ParseResult, error) {
	prefix := matchedPrefix(b.Name, rest)
	transform := func(fn string) ParseResult {
		return ParseResult{Decls: []Declaration{decl("transform", fn)}}
	}

	switch b.Name {
	case "transform-none":
		return transform("none"), nil
	case "transform":
		// marker utility, establishes no declarations on its own but is
		// accepted for compatibility with composed class lists
		return ParseResult{Decls: []Declaration{}}, nil
	}

	switch prefix {
	case "scale-", "scale-x-", "scale-y-":
		fn := map[string]string{"scale-": "scale", "scale-x-": "scaleX", "scale-y-": "scaleY"}[prefix]
		if v, ok := arbitraryValue(rest); ok {
			return transform(fn + "(" + v + ")"), nil
		}
		if !isDigits(rest) {
			return ParseResult{}, invalidValue("scale must be numeric, got " + strconv.Quote(rest))
		}
		n, _ := strconv.Atoi(rest)
		v := strconv.FormatFloat(float64(n)/100, 'f', -1, 64)
		return transform(fn + "(" + negate(b, v) + ")"), nil

	case "rotate-":
		if v, ok := arbitraryValue(rest); ok {
			return transform("rotate(" + v + ")"), nil
		}
		if !isDigits(rest) {
			return ParseResult{}, invalidValue("rotate must be numeric, got " + strconv.Quote(rest))
		}
		return transform("rotate(" + negate(b, rest) + "deg)"), nil

	case "translate-x-", "translate-y-":
		fn := "translateX"
		if prefix == "translate-y-" {
			fn = "translateY"
		}
		value := fullValue(b, rest)
		v, ok := theme.lookupSpacing(value)
		if !ok {
			return ParseResult{}, invalidValue("no translate scale entry for " + strconv.Quote(value))
		}
		return transform(fn + "(" + negate(b, v) + ")"), nil

	case "skew-x-", "skew-y-":
		fn := "skewX"
		if prefix == "skew-y-" {
			fn = "skewY"
		}
		if v, ok := arbitraryValue(rest); ok {
			return transform(fn + "(" + v + ")"), nil
		}
		if !isDigits(rest) {
			return ParseResult{}, invalidValue("skew must be numeric, got " + strconv.Quote(rest))
		}
		return transform(fn + "(" + negate(b, rest) + "deg)"), nil

	case "origin-":
		if !transformOrigins[rest] {
			return ParseResult{}, invalidValue("unknown transform origin " + strconv.Quote(rest))
		}
		return ParseResult{Decls: []Declaration{decl("transform-origin", strings.ReplaceAll(rest, "-", " "))}}, nil
	}

	return ParseResult{}, invalidValue("unhandled transform utility " + strconv.Quote(b.Name))
}
