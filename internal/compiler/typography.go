package compiler

import (
	"strconv"
	"strings"
)

var fontWeights = map[string]string{
	"thin":       "100",
	"extralight": "200",
	"light":      "300",
	"normal":     "400",
	"medium":     "500",
	"semibold":   "600",
	"bold":       "700",
	"extrabold":  "800",
	"black":      "900",
}

var fontFamilies = map[string]string{
	"sans":  `ui-sans-serif,system-ui,sans-serif,"Apple Color Emoji","Segoe UI Emoji"`,
	"serif": `ui-serif,Georgia,Cambria,"Times New Roman",Times,serif`,
	"mono":  `ui-monospace,SFMono-Regular,Menlo,Monaco,Consolas,monospace`,
}

var lineHeights = map[string]string{
	"none":    "1",
	"tight":   "1.25",
	"snug":    "1.375",
	"normal":  "1.5",
	"relaxed": "1.625",
	"loose":   "2",
}

var letterSpacings = map[string]string{
	"tighter": "-0.05em",
	"tight":   "-0.025em",
	"normal":  "0em",
	"wide":    "0.025em",
	"wider":   "0.05em",
	"widest":  "0.1em",
}

// parseTypography handles text sizing/color/alignment, font weight and
// family, line height, letter spacing, and the decoration keywords.
func parseTypography(theme *Theme, b BaseUtility, rest string) (ParseResult, error) {
	prefix := matchedPrefix(b.Name, rest)

	// bare keyword utilities
	switch b.Name {
	case "italic":
		return ParseResult{Decls: []Declaration{decl("font-style", "italic")}}, nil
	case "not-italic":
		return ParseResult{Decls: []Declaration{decl("font-style", "normal")}}, nil
	case "underline":
		return ParseResult{Decls: []Declaration{decl("text-decoration-line", "underline")}}, nil
	case "line-through":
		return ParseResult{Decls: []Declaration{decl("text-decoration-line", "line-through")}}, nil
	case "no-underline":
		return ParseResult{Decls: []Declaration{decl("text-decoration-line", "none")}}, nil
	case "uppercase", "lowercase", "capitalize":
		return ParseResult{Decls: []Declaration{decl("text-transform", b.Name)}}, nil
	case "normal-case":
		return ParseResult{Decls: []Declaration{decl("text-transform", "none")}}, nil
	case "truncate":
		return ParseResult{Decls: decls(
			"overflow", "hidden",
			"text-overflow", "ellipsis",
			"white-space", "nowrap",
		)}, nil
	case "antialiased":
		return ParseResult{Decls: decls(
			"-webkit-font-smoothing", "antialiased",
			"-moz-osx-font-smoothing", "grayscale",
		)}, nil
	}

	switch prefix {
	case "text-":
		return parseText(theme, b, rest)

	case "font-":
		if w, ok := fontWeights[rest]; ok {
			return ParseResult{Decls: []Declaration{decl("font-weight", w)}}, nil
		}
		if f, ok := fontFamilies[rest]; ok {
			return ParseResult{Decls: []Declaration{decl("font-family", f)}}, nil
		}
		if v, ok := arbitraryValue(rest); ok {
			if isDigits(v) {
				return ParseResult{Decls: []Declaration{decl("font-weight", v)}}, nil
			}
			return ParseResult{Decls: []Declaration{decl("font-family", v)}}, nil
		}
		return ParseResult{}, invalidValue("unknown font utility " + strconv.Quote(rest))

	case "leading-":
		if v, ok := lineHeights[rest]; ok {
			return ParseResult{Decls: []Declaration{decl("line-height", v)}}, nil
		}
		if v, ok := theme.Spacing[rest]; ok {
			return ParseResult{Decls: []Declaration{decl("line-height", v)}}, nil
		}
		if v, ok := arbitraryValue(rest); ok {
			return ParseResult{Decls: []Declaration{decl("line-height", v)}}, nil
		}
		return ParseResult{}, invalidValue("no line-height scale entry for " + strconv.Quote(rest))

	case "tracking-":
		v, ok := letterSpacings[rest]
		if !ok {
			if v, ok = arbitraryValue(rest); !ok {
				return ParseResult{}, invalidValue("no letter-spacing scale entry for " + strconv.Quote(rest))
			}
		}
		return ParseResult{Decls: []Declaration{decl("letter-spacing", negate(b, v))}}, nil

	case "whitespace-":
		switch rest {
		case "normal", "nowrap", "pre", "pre-line", "pre-wrap", "break-spaces":
			return ParseResult{Decls: []Declaration{decl("white-space", rest)}}, nil
		}
		return ParseResult{}, invalidValue("unknown white-space value " + strconv.Quote(rest))

	case "break-":
		switch rest {
		case "normal":
			return ParseResult{Decls: decls("overflow-wrap", "normal", "word-break", "normal")}, nil
		case "words":
			return ParseResult{Decls: []Declaration{decl("overflow-wrap", "break-word")}}, nil
		case "all":
			return ParseResult{Decls: []Declaration{decl("word-break", "break-all")}}, nil
		case "keep":
			return ParseResult{Decls: []Declaration{decl("word-break", "keep-all")}}, nil
		}
		return ParseResult{}, invalidValue("unknown word-break value " + strconv.Quote(rest))
	}

	return ParseResult{}, invalidValue("unhandled typography utility " + strconv.Quote(b.Name))
}

// parseText disambiguates text-* between alignment, size scale, and
// color, in that order.
func parseText(theme *Theme, b BaseUtility, rest string) (ParseResult, error) {
	switch rest {
	case "left", "center", "right", "justify":
		return ParseResult{Decls: []Declaration{decl("text-align", rest)}}, nil
	}

	if fs, ok := theme.FontSizes[rest]; ok {
		return ParseResult{Decls: decls("font-size", fs[0], "line-height", fs[1])}, nil
	}

	if v, ok := arbitraryValue(rest); ok {
		if looksLikeColor(v) {
			dcls, err := colorDecl(theme, "color", rest, b.Opacity)
			if err != nil {
				return ParseResult{}, err
			}
			return ParseResult{Decls: dcls}, nil
		}
		return ParseResult{Decls: []Declaration{decl("font-size", v)}}, nil
	}

	dcls, err := colorDecl(theme, "color", rest, b.Opacity)
	if err != nil {
		return ParseResult{}, err
	}
	return ParseResult{Decls: dcls}, nil
}

func looksLikeColor(v string) bool {
	return strings.HasPrefix(v, "#") ||
		strings.HasPrefix(v, "rgb") ||
		strings.HasPrefix(v, "hsl") ||
		strings.HasPrefix(v, "var(")
}
