package compiler

import "strconv"

var boxShadows = map[string]string{
	"sm":    "0 1px 2px 0 rgba(0,0,0,0.05)",
	"":      "0 1px 3px 0 rgba(0,0,0,0.1),0 1px 2px -1px rgba(0,0,0,0.1)",
	"md":    "0 4px 6px -1px rgba(0,0,0,0.1),0 2px 4px -2px rgba(0,0,0,0.1)",
	"lg":    "0 10px 15px -3px rgba(0,0,0,0.1),0 4px 6px -4px rgba(0,0,0,0.1)",
	"xl":    "0 20px 25px -5px rgba(0,0,0,0.1),0 8px 10px -6px rgba(0,0,0,0.1)",
	"2xl":   "0 25px 50px -12px rgba(0,0,0,0.25)",
	"inner": "inset 0 2px 4px 0 rgba(0,0,0,0.05)",
	"none":  "none",
}

var blendModes = map[string]bool{
	"normal": true, "multiply": true, "screen": true, "overlay": true,
	"darken": true, "lighten": true, "color-dodge": true, "color-burn": true,
	"hard-light": true, "soft-light": true, "difference": true, "exclusion": true,
	"hue": true, "saturation": true, "color": true, "luminosity": true,
}

// parseEffects handles box shadows, element opacity and blend modes.
func parseEffects(theme *Theme, b BaseUtility, rest string) (ParseResult, error) {
	prefix := matchedPrefix(b.Name, rest)
	if b.Negative {
		return ParseResult{}, invalidValue("effect utilities cannot be negative")
	}

	switch prefix {
	case "shadow", "shadow-":
		if v, ok := boxShadows[rest]; ok {
			return ParseResult{Decls: []Declaration{decl("box-shadow", v)}}, nil
		}
		if v, ok := arbitraryValue(rest); ok {
			return ParseResult{Decls: []Declaration{decl("box-shadow", v)}}, nil
		}
		return ParseResult{}, invalidValue("no shadow scale entry for " + strconv.Quote(rest))

	case "opacity-":
		if v, ok := arbitraryValue(rest); ok {
			return ParseResult{Decls: []Declaration{decl("opacity", v)}}, nil
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 || n > 100 || n%5 != 0 {
			return ParseResult{}, invalidValue("no opacity scale entry for " + strconv.Quote(rest))
		}
		v := strconv.FormatFloat(float64(n)/100, 'f', -1, 64)
		return ParseResult{Decls: []Declaration{decl("opacity", v)}}, nil

	case "mix-blend-":
		if !blendModes[rest] {
			return ParseResult{}, invalidValue("unknown blend mode " + strconv.Quote(rest))
		}
		return ParseResult{Decls: []Declaration{decl("mix-blend-mode", rest)}}, nil
	}

	return ParseResult{}, invalidValue("unhandled effect utility " + strconv.Quote(b.Name))
}
