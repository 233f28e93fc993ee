package compiler

import "strconv"

const (
	defaultTiming   = "cubic-bezier(0.4,0,0.2,1)"
	defaultDuration = "150ms"
	transitionAll   = "color,background-color,border-color,text-decoration-color,fill,stroke,opacity,box-shadow,transform,filter,backdrop-filter"
)

var transitionProps = map[string]string{
	"":          transitionAll,
	"all":       "all",
	"colors":    "color,background-color,border-color,text-decoration-color,fill,stroke",
	"opacity":   "opacity",
	"shadow":    "box-shadow",
	"transform": "transform",
}

var timingFunctions = map[string]string{
	"linear": "linear",
	"in":     "cubic-bezier(0.4,0,1,1)",
	"out":    "cubic-bezier(0,0,0.2,1)",
	"in-out": "cubic-bezier(0.4,0,0.2,1)",
}

var animations = map[string]string{
	"none":   "none",
	"spin":   "spin 1s linear infinite",
	"ping":   "ping 1s cubic-bezier(0,0,0.2,1) infinite",
	"pulse":  "pulse 2s cubic-bezier(0.4,0,0.6,1) infinite",
	"bounce": "bounce 1s infinite",
}

// parseTransitions handles transition property/duration/delay/easing
// and the built-in animations.
func parseTransitions(theme *Theme, b BaseUtility, rest string) (ParseResult, error) {
	prefix := matchedPrefix(b.Name, rest)
	if b.Negative {
		return ParseResult{}, invalidValue("transition utilities cannot be negative")
	}

	switch prefix {
	case "transition", "transition-":
		if rest == "none" {
			return ParseResult{Decls: []Declaration{decl("transition-property", "none")}}, nil
		}
		props, ok := transitionProps[rest]
		if !ok {
			return ParseResult{}, invalidValue("unknown transition group " + strconv.Quote(rest))
		}
		return ParseResult{Decls: decls(
			"transition-property", props,
			"transition-timing-function", defaultTiming,
			"transition-duration", defaultDuration,
		)}, nil

	case "duration-", "delay-":
		prop := "transition-duration"
		if prefix == "delay-" {
			prop = "transition-delay"
		}
		if v, ok := arbitraryValue(rest); ok {
			return ParseResult{Decls: []Declaration{decl(prop, v)}}, nil
		}
		if !isDigits(rest) {
			return ParseResult{}, invalidValue(prop + " must be numeric, got " + strconv.Quote(rest))
		}
		return ParseResult{Decls: []Declaration{decl(prop, rest + "ms")}}, nil

	case "ease-":
		v, ok := timingFunctions[rest]
		if !ok {
			if v, ok = arbitraryValue(rest); !ok {
				return ParseResult{}, invalidValue("unknown timing function " + strconv.Quote(rest))
			}
		}
		return ParseResult{Decls: []Declaration{decl("transition-timing-function", v)}}, nil

	case "animate-":
		v, ok := animations[rest]
		if !ok {
			if v, ok = arbitraryValue(rest); !ok {
				return ParseResult{}, invalidValue("unknown animation " + strconv.Quote(rest))
			}
		}
		return ParseResult{Decls: []Declaration{decl("animation", v)}}, nil
	}

	return ParseResult{}, invalidValue("unhandled transition utility " + strconv.Quote(b.Name))
}
