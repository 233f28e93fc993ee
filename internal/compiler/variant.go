package compiler

import (
	"strconv"
	"strings"
)

// pseudoClasses maps state modifier names to selector suffixes.
var pseudoClasses = map[string]string{
	"hover":             ":hover",
	"focus":             ":focus",
	"focus-within":      ":focus-within",
	"focus-visible":     ":focus-visible",
	"active":            ":active",
	"visited":           ":visited",
	"target":            ":target",
	"first":             ":first-child",
	"last":              ":last-child",
	"only":              ":only-child",
	"odd":               ":nth-child(odd)",
	"even":              ":nth-child(even)",
	"first-of-type":     ":first-of-type",
	"last-of-type":      ":last-of-type",
	"empty":             ":empty",
	"disabled":          ":disabled",
	"enabled":           ":enabled",
	"checked":           ":checked",
	"indeterminate":     ":indeterminate",
	"default":           ":default",
	"required":          ":required",
	"valid":             ":valid",
	"invalid":           ":invalid",
	"in-range":          ":in-range",
	"out-of-range":      ":out-of-range",
	"placeholder-shown": ":placeholder-shown",
	"autofill":          ":autofill",
	"read-only":         ":read-only",
}

// pseudoElements maps element modifier names to ::-suffixes.
var pseudoElements = map[string]string{
	"before":      "::before",
	"after":       "::after",
	"placeholder": "::placeholder",
	"selection":   "::selection",
	"marker":      "::marker",
	"file":        "::file-selector-button",
	"backdrop":    "::backdrop",
}

// variantEffect is one modifier's contribution to the final rule:
// either a selector rewrite (prefix/suffix) or an enclosing wrapper.
type variantEffect struct {
	prefix  string // ancestor/sibling selector text, e.g. ".group:hover "
	suffix  string // pseudo or attribute suffix, e.g. ":hover"
	wrapper string // @media/@container/@supports condition
}

// resolveModifier classifies one modifier segment. Unknown segments are
// an error: silently dropping a modifier would change the generated
// CSS semantics with no signal.
func resolveModifier(theme *Theme, mod string) (variantEffect, error) {
	// responsive breakpoints enclose the rule in a media query
	if bp, ok := theme.Breakpoints[mod]; ok {
		return variantEffect{wrapper: "@media (min-width:" + bp + ")"}, nil
	}

	// container query breakpoints: @md, @lg, @[30rem]
	if strings.HasPrefix(mod, "@") {
		name := mod[1:]
		if bp, ok := theme.Breakpoints[name]; ok {
			return variantEffect{wrapper: "@container (min-width:" + bp + ")"}, nil
		}
		if v, ok := arbitraryValue(name); ok {
			return variantEffect{wrapper: "@container (min-width:" + v + ")"}, nil
		}
		return variantEffect{}, resolutionError(ErrUnknownModifier, mod, "unknown container breakpoint")
	}

	switch mod {
	case "dark":
		if theme.Dark == DarkModeClass {
			return variantEffect{prefix: ".dark "}, nil
		}
		return variantEffect{wrapper: "@media (prefers-color-scheme:dark)"}, nil
	case "print":
		return variantEffect{wrapper: "@media print"}, nil
	case "motion-reduce":
		return variantEffect{wrapper: "@media (prefers-reduced-motion:reduce)"}, nil
	case "motion-safe":
		return variantEffect{wrapper: "@media (prefers-reduced-motion:no-preference)"}, nil
	case "rtl":
		return variantEffect{prefix: `[dir="rtl"] `}, nil
	case "ltr":
		return variantEffect{prefix: `[dir="ltr"] `}, nil
	}

	if s, ok := pseudoClasses[mod]; ok {
		return variantEffect{suffix: s}, nil
	}
	if s, ok := pseudoElements[mod]; ok {
		return variantEffect{suffix: s}, nil
	}

	// group-hover etc: rewrite against a marked ancestor
	if state, ok := strings.CutPrefix(mod, "group-"); ok {
		s, ok := pseudoClasses[state]
		if !ok {
			return variantEffect{}, resolutionError(ErrUnknownModifier, mod, "unknown group state "+strconv.Quote(state))
		}
		return variantEffect{prefix: "." + theme.GroupClass + s + " "}, nil
	}
	// peer-checked etc: rewrite against a marked preceding sibling
	if state, ok := strings.CutPrefix(mod, "peer-"); ok {
		s, ok := pseudoClasses[state]
		if !ok {
			return variantEffect{}, resolutionError(ErrUnknownModifier, mod, "unknown peer state "+strconv.Quote(state))
		}
		return variantEffect{prefix: "." + theme.PeerClass + s + "~"}, nil
	}

	// aria-checked / aria-[expanded=false]
	if rest, ok := strings.CutPrefix(mod, "aria-"); ok {
		if v, ok := arbitraryValue(rest); ok {
			return variantEffect{suffix: "[aria-" + v + "]"}, nil
		}
		return variantEffect{suffix: `[aria-` + rest + `="true"]`}, nil
	}
	// data-[state=open]
	if rest, ok := strings.CutPrefix(mod, "data-"); ok {
		if v, ok := arbitraryValue(rest); ok {
			return variantEffect{suffix: "[data-" + v + "]"}, nil
		}
		return variantEffect{}, resolutionError(ErrUnknownModifier, mod, "data variants require a bracketed predicate")
	}
	// supports-[display:grid]
	if rest, ok := strings.CutPrefix(mod, "supports-"); ok {
		if v, ok := arbitraryValue(rest); ok {
			return variantEffect{wrapper: "@supports (" + v + ")"}, nil
		}
		return variantEffect{}, resolutionError(ErrUnknownModifier, mod, "supports variants require a bracketed condition")
	}
	// min-[900px] arbitrary breakpoints
	if rest, ok := strings.CutPrefix(mod, "min-"); ok {
		if v, ok := arbitraryValue(rest); ok {
			return variantEffect{wrapper: "@media (min-width:" + v + ")"}, nil
		}
	}
	if rest, ok := strings.CutPrefix(mod, "max-"); ok {
		if v, ok := arbitraryValue(rest); ok {
			return variantEffect{wrapper: "@media (max-width:" + v + ")"}, nil
		}
	}

	// arbitrary selector variants: [&:nth-child(3)] wraps the inner
	// selector where & stands, [.sidebar] scopes under an ancestor
	if v, ok := arbitraryValue(mod); ok {
		if rest, ok := strings.CutPrefix(v, "&"); ok {
			return variantEffect{suffix: rest}, nil
		}
		return variantEffect{prefix: v + " "}, nil
	}

	return variantEffect{}, resolutionError(ErrUnknownModifier, mod, "")
}

// resolveChain applies a modifier chain in left-to-right order.
// Selector-affecting modifiers accumulate onto the selector and
// context-affecting modifiers push wrappers, so stacked combinations
// like md:dark:hover: compose the same way no matter how deep.
func resolveChain(theme *Theme, modifiers []string) (prefixes, suffixes, wrappers []string, err error) {
	for _, mod := range modifiers {
		eff, err := resolveModifier(theme, mod)
		if err != nil {
			return nil, nil, nil, err
		}
		if eff.wrapper != "" {
			wrappers = append(wrappers, eff.wrapper)
		}
		if eff.prefix != "" {
			// later prefixes bind closer to the element
			prefixes = append([]string{eff.prefix}, prefixes...)
		}
		if eff.suffix != "" {
			suffixes = append(suffixes, eff.suffix)
		}
	}
	return prefixes, suffixes, wrappers, nil
}
