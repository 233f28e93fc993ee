package compiler

import (
	"strconv"
	"strings"
)

// Family identifies one utility parser. The set is closed: routing
// resolves to a Family and dispatch is an exhaustive switch, so every
// parser is independently testable and there is no dynamic registry.
type Family int

const (
	FamilySpacing Family = iota
	FamilySizing
	FamilyTypography
	FamilyLayout
	FamilyFlexGrid
	FamilyBorders
	FamilyBackgrounds
	FamilyEffects
	FamilyFilters
	FamilyTransforms
	FamilyTransitions
	FamilyInteractivity
	FamilySVG
	FamilyTables
	FamilyAccessibility
)

func (f Family) String() string {
	names := [...]string{
		"spacing", "sizing", "typography", "layout", "flexgrid",
		"borders", "backgrounds", "effects", "filters", "transforms",
		"transitions", "interactivity", "svg", "tables", "accessibility",
	}
	if int(f) < len(names) {
		return names[f]
	}
	return "unknown"
}

// Declaration is one CSS property/value pair.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// ParseResult is the output of one utility parser: the declarations
// plus an optional selector suffix (used by child-targeting utilities
// like space-x-* and divide-*) and the producing family for
// diagnostics.
type ParseResult struct {
	Family Family
	Suffix string
	Decls  []Declaration
}

// routeTable maps literal name prefixes to parser families. Patterns
// ending in "-" are open prefixes, the rest are exact keywords.
var routeTable = []struct {
	pattern string
	family  Family
}{
	// spacing
	{"p-", FamilySpacing}, {"px-", FamilySpacing}, {"py-", FamilySpacing},
	{"pt-", FamilySpacing}, {"pr-", FamilySpacing}, {"pb-", FamilySpacing}, {"pl-", FamilySpacing},
	{"m-", FamilySpacing}, {"mx-", FamilySpacing}, {"my-", FamilySpacing},
	{"mt-", FamilySpacing}, {"mr-", FamilySpacing}, {"mb-", FamilySpacing}, {"ml-", FamilySpacing},
	{"space-x-", FamilySpacing}, {"space-y-", FamilySpacing},
	{"gap-", FamilySpacing}, {"gap-x-", FamilySpacing}, {"gap-y-", FamilySpacing},

	// sizing
	{"w-", FamilySizing}, {"h-", FamilySizing}, {"size-", FamilySizing},
	{"min-w-", FamilySizing}, {"max-w-", FamilySizing},
	{"min-h-", FamilySizing}, {"max-h-", FamilySizing},

	// typography
	{"text-", FamilyTypography}, {"font-", FamilyTypography},
	{"leading-", FamilyTypography}, {"tracking-", FamilyTypography},
	{"whitespace-", FamilyTypography}, {"break-", FamilyTypography},
	{"italic", FamilyTypography}, {"not-italic", FamilyTypography},
	{"underline", FamilyTypography}, {"line-through", FamilyTypography},
	{"no-underline", FamilyTypography},
	{"uppercase", FamilyTypography}, {"lowercase", FamilyTypography},
	{"capitalize", FamilyTypography}, {"normal-case", FamilyTypography},
	{"truncate", FamilyTypography}, {"antialiased", FamilyTypography},

	// layout
	{"block", FamilyLayout}, {"inline-block", FamilyLayout}, {"inline", FamilyLayout},
	{"flex", FamilyLayout}, {"inline-flex", FamilyLayout},
	{"grid", FamilyLayout}, {"inline-grid", FamilyLayout},
	{"contents", FamilyLayout}, {"flow-root", FamilyLayout}, {"hidden", FamilyLayout},
	{"static", FamilyLayout}, {"fixed", FamilyLayout}, {"absolute", FamilyLayout},
	{"relative", FamilyLayout}, {"sticky", FamilyLayout},
	{"inset-", FamilyLayout}, {"inset-x-", FamilyLayout}, {"inset-y-", FamilyLayout},
	{"top-", FamilyLayout}, {"right-", FamilyLayout}, {"bottom-", FamilyLayout}, {"left-", FamilyLayout},
	{"z-", FamilyLayout},
	{"overflow-", FamilyLayout}, {"overflow-x-", FamilyLayout}, {"overflow-y-", FamilyLayout},
	{"object-", FamilyLayout},
	{"float-", FamilyLayout}, {"clear-", FamilyLayout},
	{"visible", FamilyLayout}, {"invisible", FamilyLayout},
	{"box-border", FamilyLayout}, {"box-content", FamilyLayout},
	{"container", FamilyLayout},

	// flexbox & grid
	{"flex-", FamilyFlexGrid},
	{"grow", FamilyFlexGrid}, {"grow-0", FamilyFlexGrid},
	{"shrink", FamilyFlexGrid}, {"shrink-0", FamilyFlexGrid},
	{"basis-", FamilyFlexGrid}, {"order-", FamilyFlexGrid},
	{"grid-cols-", FamilyFlexGrid}, {"grid-rows-", FamilyFlexGrid},
	{"col-", FamilyFlexGrid}, {"row-", FamilyFlexGrid},
	{"justify-", FamilyFlexGrid}, {"items-", FamilyFlexGrid},
	{"content-", FamilyFlexGrid}, {"self-", FamilyFlexGrid},
	{"place-", FamilyFlexGrid},

	// borders
	{"border", FamilyBorders}, {"border-", FamilyBorders},
	{"border-t-", FamilyBorders}, {"border-r-", FamilyBorders},
	{"border-b-", FamilyBorders}, {"border-l-", FamilyBorders},
	{"border-t", FamilyBorders}, {"border-r", FamilyBorders},
	{"border-b", FamilyBorders}, {"border-l", FamilyBorders},
	{"rounded", FamilyBorders}, {"rounded-", FamilyBorders},
	{"divide-", FamilyBorders},
	{"outline", FamilyBorders}, {"outline-", FamilyBorders},
	{"ring", FamilyBorders}, {"ring-", FamilyBorders},

	// backgrounds
	{"bg-", FamilyBackgrounds},
	{"from-", FamilyBackgrounds}, {"via-", FamilyBackgrounds}, {"to-", FamilyBackgrounds},

	// effects
	{"shadow", FamilyEffects}, {"shadow-", FamilyEffects},
	{"opacity-", FamilyEffects},
	{"mix-blend-", FamilyEffects},

	// filters
	{"blur", FamilyFilters}, {"blur-", FamilyFilters},
	{"brightness-", FamilyFilters}, {"contrast-", FamilyFilters},
	{"grayscale", FamilyFilters}, {"grayscale-0", FamilyFilters},
	{"invert", FamilyFilters}, {"invert-0", FamilyFilters},
	{"saturate-", FamilyFilters}, {"sepia", FamilyFilters}, {"sepia-0", FamilyFilters},
	{"hue-rotate-", FamilyFilters},
	{"backdrop-blur", FamilyFilters}, {"backdrop-blur-", FamilyFilters},

	// transforms
	{"scale-", FamilyTransforms}, {"scale-x-", FamilyTransforms}, {"scale-y-", FamilyTransforms},
	{"rotate-", FamilyTransforms},
	{"translate-x-", FamilyTransforms}, {"translate-y-", FamilyTransforms},
	{"skew-x-", FamilyTransforms}, {"skew-y-", FamilyTransforms},
	{"origin-", FamilyTransforms},
	{"transform", FamilyTransforms}, {"transform-none", FamilyTransforms},

	// transitions & animation
	{"transition", FamilyTransitions}, {"transition-", FamilyTransitions},
	{"duration-", FamilyTransitions}, {"delay-", FamilyTransitions},
	{"ease-", FamilyTransitions}, {"animate-", FamilyTransitions},

	// interactivity
	{"cursor-", FamilyInteractivity}, {"select-", FamilyInteractivity},
	{"pointer-events-", FamilyInteractivity},
	{"resize", FamilyInteractivity}, {"resize-", FamilyInteractivity},
	{"scroll-", FamilyInteractivity}, {"appearance-none", FamilyInteractivity},
	{"will-change-", FamilyInteractivity}, {"touch-", FamilyInteractivity},

	// svg
	{"fill-", FamilySVG}, {"stroke-", FamilySVG},

	// tables
	{"table", FamilyTables}, {"table-", FamilyTables},
	{"border-collapse", FamilyTables}, {"border-separate", FamilyTables},
	{"border-spacing-", FamilyTables},
	{"caption-top", FamilyTables}, {"caption-bottom", FamilyTables},

	// accessibility
	{"sr-only", FamilyAccessibility}, {"not-sr-only", FamilyAccessibility},
}

var defaultTrie = buildRouteTrie()

func buildRouteTrie() *routeTrie {
	t := newRouteTrie()
	for _, r := range routeTable {
		t.insert(r.pattern, r.family)
	}
	return t
}

// parseBase routes a base utility through the trie and dispatches it
// to its family parser.
func parseBase(theme *Theme, b BaseUtility) (ParseResult, error) {
	family, rest, ok := defaultTrie.route(b.Name)
	if !ok {
		return ParseResult{}, resolutionError(ErrUnknownUtility, b.Name, "")
	}

	var (
		res ParseResult
		err error
	)
	switch family {
	case FamilySpacing:
		res, err = parseSpacing(theme, b, rest)
	case FamilySizing:
		res, err = parseSizing(theme, b, rest)
	case FamilyTypography:
		res, err = parseTypography(theme, b, rest)
	case FamilyLayout:
		res, err = parseLayout(theme, b, rest)
	case FamilyFlexGrid:
		res, err = parseFlexGrid(theme, b, rest)
	case FamilyBorders:
		res, err = parseBorders(theme, b, rest)
	case FamilyBackgrounds:
		res, err = parseBackgrounds(theme, b, rest)
	case FamilyEffects:
		res, err = parseEffects(theme, b, rest)
	case FamilyFilters:
		res, err = parseFilters(theme, b, rest)
	case FamilyTransforms:
		res, err = parseTransforms(theme, b, rest)
	case FamilyTransitions:
		res, err = parseTransitions(theme, b, rest)
	case FamilyInteractivity:
		res, err = parseInteractivity(theme, b, rest)
	case FamilySVG:
		res, err = parseSVG(theme, b, rest)
	case FamilyTables:
		res, err = parseTables(theme, b, rest)
	case FamilyAccessibility:
		res, err = parseAccessibility(theme, b, rest)
	}
	if err != nil {
		return ParseResult{}, err
	}

	res.Family = family
	if b.Important {
		for i := range res.Decls {
			res.Decls[i].Important = true
		}
	}
	return res, nil
}

// matchedPrefix recovers the trie-matched prefix from the base name and
// the unmatched remainder.
func matchedPrefix(name, rest string) string {
	return name[:len(name)-len(rest)]
}

func decl(prop, val string) Declaration {
	return Declaration{Property: prop, Value: val}
}

func decls(pairs ...string) []Declaration {
	out := make([]Declaration, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, decl(pairs[i], pairs[i+1]))
	}
	return out
}

func invalidValue(detail string) error {
	return resolutionError(ErrInvalidValue, "", detail)
}

// fullValue reassembles a value whose "/" was provisionally split off
// as an opacity suffix. Fractions like 1/2 reach non-color parsers this
// way.
func fullValue(b BaseUtility, rest string) string {
	if b.Opacity == "" {
		return rest
	}
	return rest + "/" + b.Opacity
}

// negate prefixes v with "-" for negative utilities. Zero stays zero.
func negate(b BaseUtility, v string) string {
	if !b.Negative || v == "0" || v == "0px" {
		return v
	}
	return "-" + v
}

// fractionPercent converts "1/2" to "50%". Rounded to six decimals
// with trailing zeros trimmed, matching the published convention.
func fractionPercent(v string) (string, bool) {
	num, den, ok := strings.Cut(v, "/")
	if !ok {
		return "", false
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return "", false
	}
	d, err := strconv.Atoi(den)
	if err != nil || d == 0 || n < 0 || n > d {
		return "", false
	}
	pct := float64(n) * 100 / float64(d)
	s := strconv.FormatFloat(pct, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s + "%", true
}

// parseOpacity validates an opacity suffix: an integer in [0,100].
// Returns the CSS alpha value.
func parseOpacity(s string) (string, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 100 {
		return "", invalidValue("opacity must be an integer in [0,100], got " + strconv.Quote(s))
	}
	alpha := strconv.FormatFloat(float64(n)/100, 'f', -1, 64)
	return alpha, nil
}

// hexToRGBA converts a #rgb or #rrggbb color to rgba() with the given
// alpha. Non-hex values (keywords, arbitrary literals) pass through
// unchanged when alpha is empty, and fail otherwise.
func hexToRGBA(hex, alpha string) (string, bool) {
	if !strings.HasPrefix(hex, "#") {
		return "", false
	}
	h := hex[1:]
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return "", false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return "", false
	}
	r, g, b := (v>>16)&0xff, (v>>8)&0xff, v&0xff
	return "rgba(" + strconv.FormatUint(r, 10) + "," + strconv.FormatUint(g, 10) + "," +
		strconv.FormatUint(b, 10) + "," + alpha + ")", true
}

// colorDecl resolves a color value component plus optional opacity
// suffix into a single declaration on prop.
func colorDecl(theme *Theme, prop, value, opacity string) ([]Declaration, error) {
	c, ok := theme.lookupColor(value)
	if !ok {
		return nil, invalidValue("unknown color " + strconv.Quote(value))
	}
	if opacity == "" {
		return []Declaration{decl(prop, c)}, nil
	}
	alpha, err := parseOpacity(opacity)
	if err != nil {
		return nil, err
	}
	rgba, ok := hexToRGBA(c, alpha)
	if !ok {
		return nil, invalidValue("opacity suffix requires a hex color, got " + strconv.Quote(c))
	}
	return []Declaration{decl(prop, rgba)}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
