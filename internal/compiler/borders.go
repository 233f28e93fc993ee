package compiler

import (
	"strconv"
	"strings"
)

var borderSides = map[string][]string{
	"":  {"border-width"},
	"t": {"border-top-width"},
	"r": {"border-right-width"},
	"b": {"border-bottom-width"},
	"l": {"border-left-width"},
	"x": {"border-left-width", "border-right-width"},
	"y": {"border-top-width", "border-bottom-width"},
}

var radiusScale = map[string]string{
	"none": "0px",
	"sm":   "0.125rem",
	"":     "0.25rem",
	"md":   "0.375rem",
	"lg":   "0.5rem",
	"xl":   "0.75rem",
	"2xl":  "1rem",
	"3xl":  "1.5rem",
	"full": "9999px",
}

var radiusCorners = map[string][]string{
	"t":  {"border-top-left-radius", "border-top-right-radius"},
	"r":  {"border-top-right-radius", "border-bottom-right-radius"},
	"b":  {"border-bottom-right-radius", "border-bottom-left-radius"},
	"l":  {"border-top-left-radius", "border-bottom-left-radius"},
	"tl": {"border-top-left-radius"},
	"tr": {"border-top-right-radius"},
	"br": {"border-bottom-right-radius"},
	"bl": {"border-bottom-left-radius"},
}

var borderStyles = map[string]bool{
	"solid": true, "dashed": true, "dotted": true, "double": true, "none": true, "hidden": true,
}

// ringColorVar is the custom property ring width utilities read and
// ring color utilities set.
const ringColorVar = "--wc-ring-color"

// parseBorders handles border width/style/color, radius, divide, ring
// and outline utilities.
func parseBorders(theme *Theme, b BaseUtility, rest string) (ParseResult, error) {
	if b.Negative {
		return ParseResult{}, invalidValue("border utilities cannot be negative")
	}

	switch {
	case b.Name == "border" || strings.HasPrefix(b.Name, "border-"):
		return parseBorder(theme, b)
	case b.Name == "rounded" || strings.HasPrefix(b.Name, "rounded-"):
		return parseRounded(b)
	case strings.HasPrefix(b.Name, "divide-"):
		return parseDivide(theme, b)
	case b.Name == "outline" || strings.HasPrefix(b.Name, "outline-"):
		return parseOutline(theme, b)
	case b.Name == "ring" || strings.HasPrefix(b.Name, "ring-"):
		return parseRing(theme, b)
	}
	return ParseResult{}, invalidValue("unhandled border utility " + strconv.Quote(b.Name))
}

func parseBorder(theme *Theme, b BaseUtility) (ParseResult, error) {
	rest := strings.TrimPrefix(b.Name, "border")
	rest = strings.TrimPrefix(rest, "-")

	// side detection: "", "t", "t-2", "x-4"
	side := ""
	value := rest
	if i := strings.IndexByte(rest, '-'); i == 1 || len(rest) == 1 {
		if _, ok := borderSides[rest[:1]]; ok {
			side = rest[:1]
			if len(rest) > 1 {
				value = rest[2:]
			} else {
				value = ""
			}
		}
	}

	props := borderSides[side]

	if value == "" {
		out := make([]Declaration, 0, len(props))
		for _, p := range props {
			out = append(out, decl(p, "1px"))
		}
		return ParseResult{Decls: out}, nil
	}

	if side == "" && borderStyles[value] {
		return ParseResult{Decls: []Declaration{decl("border-style", value)}}, nil
	}

	if isDigits(value) {
		switch value {
		case "0", "2", "4", "8":
			out := make([]Declaration, 0, len(props))
			for _, p := range props {
				out = append(out, decl(p, value+"px"))
			}
			return ParseResult{Decls: out}, nil
		}
		return ParseResult{}, invalidValue("no border-width scale entry for " + strconv.Quote(value))
	}

	if v, ok := arbitraryValue(value); ok && !looksLikeColor(v) {
		out := make([]Declaration, 0, len(props))
		for _, p := range props {
			out = append(out, decl(p, v))
		}
		return ParseResult{Decls: out}, nil
	}

	// remaining values are colors
	prop := "border-color"
	if side != "" {
		prop = strings.TrimSuffix(props[0], "-width") + "-color"
		if side == "x" || side == "y" {
			dcls1, err := colorDecl(theme, strings.TrimSuffix(props[0], "-width")+"-color", value, b.Opacity)
			if err != nil {
				return ParseResult{}, err
			}
			dcls2, err := colorDecl(theme, strings.TrimSuffix(props[1], "-width")+"-color", value, b.Opacity)
			if err != nil {
				return ParseResult{}, err
			}
			return ParseResult{Decls: append(dcls1, dcls2...)}, nil
		}
	}
	dcls, err := colorDecl(theme, prop, value, b.Opacity)
	if err != nil {
		return ParseResult{}, err
	}
	return ParseResult{Decls: dcls}, nil
}

func parseRounded(b BaseUtility) (ParseResult, error) {
	rest := strings.TrimPrefix(b.Name, "rounded")
	rest = strings.TrimPrefix(rest, "-")

	corner := ""
	size := rest
	if i := strings.IndexByte(rest, '-'); i > 0 {
		if _, ok := radiusCorners[rest[:i]]; ok {
			corner = rest[:i]
			size = rest[i+1:]
		}
	} else if _, ok := radiusCorners[rest]; ok {
		corner = rest
		size = ""
	}

	v, ok := radiusScale[size]
	if !ok {
		if v, ok = arbitraryValue(size); !ok {
			return ParseResult{}, invalidValue("no border-radius scale entry for " + strconv.Quote(size))
		}
	}

	if corner == "" {
		return ParseResult{Decls: []Declaration{decl("border-radius", v)}}, nil
	}
	props := radiusCorners[corner]
	out := make([]Declaration, 0, len(props))
	for _, p := range props {
		out = append(out, decl(p, v))
	}
	return ParseResult{Decls: out}, nil
}

func parseDivide(theme *Theme, b BaseUtility) (ParseResult, error) {
	rest := strings.TrimPrefix(b.Name, "divide-")

	axisWidth := func(axis, width string) ParseResult {
		prop := "border-left-width"
		if axis == "y" {
			prop = "border-top-width"
		}
		return ParseResult{Suffix: childSuffix, Decls: []Declaration{decl(prop, width)}}
	}

	switch rest {
	case "x", "y":
		return axisWidth(rest, "1px"), nil
	}
	if axis, width, ok := strings.Cut(rest, "-"); ok && (axis == "x" || axis == "y") {
		if isDigits(width) {
			return axisWidth(axis, width+"px"), nil
		}
		return ParseResult{}, invalidValue("divide width must be numeric, got " + strconv.Quote(width))
	}
	if borderStyles[rest] {
		return ParseResult{Suffix: childSuffix, Decls: []Declaration{decl("border-style", rest)}}, nil
	}

	dcls, err := colorDecl(theme, "border-color", rest, b.Opacity)
	if err != nil {
		return ParseResult{}, err
	}
	return ParseResult{Suffix: childSuffix, Decls: dcls}, nil
}

func parseOutline(theme *Theme, b BaseUtility) (ParseResult, error) {
	if b.Name == "outline" {
		return ParseResult{Decls: []Declaration{decl("outline-style", "solid")}}, nil
	}
	rest := strings.TrimPrefix(b.Name, "outline-")

	switch rest {
	case "none":
		return ParseResult{Decls: decls(
			"outline", "2px solid transparent",
			"outline-offset", "2px",
		)}, nil
	case "dashed", "dotted", "double":
		return ParseResult{Decls: []Declaration{decl("outline-style", rest)}}, nil
	}
	if isDigits(rest) {
		return ParseResult{Decls: []Declaration{decl("outline-width", rest + "px")}}, nil
	}
	if v, ok := strings.CutPrefix(rest, "offset-"); ok {
		if !isDigits(v) {
			return ParseResult{}, invalidValue("outline offset must be numeric, got " + strconv.Quote(v))
		}
		return ParseResult{Decls: []Declaration{decl("outline-offset", v + "px")}}, nil
	}
	dcls, err := colorDecl(theme, "outline-color", rest, b.Opacity)
	if err != nil {
		return ParseResult{}, err
	}
	return ParseResult{Decls: dcls}, nil
}

func parseRing(theme *Theme, b BaseUtility) (ParseResult, error) {
	ringShadow := func(width string) []Declaration {
		return []Declaration{decl("box-shadow",
			"0 0 0 "+width+" var("+ringColorVar+",rgba(59,130,246,0.5))")}
	}

	if b.Name == "ring" {
		return ParseResult{Decls: ringShadow("3px")}, nil
	}
	rest := strings.TrimPrefix(b.Name, "ring-")

	if isDigits(rest) {
		return ParseResult{Decls: ringShadow(rest + "px")}, nil
	}
	if rest == "inset" {
		return ParseResult{Decls: []Declaration{decl("box-shadow",
			"inset 0 0 0 3px var(" + ringColorVar + ",rgba(59,130,246,0.5))")}}, nil
	}

	dcls, err := colorDecl(theme, ringColorVar, rest, b.Opacity)
	if err != nil {
		return ParseResult{}, err
	}
	return ParseResult{Decls: dcls}, nil
}
