package compiler

import (
	"strconv"
	"strings"
)

var justifyContent = map[string]string{
	"start":   "flex-start",
	"end":     "flex-end",
	"center":  "center",
	"between": "space-between",
	"around":  "space-around",
	"evenly":  "space-evenly",
}

var alignItems = map[string]string{
	"start":    "flex-start",
	"end":      "flex-end",
	"center":   "center",
	"baseline": "baseline",
	"stretch":  "stretch",
}

// parseFlexGrid handles flex direction/wrap/sizing, order, the grid
// template and placement utilities, and box alignment.
func parseFlexGrid(theme *Theme, b BaseUtility, rest string) (ParseResult, error) {
	prefix := matchedPrefix(b.Name, rest)

	switch b.Name {
	case "grow":
		return ParseResult{Decls: []Declaration{decl("flex-grow", "1")}}, nil
	case "grow-0":
		return ParseResult{Decls: []Declaration{decl("flex-grow", "0")}}, nil
	case "shrink":
		return ParseResult{Decls: []Declaration{decl("flex-shrink", "1")}}, nil
	case "shrink-0":
		return ParseResult{Decls: []Declaration{decl("flex-shrink", "0")}}, nil
	}

	switch prefix {
	case "flex-":
		switch rest {
		case "row", "row-reverse", "col", "col-reverse":
			v := strings.Replace(rest, "col", "column", 1)
			return ParseResult{Decls: []Declaration{decl("flex-direction", v)}}, nil
		case "wrap", "wrap-reverse", "nowrap":
			return ParseResult{Decls: []Declaration{decl("flex-wrap", rest)}}, nil
		case "1":
			return ParseResult{Decls: []Declaration{decl("flex", "1 1 0%")}}, nil
		case "auto":
			return ParseResult{Decls: []Declaration{decl("flex", "1 1 auto")}}, nil
		case "initial":
			return ParseResult{Decls: []Declaration{decl("flex", "0 1 auto")}}, nil
		case "none":
			return ParseResult{Decls: []Declaration{decl("flex", "none")}}, nil
		}
		if v, ok := arbitraryValue(rest); ok {
			return ParseResult{Decls: []Declaration{decl("flex", v)}}, nil
		}
		return ParseResult{}, invalidValue("unknown flex value " + strconv.Quote(rest))

	case "basis-":
		value := fullValue(b, rest)
		v, ok := theme.lookupSpacing(value)
		if !ok {
			return ParseResult{}, invalidValue("no flex-basis scale entry for " + strconv.Quote(value))
		}
		return ParseResult{Decls: []Declaration{decl("flex-basis", v)}}, nil

	case "order-":
		switch rest {
		case "first":
			return ParseResult{Decls: []Declaration{decl("order", "-9999")}}, nil
		case "last":
			return ParseResult{Decls: []Declaration{decl("order", "9999")}}, nil
		case "none":
			return ParseResult{Decls: []Declaration{decl("order", "0")}}, nil
		}
		if !isDigits(rest) {
			return ParseResult{}, invalidValue("order must be numeric, got " + strconv.Quote(rest))
		}
		return ParseResult{Decls: []Declaration{decl("order", negate(b, rest))}}, nil

	case "grid-cols-", "grid-rows-":
		prop := "grid-template-columns"
		if prefix == "grid-rows-" {
			prop = "grid-template-rows"
		}
		if rest == "none" {
			return ParseResult{Decls: []Declaration{decl(prop, "none")}}, nil
		}
		if v, ok := arbitraryValue(rest); ok {
			return ParseResult{Decls: []Declaration{decl(prop, v)}}, nil
		}
		if !isDigits(rest) {
			return ParseResult{}, invalidValue("grid template count must be numeric, got " + strconv.Quote(rest))
		}
		return ParseResult{Decls: []Declaration{decl(prop, "repeat("+rest+",minmax(0,1fr))")}}, nil

	case "col-", "row-":
		return parseGridPlacement(prefix, rest)

	case "justify-":
		if v, ok := strings.CutPrefix(rest, "items-"); ok {
			return keywordDecl("justify-items", v, "start", "end", "center", "stretch")
		}
		if v, ok := strings.CutPrefix(rest, "self-"); ok {
			return keywordDecl("justify-self", v, "auto", "start", "end", "center", "stretch")
		}
		if v, ok := justifyContent[rest]; ok {
			return ParseResult{Decls: []Declaration{decl("justify-content", v)}}, nil
		}
		return ParseResult{}, invalidValue("unknown justify value " + strconv.Quote(rest))

	case "items-":
		if v, ok := alignItems[rest]; ok {
			return ParseResult{Decls: []Declaration{decl("align-items", v)}}, nil
		}
		return ParseResult{}, invalidValue("unknown align-items value " + strconv.Quote(rest))

	case "content-":
		if v, ok := justifyContent[rest]; ok {
			return ParseResult{Decls: []Declaration{decl("align-content", v)}}, nil
		}
		return ParseResult{}, invalidValue("unknown align-content value " + strconv.Quote(rest))

	case "self-":
		switch rest {
		case "auto", "center", "stretch", "baseline":
			return ParseResult{Decls: []Declaration{decl("align-self", rest)}}, nil
		case "start", "end":
			return ParseResult{Decls: []Declaration{decl("align-self", "flex-"+rest)}}, nil
		}
		return ParseResult{}, invalidValue("unknown align-self value " + strconv.Quote(rest))

	case "place-":
		if v, ok := strings.CutPrefix(rest, "content-"); ok {
			return keywordDecl("place-content", v, "start", "end", "center", "between", "around", "evenly", "stretch")
		}
		if v, ok := strings.CutPrefix(rest, "items-"); ok {
			return keywordDecl("place-items", v, "start", "end", "center", "stretch")
		}
		if v, ok := strings.CutPrefix(rest, "self-"); ok {
			return keywordDecl("place-self", v, "auto", "start", "end", "center", "stretch")
		}
		return ParseResult{}, invalidValue("unknown place value " + strconv.Quote(rest))
	}

	return ParseResult{}, invalidValue("unhandled flex/grid utility " + strconv.Quote(b.Name))
}

func parseGridPlacement(prefix, rest string) (ParseResult, error) {
	axis := "column"
	if prefix == "row-" {
		axis = "row"
	}

	if v, ok := strings.CutPrefix(rest, "span-"); ok {
		if v == "full" {
			return ParseResult{Decls: []Declaration{decl("grid-"+axis, "1 / -1")}}, nil
		}
		if !isDigits(v) {
			return ParseResult{}, invalidValue("grid span must be numeric, got " + strconv.Quote(v))
		}
		return ParseResult{Decls: []Declaration{decl("grid-"+axis, "span "+v+" / span "+v)}}, nil
	}
	if v, ok := strings.CutPrefix(rest, "start-"); ok {
		if v != "auto" && !isDigits(v) {
			return ParseResult{}, invalidValue("grid start must be numeric, got " + strconv.Quote(v))
		}
		return ParseResult{Decls: []Declaration{decl("grid-"+axis+"-start", v)}}, nil
	}
	if v, ok := strings.CutPrefix(rest, "end-"); ok {
		if v != "auto" && !isDigits(v) {
			return ParseResult{}, invalidValue("grid end must be numeric, got " + strconv.Quote(v))
		}
		return ParseResult{Decls: []Declaration{decl("grid-"+axis+"-end", v)}}, nil
	}
	if rest == "auto" {
		return ParseResult{Decls: []Declaration{decl("grid-"+axis, "auto")}}, nil
	}
	return ParseResult{}, invalidValue("unknown grid placement " + strconv.Quote(prefix+rest))
}

func keywordDecl(prop, v string, allowed ...string) (ParseResult, error) {
	for _, a := range allowed {
		if v == a {
			val := v
			switch v {
			case "between", "around", "evenly":
				val = "space-" + v
			}
			return ParseResult{Decls: []Declaration{decl(prop, val)}}, nil
		}
	}
	return ParseResult{}, invalidValue("unknown " + prop + " value " + strconv.Quote(v))
}
