package compiler

import "strconv"

var displayKeywords = map[string]string{
	"block":        "block",
	"inline-block": "inline-block",
	"inline":       "inline",
	"flex":         "flex",
	"inline-flex":  "inline-flex",
	"grid":         "grid",
	"inline-grid":  "inline-grid",
	"contents":     "contents",
	"flow-root":    "flow-root",
	"hidden":       "none",
}

var positionKeywords = map[string]bool{
	"static": true, "fixed": true, "absolute": true, "relative": true, "sticky": true,
}

// parseLayout handles display, position, inset, z-index, overflow,
// object fit/position, float/clear and visibility.
func parseLayout(theme *Theme, b BaseUtility, rest string) (ParseResult, error) {
	prefix := matchedPrefix(b.Name, rest)

	if d, ok := displayKeywords[b.Name]; ok {
		return ParseResult{Decls: []Declaration{decl("display", d)}}, nil
	}
	if positionKeywords[b.Name] {
		return ParseResult{Decls: []Declaration{decl("position", b.Name)}}, nil
	}

	switch b.Name {
	case "visible":
		return ParseResult{Decls: []Declaration{decl("visibility", "visible")}}, nil
	case "invisible":
		return ParseResult{Decls: []Declaration{decl("visibility", "hidden")}}, nil
	case "box-border":
		return ParseResult{Decls: []Declaration{decl("box-sizing", "border-box")}}, nil
	case "box-content":
		return ParseResult{Decls: []Declaration{decl("box-sizing", "content-box")}}, nil
	case "container":
		return ParseResult{Decls: []Declaration{decl("width", "100%")}}, nil
	}

	switch prefix {
	case "inset-", "inset-x-", "inset-y-", "top-", "right-", "bottom-", "left-":
		value := fullValue(b, rest)
		v, ok := theme.lookupSpacing(value)
		if !ok {
			return ParseResult{}, invalidValue("no inset scale entry for " + strconv.Quote(value))
		}
		v = negate(b, v)
		switch prefix {
		case "inset-":
			return ParseResult{Decls: []Declaration{decl("inset", v)}}, nil
		case "inset-x-":
			return ParseResult{Decls: decls("left", v, "right", v)}, nil
		case "inset-y-":
			return ParseResult{Decls: decls("top", v, "bottom", v)}, nil
		}
		prop := prefix[:len(prefix)-1]
		return ParseResult{Decls: []Declaration{decl(prop, v)}}, nil

	case "z-":
		if rest == "auto" {
			return ParseResult{Decls: []Declaration{decl("z-index", "auto")}}, nil
		}
		if v, ok := arbitraryValue(rest); ok {
			return ParseResult{Decls: []Declaration{decl("z-index", v)}}, nil
		}
		if !isDigits(rest) {
			return ParseResult{}, invalidValue("z-index must be numeric, got " + strconv.Quote(rest))
		}
		return ParseResult{Decls: []Declaration{decl("z-index", negate(b, rest))}}, nil

	case "overflow-", "overflow-x-", "overflow-y-":
		switch rest {
		case "auto", "hidden", "clip", "visible", "scroll":
			prop := prefix[:len(prefix)-1]
			return ParseResult{Decls: []Declaration{decl(prop, rest)}}, nil
		}
		return ParseResult{}, invalidValue("unknown overflow value " + strconv.Quote(rest))

	case "object-":
		switch rest {
		case "contain", "cover", "fill", "none", "scale-down":
			return ParseResult{Decls: []Declaration{decl("object-fit", rest)}}, nil
		case "top", "bottom", "center", "left", "right",
			"left-top", "left-bottom", "right-top", "right-bottom":
			return ParseResult{Decls: []Declaration{decl("object-position", dashToSpace(rest))}}, nil
		}
		if v, ok := arbitraryValue(rest); ok {
			return ParseResult{Decls: []Declaration{decl("object-position", v)}}, nil
		}
		return ParseResult{}, invalidValue("unknown object value " + strconv.Quote(rest))

	case "float-":
		switch rest {
		case "left", "right", "none":
			return ParseResult{Decls: []Declaration{decl("float", rest)}}, nil
		}
		return ParseResult{}, invalidValue("unknown float value " + strconv.Quote(rest))

	case "clear-":
		switch rest {
		case "left", "right", "both", "none":
			return ParseResult{Decls: []Declaration{decl("clear", rest)}}, nil
		}
		return ParseResult{}, invalidValue("unknown clear value " + strconv.Quote(rest))
	}

	return ParseResult{}, invalidValue("unhandled layout utility " + strconv.Quote(b.Name))
}

func dashToSpace(s string) string {
	out := []byte(s)
	for i := range out {
		if out[i] == '-' {
			out[i] = ' '
		}
	}
	return string(out)
}
