package compiler

import "strconv"

// childSuffix targets the gap between sibling children, used by the
// space-* and divide-* utilities.
const childSuffix = ">:not([hidden])~:not([hidden])"

var spacingProps = map[string][]string{
	"p-":  {"padding"},
	"px-": {"padding-left", "padding-right"},
	"py-": {"padding-top", "padding-bottom"},
	"pt-": {"padding-top"},
	"pr-": {"padding-right"},
	"pb-": {"padding-bottom"},
	"pl-": {"padding-left"},
	"m-":  {"margin"},
	"mx-": {"margin-left", "margin-right"},
	"my-": {"margin-top", "margin-bottom"},
	"mt-": {"margin-top"},
	"mr-": {"margin-right"},
	"mb-": {"margin-bottom"},
	"ml-": {"margin-left"},
}

// parseSpacing handles padding, margin, inter-child spacing and gap.
func parseSpacing(theme *Theme, b BaseUtility, rest string) (ParseResult, error) {
	prefix := matchedPrefix(b.Name, rest)
	value := fullValue(b, rest)

	if props, ok := spacingProps[prefix]; ok {
		isMargin := prefix[0] == 'm'
		if b.Negative && !isMargin {
			return ParseResult{}, invalidValue("padding cannot be negative")
		}
		if value == "auto" && !isMargin {
			return ParseResult{}, invalidValue("padding cannot be auto")
		}
		v, ok := theme.lookupSpacing(value)
		if !ok {
			return ParseResult{}, invalidValue("no spacing scale entry for " + strconv.Quote(value))
		}
		v = negate(b, v)
		out := make([]Declaration, 0, len(props))
		for _, p := range props {
			out = append(out, decl(p, v))
		}
		return ParseResult{Decls: out}, nil
	}

	switch prefix {
	case "space-x-", "space-y-":
		v, ok := theme.lookupSpacing(value)
		if !ok {
			return ParseResult{}, invalidValue("no spacing scale entry for " + strconv.Quote(value))
		}
		v = negate(b, v)
		prop := "margin-left"
		if prefix == "space-y-" {
			prop = "margin-top"
		}
		return ParseResult{Suffix: childSuffix, Decls: []Declaration{decl(prop, v)}}, nil

	case "gap-", "gap-x-", "gap-y-":
		if b.Negative {
			return ParseResult{}, invalidValue("gap cannot be negative")
		}
		v, ok := theme.lookupSpacing(value)
		if !ok {
			return ParseResult{}, invalidValue("no spacing scale entry for " + strconv.Quote(value))
		}
		switch prefix {
		case "gap-x-":
			return ParseResult{Decls: []Declaration{decl("column-gap", v)}}, nil
		case "gap-y-":
			return ParseResult{Decls: []Declaration{decl("row-gap", v)}}, nil
		}
		return ParseResult{Decls: []Declaration{decl("gap", v)}}, nil
	}

	return ParseResult{}, invalidValue("unhandled spacing utility " + strconv.Quote(b.Name))
}
