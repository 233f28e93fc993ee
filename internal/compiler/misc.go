package compiler

import (
	"strconv"
	"strings"
)

var cursors = map[string]bool{
	"auto": true, "default": true, "pointer": true, "wait": true, "text": true,
	"move": true, "help": true, "not-allowed": true, "none": true,
	"progress": true, "cell": true, "crosshair": true, "grab": true, "grabbing": true,
	"zoom-in": true, "zoom-out": true, "col-resize": true, "row-resize": true,
}

// parseInteractivity handles cursor, selection, pointer events, resize,
// scroll behavior and related utilities.
func parseInteractivity(theme *Theme, b BaseUtility, rest string) (ParseResult, error) {
	prefix := matchedPrefix(b.Name, rest)

	switch b.Name {
	case "resize":
		return ParseResult{Decls: []Declaration{decl("resize", "both")}}, nil
	case "resize-none":
		return ParseResult{Decls: []Declaration{decl("resize", "none")}}, nil
	case "resize-x":
		return ParseResult{Decls: []Declaration{decl("resize", "horizontal")}}, nil
	case "resize-y":
		return ParseResult{Decls: []Declaration{decl("resize", "vertical")}}, nil
	case "appearance-none":
		return ParseResult{Decls: []Declaration{decl("appearance", "none")}}, nil
	}

	switch prefix {
	case "cursor-":
		if cursors[rest] {
			return ParseResult{Decls: []Declaration{decl("cursor", rest)}}, nil
		}
		if v, ok := arbitraryValue(rest); ok {
			return ParseResult{Decls: []Declaration{decl("cursor", v)}}, nil
		}
		return ParseResult{}, invalidValue("unknown cursor " + strconv.Quote(rest))

	case "select-":
		switch rest {
		case "none", "text", "all", "auto":
			return ParseResult{Decls: []Declaration{decl("user-select", rest)}}, nil
		}
		return ParseResult{}, invalidValue("unknown user-select value " + strconv.Quote(rest))

	case "pointer-events-":
		switch rest {
		case "none", "auto":
			return ParseResult{Decls: []Declaration{decl("pointer-events", rest)}}, nil
		}
		return ParseResult{}, invalidValue("unknown pointer-events value " + strconv.Quote(rest))

	case "scroll-":
		switch rest {
		case "auto", "smooth":
			return ParseResult{Decls: []Declaration{decl("scroll-behavior", rest)}}, nil
		}
		if v, ok := strings.CutPrefix(rest, "m-"); ok {
			if sv, ok := theme.lookupSpacing(v); ok {
				return ParseResult{Decls: []Declaration{decl("scroll-margin", negate(b, sv))}}, nil
			}
		}
		if v, ok := strings.CutPrefix(rest, "p-"); ok {
			if sv, ok := theme.lookupSpacing(v); ok {
				return ParseResult{Decls: []Declaration{decl("scroll-padding", sv)}}, nil
			}
		}
		return ParseResult{}, invalidValue("unknown scroll utility " + strconv.Quote(rest))

	case "will-change-":
		switch rest {
		case "auto", "scroll", "contents", "transform":
			v := rest
			if v == "scroll" {
				v = "scroll-position"
			}
			return ParseResult{Decls: []Declaration{decl("will-change", v)}}, nil
		}
		return ParseResult{}, invalidValue("unknown will-change value " + strconv.Quote(rest))

	case "touch-":
		switch rest {
		case "auto", "none", "manipulation", "pan-x", "pan-y":
			return ParseResult{Decls: []Declaration{decl("touch-action", rest)}}, nil
		}
		return ParseResult{}, invalidValue("unknown touch-action value " + strconv.Quote(rest))
	}

	return ParseResult{}, invalidValue("unhandled interactivity utility " + strconv.Quote(b.Name))
}

// parseSVG handles fill and stroke utilities.
func parseSVG(theme *Theme, b BaseUtility, rest string) (ParseResult, error) {
	prefix := matchedPrefix(b.Name, rest)

	switch prefix {
	case "fill-":
		if rest == "none" {
			return ParseResult{Decls: []Declaration{decl("fill", "none")}}, nil
		}
		dcls, err := colorDecl(theme, "fill", rest, b.Opacity)
		if err != nil {
			return ParseResult{}, err
		}
		return ParseResult{Decls: dcls}, nil

	case "stroke-":
		if rest == "none" {
			return ParseResult{Decls: []Declaration{decl("stroke", "none")}}, nil
		}
		if isDigits(rest) {
			return ParseResult{Decls: []Declaration{decl("stroke-width", rest)}}, nil
		}
		dcls, err := colorDecl(theme, "stroke", rest, b.Opacity)
		if err != nil {
			return ParseResult{}, err
		}
		return ParseResult{Decls: dcls}, nil
	}

	return ParseResult{}, invalidValue("unhandled svg utility " + strconv.Quote(b.Name))
}

// parseTables handles table layout, border collapsing/spacing and
// caption side.
func parseTables(theme *Theme, b BaseUtility, rest string) (ParseResult, error) {
	switch b.Name {
	case "table":
		return ParseResult{Decls: []Declaration{decl("display", "table")}}, nil
	case "table-auto", "table-fixed":
		return ParseResult{Decls: []Declaration{decl("table-layout", strings.TrimPrefix(b.Name, "table-"))}}, nil
	case "table-caption", "table-cell", "table-row", "table-column",
		"table-row-group", "table-column-group", "table-header-group", "table-footer-group":
		return ParseResult{Decls: []Declaration{decl("display", b.Name)}}, nil
	case "border-collapse":
		return ParseResult{Decls: []Declaration{decl("border-collapse", "collapse")}}, nil
	case "border-separate":
		return ParseResult{Decls: []Declaration{decl("border-collapse", "separate")}}, nil
	case "caption-top", "caption-bottom":
		return ParseResult{Decls: []Declaration{decl("caption-side", strings.TrimPrefix(b.Name, "caption-"))}}, nil
	}

	if v, ok := strings.CutPrefix(b.Name, "border-spacing-"); ok {
		sv, ok := theme.lookupSpacing(v)
		if !ok {
			return ParseResult{}, invalidValue("no spacing scale entry for " + strconv.Quote(v))
		}
		return ParseResult{Decls: []Declaration{decl("border-spacing", sv)}}, nil
	}

	return ParseResult{}, invalidValue("unhandled table utility " + strconv.Quote(b.Name))
}

// parseAccessibility handles the screen-reader visibility helpers.
func parseAccessibility(theme *Theme, b BaseUtility, rest string) (ParseResult, error) {
	switch b.Name {
	case "sr-only":
		return ParseResult{Decls: decls(
			"position", "absolute",
			"width", "1px",
			"height", "1px",
			"padding", "0",
			"margin", "-1px",
			"overflow", "hidden",
			"clip", "rect(0,0,0,0)",
			"white-space", "nowrap",
			"border-width", "0",
		)}, nil
	case "not-sr-only":
		return ParseResult{Decls: decls(
			"position", "static",
			"width", "auto",
			"height", "auto",
			"padding", "0",
			"margin", "0",
			"overflow", "visible",
			"clip", "auto",
			"white-space", "normal",
		)}, nil
	}
	return ParseResult{}, invalidValue("unhandled accessibility utility " + strconv.Quote(b.Name))
}
