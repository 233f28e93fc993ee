package compiler

import (
	"strconv"
	"strings"
)

var gradientDirections = map[string]string{
	"t":  "to top",
	"tr": "to top right",
	"r":  "to right",
	"br": "to bottom right",
	"b":  "to bottom",
	"bl": "to bottom left",
	"l":  "to left",
	"tl": "to top left",
}

// gradient stop custom properties, set by from-/via-/to- utilities and
// consumed by bg-gradient-to-*.
const (
	gradientFromVar  = "--wc-gradient-from"
	gradientViaVar   = "--wc-gradient-via"
	gradientToVar    = "--wc-gradient-to"
	gradientStopsVar = "--wc-gradient-stops"
)

// parseBackgrounds handles background color, attachment, size,
// position, repeat, clip and gradients.
func parseBackgrounds(theme *Theme, b BaseUtility, rest string) (ParseResult, error) {
	prefix := matchedPrefix(b.Name, rest)

	switch prefix {
	case "from-":
		dcls, err := colorDecl(theme, gradientFromVar, rest, b.Opacity)
		if err != nil {
			return ParseResult{}, err
		}
		dcls = append(dcls, decl(gradientStopsVar,
			"var("+gradientFromVar+"),var("+gradientToVar+",transparent)"))
		return ParseResult{Decls: dcls}, nil
	case "via-":
		dcls, err := colorDecl(theme, gradientViaVar, rest, b.Opacity)
		if err != nil {
			return ParseResult{}, err
		}
		dcls = append(dcls, decl(gradientStopsVar,
			"var("+gradientFromVar+",transparent),var("+gradientViaVar+"),var("+gradientToVar+",transparent)"))
		return ParseResult{Decls: dcls}, nil
	case "to-":
		dcls, err := colorDecl(theme, gradientToVar, rest, b.Opacity)
		if err != nil {
			return ParseResult{}, err
		}
		return ParseResult{Decls: dcls}, nil
	}

	switch rest {
	case "none":
		return ParseResult{Decls: []Declaration{decl("background-image", "none")}}, nil
	case "fixed", "local", "scroll":
		return ParseResult{Decls: []Declaration{decl("background-attachment", rest)}}, nil
	case "auto", "cover", "contain":
		return ParseResult{Decls: []Declaration{decl("background-size", rest)}}, nil
	case "center", "top", "bottom", "left", "right",
		"left-top", "left-bottom", "right-top", "right-bottom":
		return ParseResult{Decls: []Declaration{decl("background-position", dashToSpace(rest))}}, nil
	case "repeat", "no-repeat", "repeat-x", "repeat-y", "repeat-round", "repeat-space":
		v := rest
		if v == "repeat-round" || v == "repeat-space" {
			v = strings.TrimPrefix(v, "repeat-")
		}
		return ParseResult{Decls: []Declaration{decl("background-repeat", v)}}, nil
	case "clip-border", "clip-padding", "clip-content", "clip-text":
		v := strings.TrimPrefix(rest, "clip-")
		if v != "text" {
			v += "-box"
		}
		return ParseResult{Decls: []Declaration{decl("background-clip", v)}}, nil
	}

	if dir, ok := strings.CutPrefix(rest, "gradient-to-"); ok {
		d, ok := gradientDirections[dir]
		if !ok {
			return ParseResult{}, invalidValue("unknown gradient direction " + strconv.Quote(dir))
		}
		return ParseResult{Decls: []Declaration{decl("background-image",
			"linear-gradient(" + d + ",var(" + gradientStopsVar + "))")}}, nil
	}

	dcls, err := colorDecl(theme, "background-color", rest, b.Opacity)
	if err != nil {
		return ParseResult{}, err
	}
	return ParseResult{Decls: dcls}, nil
}
