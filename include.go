package windcss

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// MinifyCSS strips comments and collapses whitespace in handwritten
// CSS, so included files match the compact output of the generator.
// It is a token-level rewrite, not a full reformat: declarations and
// selectors pass through untouched apart from spacing.
func MinifyCSS(content string) string {
	var sb strings.Builder
	sb.Grow(len(content))

	lexer := css.NewLexer(parse.NewInputString(content))

	pendingSpace := false
	pendingSemi := false
	lastWordy := false

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			break
		}

		switch tt {
		case css.CommentToken:
			continue
		case css.WhitespaceToken:
			pendingSpace = true
			continue
		case css.SemicolonToken:
			// buffered so the final semicolon before } can be dropped
			pendingSemi = true
			pendingSpace = false
			continue
		}

		if pendingSemi {
			if tt != css.RightBraceToken {
				sb.WriteByte(';')
			}
			pendingSemi = false
			pendingSpace = false
		}

		// whitespace is only significant between two word-like tokens:
		// "margin: 0 auto" needs its inner space, "a { color" does not.
		// The parenthesis case keeps "@media (min-width:...)" intact.
		wordy := isWordy(tt)
		if pendingSpace && lastWordy && (wordy || tt == css.LeftParenthesisToken) {
			sb.WriteByte(' ')
		}
		pendingSpace = false
		lastWordy = wordy

		sb.Write(text)
	}

	return sb.String()
}

// isWordy reports whether dropping adjacent whitespace would fuse the
// token with its neighbor into different CSS.
func isWordy(tt css.TokenType) bool {
	switch tt {
	case css.IdentToken, css.NumberToken, css.DimensionToken,
		css.PercentageToken, css.HashToken, css.StringToken,
		css.URLToken, css.FunctionToken, css.AtKeywordToken,
		css.DelimToken, css.CustomPropertyNameToken, css.CustomPropertyValueToken:
		return true
	}
	return false
}
