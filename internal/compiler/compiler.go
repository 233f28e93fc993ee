// Package compiler turns utility class tokens into deduplicated CSS
// rules. A token such as "md:hover:bg-blue-500/50" is split into
// modifiers and a base utility, routed to a parser family by prefix,
// resolved against the theme and stored as a structured rule keyed by
// selector and wrapper stack.
package compiler

import "strings"

// Compiler is a single compilation session. It is safe for concurrent
// AddToken calls; the rule store serializes inserts.
type Compiler struct {
	theme *Theme
	store *RuleStore
}

// New creates a session against the given theme. A nil theme uses
// DefaultTheme.
func New(theme *Theme) *Compiler {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Compiler{theme: theme, store: NewRuleStore()}
}

// Theme exposes the session theme.
func (c *Compiler) Theme() *Theme { return c.theme }

// Store exposes the underlying rule store.
func (c *Compiler) Store() *RuleStore { return c.store }

// AddToken compiles one token and inserts the resulting rule. Errors
// always carry the raw token so callers can report positions without
// re-parsing.
func (c *Compiler) AddToken(raw string) error {
	rule, err := c.Compile(raw)
	if err != nil {
		return err
	}
	c.store.Insert(rule)
	return nil
}

// Compile resolves a token to a rule without storing it.
func (c *Compiler) Compile(raw string) (Rule, error) {
	tok, err := ParseToken(raw)
	if err != nil {
		return Rule{}, withToken(err, raw)
	}

	res, err := parseBase(c.theme, tok.Base)
	if err != nil {
		return Rule{}, withToken(err, raw)
	}

	prefixes, suffixes, wrappers, err := resolveChain(c.theme, tok.Modifiers)
	if err != nil {
		return Rule{}, withToken(err, raw)
	}

	var sel strings.Builder
	for _, p := range prefixes {
		sel.WriteString(p)
	}
	sel.WriteByte('.')
	sel.WriteString(EscapeClass(raw))
	for _, s := range suffixes {
		sel.WriteString(s)
	}
	// child-targeting utilities (space-x-, divide-) carry their own
	// structural suffix after any pseudo selectors
	sel.WriteString(res.Suffix)

	return Rule{
		Selector: sel.String(),
		Wrappers: wrappers,
		Decls:    res.Decls,
		Token:    raw,
	}, nil
}

// withToken stamps the raw token onto resolution errors. Parsers build
// errors from value fragments and do not know the full token text.
func withToken(err error, raw string) error {
	if e, ok := err.(*Error); ok {
		e.Token = raw
		return e
	}
	return err
}
