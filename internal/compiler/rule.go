package compiler

import (
	"sort"
	"strings"
	"sync"
)

// Rule is one generated CSS rule: a selector, the at-rule wrappers
// enclosing it (outermost first) and its declarations.
type Rule struct {
	Selector string
	Wrappers []string
	Decls    []Declaration
	Token    string // the source token that produced the rule
}

// wrapperKey joins a wrapper stack into a comparable signature.
// \x00 cannot appear in CSS text so the join is unambiguous.
func wrapperKey(wrappers []string) string {
	return strings.Join(wrappers, "\x00")
}

func (r *Rule) key() string {
	return r.Selector + "\x00\x00" + wrapperKey(r.Wrappers)
}

// RuleStore accumulates rules in insertion order and deduplicates on
// (selector, wrapper stack). Re-inserting an existing rule merges
// declarations with last-wins semantics per property, so repeated
// tokens across many source files cost one rule.
type RuleStore struct {
	mu    sync.Mutex
	rules []*Rule
	index map[string]*Rule
}

func NewRuleStore() *RuleStore {
	return &RuleStore{index: make(map[string]*Rule)}
}

// Insert adds a rule or merges it into an existing one with the same
// selector and wrapper stack. It reports whether a new rule was created.
func (s *RuleStore) Insert(r Rule) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := r.key()
	if existing, ok := s.index[key]; ok {
		existing.Decls = mergeDecls(existing.Decls, r.Decls)
		return false
	}
	stored := r
	stored.Decls = mergeDecls(nil, r.Decls)
	s.rules = append(s.rules, &stored)
	s.index[key] = &stored
	return true
}

// mergeDecls appends incoming declarations onto dst keeping the last
// value written for each property.
func mergeDecls(dst, src []Declaration) []Declaration {
	for _, d := range src {
		replaced := false
		for i := range dst {
			if dst[i].Property == d.Property {
				dst[i] = d
				replaced = true
				break
			}
		}
		if !replaced {
			dst = append(dst, d)
		}
	}
	return dst
}

// Len reports the number of stored rules.
func (s *RuleStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rules)
}

// Rules returns a snapshot of the stored rules in insertion order.
func (s *RuleStore) Rules() []Rule {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Rule, len(s.rules))
	for i, r := range s.rules {
		out[i] = *r
	}
	return out
}

// Remove drops every rule whose key fails the keep predicate and
// returns the removed rules. Order of survivors is preserved.
func (s *RuleStore) Remove(keep func(Rule) bool) []Rule {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []Rule
	kept := s.rules[:0]
	for _, r := range s.rules {
		if keep(*r) {
			kept = append(kept, r)
			continue
		}
		removed = append(removed, *r)
		delete(s.index, r.key())
	}
	s.rules = kept
	return removed
}

// Render serializes rules to minified CSS. Consecutive rules are
// grouped by shared wrapper prefix: a run of md: utilities produces one
// @media block, and an md:dark: rule nests its dark block inside that
// same breakpoint block instead of reopening it.
func Render(rules []Rule) string {
	var sb strings.Builder
	renderGroup(&sb, rules, 0)
	return sb.String()
}

// renderGroup emits rules whose wrapper stacks agree through depth,
// opening one block per distinct wrapper at this depth and recursing
// for the deeper stacks.
func renderGroup(sb *strings.Builder, rules []Rule, depth int) {
	i := 0
	for i < len(rules) {
		if len(rules[i].Wrappers) <= depth {
			writeRule(sb, rules[i])
			i++
			continue
		}
		w := rules[i].Wrappers[depth]
		j := i
		for j < len(rules) && len(rules[j].Wrappers) > depth && rules[j].Wrappers[depth] == w {
			j++
		}
		sb.WriteString(w)
		sb.WriteByte('{')
		renderGroup(sb, rules[i:j], depth+1)
		sb.WriteByte('}')
		i = j
	}
}

// SortRules orders rules for emission: unwrapped rules first in
// insertion order, then responsive groups smallest breakpoint first,
// then remaining wrapper groups in first-appearance order. Stacks are
// ranked by their outermost wrapper, so md: and md:dark: rules sort
// together and Render can merge them into one breakpoint block. The
// sort is stable, keeping output deterministic for a given input
// sequence.
func SortRules(rules []Rule, theme *Theme) {
	outerRank := map[string]int{"": 0}
	for i, name := range breakpointOrder {
		if bp, ok := theme.Breakpoints[name]; ok {
			outerRank["@media (min-width:"+bp+")"] = i + 1
		}
	}
	nextOuter := len(breakpointOrder) + 1
	stackRank := make(map[string]int)

	paired := make([]struct {
		rule  Rule
		outer int
		stack int
	}, len(rules))
	for i, r := range rules {
		outer := ""
		if len(r.Wrappers) > 0 {
			outer = r.Wrappers[0]
		}
		ov, ok := outerRank[outer]
		if !ok {
			ov = nextOuter
			nextOuter++
			outerRank[outer] = ov
		}
		key := wrapperKey(r.Wrappers)
		sv, ok := stackRank[key]
		if !ok {
			sv = len(stackRank)
			stackRank[key] = sv
		}
		paired[i].rule = r
		paired[i].outer = ov
		paired[i].stack = sv
	}

	sort.SliceStable(paired, func(i, j int) bool {
		if paired[i].outer != paired[j].outer {
			return paired[i].outer < paired[j].outer
		}
		return paired[i].stack < paired[j].stack
	})
	for i := range paired {
		rules[i] = paired[i].rule
	}
}

func writeRule(sb *strings.Builder, r Rule) {
	if len(r.Decls) == 0 {
		return
	}
	sb.WriteString(r.Selector)
	sb.WriteByte('{')
	for i, d := range r.Decls {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(d.Property)
		sb.WriteByte(':')
		sb.WriteString(d.Value)
		if d.Important {
			sb.WriteString("!important")
		}
	}
	sb.WriteByte('}')
}
