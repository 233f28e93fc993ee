package compiler

// routeTrie dispatches a base utility name to its parser family with a
// single descent: cost is proportional to the token length, not to the
// number of registered patterns.
//
// Two kinds of registrations exist. Open prefixes ("bg-", "border-t-")
// match any name they prefix and hand the remainder to the parser as
// the value component. Exact keywords ("flex", "hidden") match only the
// whole name. When several registrations cover an input, the longest
// valid one wins, so "border-t-2" routes through "border-t-" rather
// than "border-".
type routeTrie struct {
	root *trieNode
}

type trieNode struct {
	children map[byte]*trieNode
	set      bool
	open     bool // registration ends with "-", matches as a prefix
	family   Family
}

func newRouteTrie() *routeTrie {
	return &routeTrie{root: &trieNode{}}
}

// insert registers pattern for family. Patterns ending in "-" are open
// prefixes; all others are exact keywords.
func (t *routeTrie) insert(pattern string, family Family) {
	n := t.root
	for i := 0; i < len(pattern); i++ {
		if n.children == nil {
			n.children = make(map[byte]*trieNode)
		}
		next, ok := n.children[pattern[i]]
		if !ok {
			next = &trieNode{}
			n.children[pattern[i]] = next
		}
		n = next
	}
	n.set = true
	n.open = pattern[len(pattern)-1] == '-'
	n.family = family
}

// route returns the parser family for name plus the unmatched remainder
// (the value component). ok is false when no registration matches.
func (t *routeTrie) route(name string) (Family, string, bool) {
	var (
		bestFamily Family
		bestRest   string
		found      bool
	)
	n := t.root
	for i := 0; ; i++ {
		if n.set && (n.open || i == len(name)) {
			bestFamily = n.family
			bestRest = name[i:]
			found = true
		}
		if i == len(name) || n.children == nil {
			break
		}
		next, ok := n.children[name[i]]
		if !ok {
			break
		}
		n = next
	}
	return bestFamily, bestRest, found
}
