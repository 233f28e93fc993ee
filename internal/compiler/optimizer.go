package compiler

import (
	"strings"
)

// OptimizeStats reports what each optimization pass did.
type OptimizeStats struct {
	RulesIn          int `json:"rules_in"`
	RulesOut         int `json:"rules_out"`
	EmptyDropped     int `json:"empty_dropped"`
	DuplicateDecls   int `json:"duplicate_decls"`
	NormalizedValues int `json:"normalized_values"`
	MergedRules      int `json:"merged_rules"`
	OutputBytes      int `json:"output_bytes"`
}

// Optimize runs the fixed pass pipeline over the rules and serializes
// the result to minified CSS. Passes run in a fixed order: dropping
// empties first keeps later passes from merging vacuous rules, and
// normalization runs before merging so that rules differing only in
// value spelling still unify.
func Optimize(rules []Rule) (string, OptimizeStats) {
	stats := OptimizeStats{RulesIn: len(rules)}

	rules = dropEmpty(rules, &stats)
	dedupeDecls(rules, &stats)
	normalizeValues(rules, &stats)
	rules = mergeIdentical(rules, &stats)

	out := Render(rules)
	stats.RulesOut = len(rules)
	stats.OutputBytes = len(out)
	return out, stats
}

func dropEmpty(rules []Rule, stats *OptimizeStats) []Rule {
	out := rules[:0]
	for _, r := range rules {
		if len(r.Decls) == 0 {
			stats.EmptyDropped++
			continue
		}
		out = append(out, r)
	}
	return out
}

func dedupeDecls(rules []Rule, stats *OptimizeStats) {
	for i := range rules {
		seen := make(map[string]int, len(rules[i].Decls))
		out := rules[i].Decls[:0]
		for _, d := range rules[i].Decls {
			if at, ok := seen[d.Property]; ok {
				out[at] = d
				stats.DuplicateDecls++
				continue
			}
			seen[d.Property] = len(out)
			out = append(out, d)
		}
		rules[i].Decls = out
	}
}

func normalizeValues(rules []Rule, stats *OptimizeStats) {
	for i := range rules {
		for j := range rules[i].Decls {
			v := rules[i].Decls[j].Value
			n := normalizeValue(v)
			if n != v {
				rules[i].Decls[j].Value = n
				stats.NormalizedValues++
			}
		}
	}
}

// zeroUnits are length units that collapse to a bare 0. Time units are
// excluded: 0s and 0ms are not interchangeable with 0 in transitions.
var zeroUnits = []string{"px", "rem", "em", "vh", "vw", "vmin", "vmax", "pt", "ch", "ex", "cm", "mm", "in", "pc", "%"}

// normalizeValue canonicalizes one declaration value. It works on
// whitespace-separated parts so shorthand values like "0px 0px" still
// normalize.
func normalizeValue(v string) string {
	parts := strings.Fields(v)
	changed := false
	for i, p := range parts {
		n := normalizePart(p)
		if n != p {
			parts[i] = n
			changed = true
		}
	}
	if !changed {
		return v
	}
	return strings.Join(parts, " ")
}

func normalizePart(p string) string {
	for _, unit := range zeroUnits {
		if p == "0"+unit {
			return "0"
		}
	}
	if strings.HasPrefix(p, "#") {
		return shortenHex(strings.ToLower(p))
	}
	return p
}

// shortenHex collapses #rrggbb to #rgb when each channel repeats.
func shortenHex(h string) string {
	if len(h) != 7 {
		return h
	}
	if h[1] == h[2] && h[3] == h[4] && h[5] == h[6] {
		return "#" + string(h[1]) + string(h[3]) + string(h[5])
	}
	return h
}

// mergeIdentical unions the selectors of adjacent-in-wrapper rules that
// share the exact same declaration list. Rules under different wrapper
// stacks are never merged, whatever their bodies.
func mergeIdentical(rules []Rule, stats *OptimizeStats) []Rule {
	type slot struct{ at int }
	seen := make(map[string]slot, len(rules))
	out := rules[:0]

	for _, r := range rules {
		key := wrapperKey(r.Wrappers) + "\x00\x00" + declKey(r.Decls)
		if s, ok := seen[key]; ok {
			out[s.at].Selector += "," + r.Selector
			stats.MergedRules++
			continue
		}
		seen[key] = slot{at: len(out)}
		out = append(out, r)
	}
	return out
}

func declKey(decls []Declaration) string {
	var sb strings.Builder
	for _, d := range decls {
		sb.WriteString(d.Property)
		sb.WriteByte(':')
		sb.WriteString(d.Value)
		if d.Important {
			sb.WriteString("!important")
		}
		sb.WriteByte(';')
	}
	return sb.String()
}
