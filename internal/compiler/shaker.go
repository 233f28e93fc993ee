package compiler

import (
	"strings"
	"sync/atomic"
)

// ShakePhase tracks where a shaking run is. The phase advances
// monotonically and is readable from other goroutines for progress
// reporting.
type ShakePhase int32

const (
	ShakeIdle ShakePhase = iota
	ShakeScanning
	ShakeAnalyzing
	ShakeShaking
	ShakeDone
)

func (p ShakePhase) String() string {
	switch p {
	case ShakeIdle:
		return "idle"
	case ShakeScanning:
		return "scanning"
	case ShakeAnalyzing:
		return "analyzing"
	case ShakeShaking:
		return "shaking"
	case ShakeDone:
		return "done"
	}
	return "unknown"
}

// ShakeStats categorizes what shaking removed. Every removed rule lands
// in exactly one bucket.
type ShakeStats struct {
	Kept                  int `json:"kept"`
	Removed               int `json:"removed"`
	RemovedResponsive     int `json:"removed_responsive"`
	RemovedStateVariant   int `json:"removed_state_variant"`
	RemovedCustomProperty int `json:"removed_custom_property"`
	RemovedPlain          int `json:"removed_plain"`
}

// Shaker removes rules whose tokens never appear in the scanned
// sources.
type Shaker struct {
	store *RuleStore
	phase atomic.Int32
}

func NewShaker(store *RuleStore) *Shaker {
	return &Shaker{store: store}
}

// Phase reports the current phase.
func (s *Shaker) Phase() ShakePhase {
	return ShakePhase(s.phase.Load())
}

func (s *Shaker) setPhase(p ShakePhase) {
	s.phase.Store(int32(p))
}

// Shake drops every stored rule whose token is not in used. A used
// token also keeps its base form: markup that only ever writes
// "hover:bg-blue-600" still relies on the unmodified utility existing
// for non-interactive rendering paths, so the base survives too.
func (s *Shaker) Shake(used []string) ShakeStats {
	s.setPhase(ShakeScanning)
	keep := make(map[string]bool, len(used)*2)
	for _, tok := range used {
		keep[tok] = true
	}

	s.setPhase(ShakeAnalyzing)
	for _, tok := range used {
		if t, err := ParseToken(tok); err == nil && len(t.Modifiers) > 0 {
			base := baseText(t.Base)
			if base != "" {
				keep[base] = true
			}
		}
	}

	s.setPhase(ShakeShaking)
	removed := s.store.Remove(func(r Rule) bool {
		return keep[r.Token]
	})

	stats := ShakeStats{Kept: s.store.Len(), Removed: len(removed)}
	for _, r := range removed {
		switch categorize(r) {
		case removedCustomProperty:
			stats.RemovedCustomProperty++
		case removedResponsive:
			stats.RemovedResponsive++
		case removedStateVariant:
			stats.RemovedStateVariant++
		default:
			stats.RemovedPlain++
		}
	}

	s.setPhase(ShakeDone)
	return stats
}

// baseText reconstructs the base token text from its parsed parts.
func baseText(b BaseUtility) string {
	var sb strings.Builder
	if b.Important {
		sb.WriteByte('!')
	}
	if b.Negative {
		sb.WriteByte('-')
	}
	sb.WriteString(b.Name)
	if b.Opacity != "" {
		sb.WriteByte('/')
		sb.WriteString(b.Opacity)
	}
	return sb.String()
}

type removalKind int

const (
	removedPlain removalKind = iota
	removedCustomProperty
	removedResponsive
	removedStateVariant
)

// categorize picks the single bucket for a removed rule. Rules that
// only feed custom properties are their own category regardless of
// variants, then media-wrapped rules, then state-conditional ones.
func categorize(r Rule) removalKind {
	if len(r.Decls) > 0 {
		onlyVars := true
		for _, d := range r.Decls {
			if !strings.HasPrefix(d.Property, "--") {
				onlyVars = false
				break
			}
		}
		if onlyVars {
			return removedCustomProperty
		}
	}
	for _, w := range r.Wrappers {
		if strings.HasPrefix(w, "@media (min-width") || strings.HasPrefix(w, "@media (max-width") || strings.HasPrefix(w, "@container") {
			return removedResponsive
		}
	}
	if len(r.Wrappers) > 0 {
		return removedStateVariant
	}
	if t, err := ParseToken(r.Token); err == nil && len(t.Modifiers) > 0 {
		return removedStateVariant
	}
	return removedPlain
}
