package windcss

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/yacobolo/windcss/internal/compiler"
)

// Dark mode strategy names accepted in configuration.
const (
	DarkModeMedia = "media"
	DarkModeClass = "class"
)

// OptimizeStats reports what the optimizer passes did during Generate.
type OptimizeStats struct {
	RulesIn          int `json:"rules_in"`
	RulesOut         int `json:"rules_out"`
	EmptyDropped     int `json:"empty_dropped"`
	DuplicateDecls   int `json:"duplicate_decls"`
	NormalizedValues int `json:"normalized_values"`
	MergedRules      int `json:"merged_rules"`
	OutputBytes      int `json:"output_bytes"`
}

// ShakeStats categorizes the rules a Shake call removed.
type ShakeStats struct {
	Kept                  int `json:"kept"`
	Removed               int `json:"removed"`
	RemovedResponsive     int `json:"removed_responsive"`
	RemovedStateVariant   int `json:"removed_state_variant"`
	RemovedCustomProperty int `json:"removed_custom_property"`
	RemovedPlain          int `json:"removed_plain"`
}

// Engine is a compilation session: tokens go in, a deduplicated
// minified stylesheet comes out. An Engine can live across multiple
// scans; Shake drops rules whose tokens the latest scan no longer
// mentions.
type Engine struct {
	theme *compiler.Theme
	comp  *compiler.Compiler

	mu      sync.Mutex
	issues  []Issue
	tokens  int    // total references processed, including repeats
	prelude string // minified handwritten CSS, emitted before utilities
}

// NewEngine creates an engine for the given dark mode strategy. An
// empty strategy means media.
func NewEngine(darkMode string) (*Engine, error) {
	theme := compiler.DefaultTheme()
	switch darkMode {
	case "", DarkModeMedia:
		theme.Dark = compiler.DarkModeMedia
	case DarkModeClass:
		theme.Dark = compiler.DarkModeClass
	default:
		return nil, fmt.Errorf("unknown dark mode strategy %q (want %q or %q)", darkMode, DarkModeMedia, DarkModeClass)
	}
	return &Engine{theme: theme, comp: compiler.New(theme)}, nil
}

// AddToken compiles a single token into the engine.
func (e *Engine) AddToken(token string) error {
	e.mu.Lock()
	e.tokens++
	e.mu.Unlock()
	return e.comp.AddToken(token)
}

// AddTokens compiles a batch of bare tokens, returning one error per
// failed token. Position-less variant of AddReferences for library use.
func (e *Engine) AddTokens(tokens []string) []error {
	refs := make([]TokenReference, len(tokens))
	for i, tok := range tokens {
		refs[i] = TokenReference{Token: tok}
	}
	issues := e.AddReferences(refs)

	errs := make([]error, 0, len(issues))
	for _, issue := range issues {
		errs = append(errs, fmt.Errorf("%s", issue.Text))
	}
	return errs
}

// AddReferences compiles scanned token references. Tokens are compiled
// concurrently but inserted in input order, so the generated stylesheet
// is deterministic for a given reference sequence. Failures become
// positioned diagnostics instead of aborting the batch.
func (e *Engine) AddReferences(refs []TokenReference) []Issue {
	type outcome struct {
		rule compiler.Rule
		err  error
	}
	outcomes := make([]outcome, len(refs))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(refs) {
		workers = len(refs)
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	work := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				rule, err := e.comp.Compile(refs[i].Token)
				outcomes[i] = outcome{rule: rule, err: err}
			}
		}()
	}
	for i := range refs {
		work <- i
	}
	close(work)
	wg.Wait()

	var batch []Issue
	for i, out := range outcomes {
		if out.err != nil {
			if issue, ok := issueFromError(out.err, refs[i]); ok {
				batch = append(batch, issue)
			}
			continue
		}
		e.comp.Store().Insert(out.rule)
	}

	e.mu.Lock()
	e.tokens += len(refs)
	e.issues = append(e.issues, batch...)
	e.mu.Unlock()
	return batch
}

// AddCSS minifies handwritten CSS and queues it ahead of the generated
// utilities in Generate output. Calls accumulate in order.
func (e *Engine) AddCSS(content string) {
	minified := MinifyCSS(content)
	e.mu.Lock()
	e.prelude += minified
	e.mu.Unlock()
}

// Shake removes rules whose tokens are absent from used. See the
// compiler package for the base-token dependency rule.
func (e *Engine) Shake(used []string) ShakeStats {
	s := compiler.NewShaker(e.comp.Store()).Shake(used)
	return ShakeStats{
		Kept:                  s.Kept,
		Removed:               s.Removed,
		RemovedResponsive:     s.RemovedResponsive,
		RemovedStateVariant:   s.RemovedStateVariant,
		RemovedCustomProperty: s.RemovedCustomProperty,
		RemovedPlain:          s.RemovedPlain,
	}
}

// Generate produces the minified stylesheet for everything compiled so
// far. Generating is repeatable: it does not consume the rules.
func (e *Engine) Generate() (string, OptimizeStats) {
	rules := e.comp.Store().Rules()
	compiler.SortRules(rules, e.theme)
	css, s := compiler.Optimize(rules)
	e.mu.Lock()
	css = e.prelude + css
	e.mu.Unlock()
	return css, OptimizeStats{
		RulesIn:          s.RulesIn,
		RulesOut:         s.RulesOut,
		EmptyDropped:     s.EmptyDropped,
		DuplicateDecls:   s.DuplicateDecls,
		NormalizedValues: s.NormalizedValues,
		MergedRules:      s.MergedRules,
		OutputBytes:      len(css),
	}
}

// Issues returns all diagnostics accumulated so far.
func (e *Engine) Issues() []Issue {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Issue, len(e.issues))
	copy(out, e.issues)
	return out
}

// RuleCount reports the number of live rules.
func (e *Engine) RuleCount() int {
	return e.comp.Store().Len()
}

// TokenCount reports the total number of token references processed,
// including repeats.
func (e *Engine) TokenCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tokens
}
