// Package twsort sorts utility classes inside class attributes.
//
// An Engine locates class strings in text with a PatternSet, orders the
// tokens of every class string and splices the result back in place. Text
// outside the matched class strings is never touched.
//
// # Ordering
//
// Tokens are emitted in three tiers:
//
//  1. Canonical classes found in the PrecedenceTable, by rank
//  2. Variant classes ("hover:flex", "md:p-4"), grouped by variant in
//     catalog order and ranked by the utility after the prefix
//  3. Everything else, in the order it was seen
//
// # Usage
//
//	engine := twsort.New(twsort.Options{})
//	out := engine.Rewrite(`<div class="px-2 flex py-2">`)
//	// out == `<div class="flex py-2 px-2">`
//
// # Patterns
//
// The default pattern finds class and className attributes. A single
// override pattern comes from NewCustomPattern; config files supply
// container/class pattern pairs through NewPatternEntries.
package twsort

// Options selects the patterns, precedence table and duplicate policy used
// by an Engine. Zero values select the built-ins and drop duplicates.
type Options struct {
	Patterns        PatternSet
	Table           *PrecedenceTable
	AllowDuplicates bool
}

// Engine rewrites class strings. It is immutable after New and safe for
// concurrent use by multiple goroutines.
type Engine struct {
	patterns PatternSet
	sorter   *Sorter
}

// New creates an engine from resolved options.
func New(opts Options) *Engine {
	patterns := opts.Patterns
	if patterns == nil {
		patterns = DefaultPatterns()
	}
	return &Engine{
		patterns: patterns,
		sorter:   NewSorter(opts.Table, nil, opts.AllowDuplicates),
	}
}

// HasMatches reports whether text contains at least one class string.
func (e *Engine) HasMatches(text string) bool {
	return e.patterns.HasMatches(text)
}

// Rewrite returns text with every matched class string sorted. Text without
// matches is returned unchanged.
func (e *Engine) Rewrite(text string) string {
	return e.patterns.rewrite(text, e.sorter.Sort)
}

// SortClasses sorts a bare class string with the engine's table and policy.
func (e *Engine) SortClasses(classString string) string {
	return e.sorter.Sort(classString)
}
