package twsort

import (
	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
)

// VariantSeparator separates a variant prefix from the utility it modifies.
const VariantSeparator = ':'

// defaultVariantPrefixes is the built-in modifier list. Its order is the
// order in which variant groups are emitted.
var defaultVariantPrefixes = []string{
	// responsive
	"sm", "md", "lg", "xl", "2xl",
	// media
	"dark", "motion-safe", "motion-reduce", "print", "portrait", "landscape", "ltr", "rtl",
	// structural
	"first", "last", "only", "odd", "even", "first-of-type", "last-of-type", "only-of-type", "empty",
	// form state
	"visited", "checked", "indeterminate", "default", "required", "valid", "invalid",
	"in-range", "out-of-range", "placeholder-shown", "autofill", "read-only",
	// group and peer
	"group-hover", "group-focus", "group-active", "peer-hover", "peer-focus", "peer-checked",
	// interaction
	"focus-within", "hover", "focus", "focus-visible", "active", "enabled", "disabled",
	// pseudo elements
	"open", "placeholder", "file", "marker", "selection", "first-line", "first-letter",
	"backdrop", "before", "after",
}

// VariantCatalog is an ordered list of variant prefixes plus a matcher that
// finds which prefix a token starts with.
//
// The matcher is built over "<prefix>:" so a token only belongs to a variant
// group when the separator follows the prefix. Matches must start at offset
// 0; among matches starting there the longest wins. Because no prefix
// contains the separator, two catalog entries can never both match the
// start of one token.
type VariantCatalog struct {
	prefixes []string
	matcher  ahocorasick.AhoCorasick
}

var defaultVariants = NewVariantCatalog(defaultVariantPrefixes)

// DefaultVariants returns the built-in variant catalog.
func DefaultVariants() *VariantCatalog {
	return defaultVariants
}

// NewVariantCatalog compiles a catalog from an ordered prefix list.
func NewVariantCatalog(prefixes []string) *VariantCatalog {
	patterns := make([]string, len(prefixes))
	for i, prefix := range prefixes {
		patterns[i] = prefix + string(VariantSeparator)
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: false,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
		DFA:                  true,
	})

	return &VariantCatalog{
		prefixes: append([]string(nil), prefixes...),
		matcher:  builder.Build(patterns),
	}
}

// Len returns the number of prefixes in the catalog.
func (c *VariantCatalog) Len() int {
	return len(c.prefixes)
}

func (c *VariantCatalog) prefix(i int) string {
	return c.prefixes[i]
}

// Match returns the catalog index of the prefix that token starts with.
func (c *VariantCatalog) Match(token string) (int, bool) {
	matches := c.matcher.FindAll(token)
	if len(matches) == 0 || matches[0].Start() != 0 {
		return 0, false
	}
	return matches[0].Pattern(), true
}

// Residual strips the i-th prefix and its separator from token.
func (c *VariantCatalog) Residual(i int, token string) string {
	return token[len(c.prefixes[i])+1:]
}
