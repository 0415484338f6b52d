package twsort

import (
	"cmp"
	"slices"
	"strings"
)

// Sorter orders the tokens of a class string. It holds only read-only state
// and is safe for concurrent use.
type Sorter struct {
	table           *PrecedenceTable
	variants        *VariantCatalog
	allowDuplicates bool
}

// NewSorter creates a sorter. Nil table or catalog select the built-ins.
func NewSorter(table *PrecedenceTable, variants *VariantCatalog, allowDuplicates bool) *Sorter {
	if table == nil {
		table = DefaultTable()
	}
	if variants == nil {
		variants = DefaultVariants()
	}
	return &Sorter{table: table, variants: variants, allowDuplicates: allowDuplicates}
}

// SortClasses sorts a class string with the built-in variant catalog.
func SortClasses(classString string, table *PrecedenceTable, allowDuplicates bool) string {
	return NewSorter(table, nil, allowDuplicates).Sort(classString)
}

// Sort returns the tokens of classString in canonical order, joined by
// single spaces.
func (s *Sorter) Sort(classString string) string {
	return strings.Join(s.Order(splitClasses(classString, s.allowDuplicates)), " ")
}

type rankedClass struct {
	class string
	rank  int
}

// Order arranges tokens as: canonical classes by rank, then each variant
// group in catalog order (sorted by the rank of the utility after the
// prefix), then everything else. Variant tokens whose utility is unknown
// join the tail after the custom classes that were already there.
func (s *Sorter) Order(tokens []string) []string {
	var (
		canonical []rankedClass
		custom    []string
		variants  = make(map[int][]string)
	)

	for _, token := range tokens {
		if rank, ok := s.table.Rank(token); ok {
			canonical = append(canonical, rankedClass{token, rank})
			continue
		}
		if idx, ok := s.variants.Match(token); ok {
			variants[idx] = append(variants[idx], token)
			continue
		}
		custom = append(custom, token)
	}

	sorted := make([]string, 0, len(tokens))
	sorted = appendByRank(sorted, canonical)

	for idx := 0; idx < s.variants.Len(); idx++ {
		group, ok := variants[idx]
		if !ok {
			continue
		}

		ranked := make([]rankedClass, 0, len(group))
		for _, token := range group {
			if rank, ok := s.table.Rank(s.variants.Residual(idx, token)); ok {
				ranked = append(ranked, rankedClass{token, rank})
			} else {
				custom = append(custom, token)
			}
		}
		sorted = appendByRank(sorted, ranked)
	}

	return append(sorted, custom...)
}

func appendByRank(dst []string, classes []rankedClass) []string {
	slices.SortStableFunc(classes, func(a, b rankedClass) int {
		return cmp.Compare(a.rank, b.rank)
	})
	for _, c := range classes {
		dst = append(dst, c.class)
	}
	return dst
}

// splitClasses splits on ASCII whitespace, dropping repeated tokens unless
// duplicates are allowed. The returned tokens are substrings of s.
func splitClasses(s string, allowDuplicates bool) []string {
	tokens := strings.FieldsFunc(s, isASCIISpace)
	if allowDuplicates || len(tokens) < 2 {
		return tokens
	}

	seen := make(map[string]struct{}, len(tokens))
	unique := tokens[:0]
	for _, token := range tokens {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		unique = append(unique, token)
	}
	return unique
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
