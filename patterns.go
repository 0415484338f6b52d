package twsort

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// DefaultPatternExpr matches class and className attributes; group 1 is the
// class string.
const DefaultPatternExpr = `\b(?:class(?:Name)?\s*=\s*["'])([_a-zA-Z0-9\.,\s\-:\[\]()/#%!@&>+~*=]+)["']`

var defaultPattern = regexp.MustCompile(DefaultPatternExpr)

// minCaptureGroups counts the implicit whole-match group, so a pattern needs
// one explicit group holding the class string.
const minCaptureGroups = 2

// PatternCompileError reports a pattern that is not a valid expression.
type PatternCompileError struct {
	Pattern string
	Err     error
}

func (e *PatternCompileError) Error() string {
	return fmt.Sprintf("unable to parse custom regex %q: %v", e.Pattern, e.Err)
}

func (e *PatternCompileError) Unwrap() error {
	return e.Err
}

// PatternShapeError reports a pattern without a class-string capture group.
type PatternShapeError struct {
	Pattern string
	Groups  int
}

func (e *PatternShapeError) Error() string {
	return fmt.Sprintf("custom regex %q has %d capture groups, requires at least %d",
		e.Pattern, e.Groups, minCaptureGroups)
}

// PatternSet locates class strings in text. It has exactly three shapes,
// built by DefaultPatterns, NewCustomPattern and NewPatternEntries.
type PatternSet interface {
	// HasMatches reports whether text contains at least one class span.
	HasMatches(text string) bool

	rewrite(text string, sortFn func(string) string) string
}

// PatternEntry is a container pattern with an optional class pattern run
// against the container's group 1. Without a class pattern the container
// group is the class string.
type PatternEntry struct {
	Container *regexp.Regexp
	Class     *regexp.Regexp
}

type defaultPatterns struct{}

type customPattern struct {
	re *regexp.Regexp
}

type patternEntries struct {
	entries []PatternEntry
}

// DefaultPatterns returns the built-in class-attribute pattern.
func DefaultPatterns() PatternSet {
	return defaultPatterns{}
}

// NewCustomPattern compiles a single override pattern. This is the only
// shape a command line can produce.
func NewCustomPattern(expr string) (PatternSet, error) {
	re, err := compilePattern(expr)
	if err != nil {
		return nil, err
	}
	return customPattern{re: re}, nil
}

// NewPatternEntries compiles config-supplied entries. The default pattern is
// always the first entry so plain class attributes are still sorted.
func NewPatternEntries(specs []EntrySpec) (PatternSet, error) {
	entries := make([]PatternEntry, 0, len(specs)+1)
	entries = append(entries, PatternEntry{Container: defaultPattern})

	for _, spec := range specs {
		container, err := compilePattern(spec.Container)
		if err != nil {
			return nil, err
		}

		entry := PatternEntry{Container: container}
		if spec.HasClass() {
			if entry.Class, err = compilePattern(spec.Class); err != nil {
				return nil, err
			}
		}
		entries = append(entries, entry)
	}

	return patternEntries{entries: entries}, nil
}

func compilePattern(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternCompileError{Pattern: expr, Err: err}
	}
	if groups := re.NumSubexp() + 1; groups < minCaptureGroups {
		return nil, &PatternShapeError{Pattern: expr, Groups: groups}
	}
	return re, nil
}

func (defaultPatterns) HasMatches(text string) bool {
	return defaultPattern.MatchString(text)
}

func (defaultPatterns) rewrite(text string, sortFn func(string) string) string {
	return replaceGroup(defaultPattern, text, sortFn)
}

func (p customPattern) HasMatches(text string) bool {
	return p.re.MatchString(text)
}

func (p customPattern) rewrite(text string, sortFn func(string) string) string {
	return replaceGroup(p.re, text, sortFn)
}

func (p patternEntries) HasMatches(text string) bool {
	for _, entry := range p.entries {
		if entry.Container.MatchString(text) {
			return true
		}
	}
	return false
}

// rewrite applies entries in order; each pass scans the previous pass's
// output.
func (p patternEntries) rewrite(text string, sortFn func(string) string) string {
	for _, entry := range p.entries {
		if entry.Class == nil {
			text = replaceGroup(entry.Container, text, sortFn)
			continue
		}

		class := entry.Class
		text = replaceGroup(entry.Container, text, func(container string) string {
			return replaceGroup(class, container, sortFn)
		})
	}
	return text
}

// Entries returns the compiled entries of a config-built pattern set, or
// nil for the single-pattern shapes.
func Entries(p PatternSet) []PatternEntry {
	if e, ok := p.(patternEntries); ok {
		return append([]PatternEntry(nil), e.entries...)
	}
	return nil
}

// replaceGroup replaces capture group 1 of every match of re in text with
// fn of that group. Matches are found against text as given; bytes outside
// the group spans are copied unchanged.
func replaceGroup(re *regexp.Regexp, text string, fn func(string) string) string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		start, end := m[2], m[3]
		if start < 0 {
			// group did not participate
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(fn(text[start:end]))
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}

// EntrySpec is one customRegex config entry: a container pattern and an
// optional class pattern.
type EntrySpec struct {
	Container string
	Class     string
}

// HasClass reports whether the entry carries a class pattern.
func (s EntrySpec) HasClass() bool {
	return s.Class != ""
}

// UnmarshalJSON accepts either "container" or ["container", "class"].
func (s *EntrySpec) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	spec, err := parseEntrySpec(raw)
	if err != nil {
		return err
	}
	*s = spec
	return nil
}

// ParseEntrySpecs converts decoded config data (a list of strings or
// two-element string lists) into entry specs.
func ParseEntrySpecs(raw any) ([]EntrySpec, error) {
	if raw == nil {
		return nil, nil
	}

	items, ok := raw.([]any)
	if !ok {
		if strs, ok := raw.([]string); ok {
			specs := make([]EntrySpec, len(strs))
			for i, s := range strs {
				specs[i] = EntrySpec{Container: s}
			}
			return specs, nil
		}
		return nil, fmt.Errorf("customRegex must be a list, got %T", raw)
	}

	specs := make([]EntrySpec, 0, len(items))
	for i, item := range items {
		spec, err := parseEntrySpec(item)
		if err != nil {
			return nil, fmt.Errorf("customRegex entry %d: %w", i, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func parseEntrySpec(raw any) (EntrySpec, error) {
	switch v := raw.(type) {
	case string:
		return EntrySpec{Container: v}, nil
	case []any:
		if len(v) != 2 {
			return EntrySpec{}, fmt.Errorf("pair must have exactly 2 patterns, got %d", len(v))
		}
		container, ok1 := v[0].(string)
		class, ok2 := v[1].(string)
		if !ok1 || !ok2 {
			return EntrySpec{}, fmt.Errorf("pair must contain strings")
		}
		return EntrySpec{Container: container, Class: class}, nil
	case []string:
		if len(v) != 2 {
			return EntrySpec{}, fmt.Errorf("pair must have exactly 2 patterns, got %d", len(v))
		}
		return EntrySpec{Container: v[0], Class: v[1]}, nil
	default:
		return EntrySpec{}, fmt.Errorf("expected a pattern or [container, class] pair, got %T", raw)
	}
}
