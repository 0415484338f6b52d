package twsort

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// PrecedenceTable maps canonical class names to their output rank.
// A table is read-only once built and may be shared between goroutines.
type PrecedenceTable struct {
	ranks map[string]int
}

// NewPrecedenceTable builds a table whose ranks are list positions (0-based).
// A name listed more than once ranks at its last position.
func NewPrecedenceTable(classes []string) *PrecedenceTable {
	t := &PrecedenceTable{ranks: make(map[string]int, len(classes))}
	for i, class := range classes {
		t.ranks[class] = i
	}
	return t
}

var defaultTable = NewPrecedenceTable(firstOccurrences(defaultClassOrder()))

// firstOccurrences drops every repeat of a name, keeping the order of first
// appearance.
func firstOccurrences(classes []string) []string {
	seen := make(map[string]bool, len(classes))
	out := classes[:0:0]
	for _, class := range classes {
		if !seen[class] {
			seen[class] = true
			out = append(out, class)
		}
	}
	return out
}

// DefaultTable returns the built-in precedence table.
func DefaultTable() *PrecedenceTable {
	return defaultTable
}

// Rank returns the rank of class and whether it is a canonical class.
func (t *PrecedenceTable) Rank(class string) (int, bool) {
	rank, ok := t.ranks[class]
	return rank, ok
}

// Len returns the number of canonical classes in the table.
func (t *PrecedenceTable) Len() int {
	return len(t.ranks)
}

// PrecedenceFromCSS builds a table from a compiled stylesheet. Class
// selectors are ranked in order of first appearance, so a stylesheet emitted
// by a utility framework yields its own cascade order.
func PrecedenceFromCSS(r io.Reader) (*PrecedenceTable, error) {
	classes, err := stylesheetClasses(css.NewLexer(parse.NewInput(r)))
	if err != nil {
		return nil, err
	}
	return NewPrecedenceTable(classes), nil
}

// block kinds on the brace stack
const (
	blockAtRule = iota
	blockDeclarations
)

// stylesheetClasses collects class names from rule preludes. Declaration
// blocks are skipped so values such as "a.b" are never mistaken for classes.
func stylesheetClasses(lexer *css.Lexer) ([]string, error) {
	var (
		classes []string
		pending []string
		stack   []int
		atRule  bool
		seen    = make(map[string]bool)
	)

	inDeclarations := func() bool {
		return len(stack) > 0 && stack[len(stack)-1] == blockDeclarations
	}

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("lexing stylesheet: %w", err)
			}
			return classes, nil
		}

		switch tt {
		case css.LeftBraceToken:
			if inDeclarations() || !atRule {
				if !inDeclarations() {
					for _, class := range pending {
						if !seen[class] {
							seen[class] = true
							classes = append(classes, class)
						}
					}
				}
				stack = append(stack, blockDeclarations)
			} else {
				stack = append(stack, blockAtRule)
			}
			pending, atRule = pending[:0], false
		case css.RightBraceToken:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			pending, atRule = pending[:0], false
		case css.SemicolonToken:
			if !inDeclarations() {
				pending, atRule = pending[:0], false
			}
		case css.AtKeywordToken:
			if !inDeclarations() {
				atRule = true
			}
		case css.DelimToken:
			if inDeclarations() || len(text) == 0 || text[0] != '.' {
				continue
			}
			if next, name := lexer.Next(); next == css.IdentToken {
				pending = append(pending, unescapeIdent(string(name)))
			} else if next == css.LeftBraceToken {
				stack = append(stack, blockDeclarations)
				pending, atRule = pending[:0], false
			}
		}
	}
}

// unescapeIdent resolves CSS escapes ("\:" and hex escapes like "\32 ").
func unescapeIdent(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}

		j := i + 1
		for j < len(s) && j-i <= 6 && isHexDigit(s[j]) {
			j++
		}
		if j == i+1 {
			// literal escape
			b.WriteByte(s[j])
			i = j
			continue
		}

		code, err := strconv.ParseUint(s[i+1:j], 16, 32)
		if err != nil || code == 0 || code > 0x10FFFF {
			code = 0xFFFD
		}
		b.WriteRune(rune(code))
		if j < len(s) && s[j] == ' ' {
			j++
		}
		i = j - 1
	}
	return b.String()
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
