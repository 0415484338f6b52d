// Package report renders twsort results on a terminal.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// diffContext is the number of unchanged lines around each hunk.
const diffContext = 3

// Summary is the outcome of one run
type Summary struct {
	FilesScanned int  // Files read
	FilesChanged int  // Files whose class strings were reordered
	Check        bool // Run was a formatting check
}

// Reporter handles formatting and outputting run results
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a new reporter writing to w
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintDiff prints a unified diff between the original and sorted contents
// of path. Nothing is printed when they are equal.
func (r *Reporter) PrintDiff(path, original, sorted string) error {
	if original == sorted {
		return nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(sorted),
		FromFile: path,
		ToFile:   path,
		Context:  diffContext,
	})
	if err != nil {
		return fmt.Errorf("diffing %s: %w", path, err)
	}

	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		fmt.Fprint(r.w, r.colorDiffLine(line))
	}
	return nil
}

// colorDiffLine styles one diff line by its leading marker. The trailing
// newline stays outside the styled text.
func (r *Reporter) colorDiffLine(line string) string {
	text := strings.TrimSuffix(line, "\n")
	newline := line[len(text):]

	switch {
	case strings.HasPrefix(text, "---"), strings.HasPrefix(text, "+++"):
		return RenderStyle(StyleBold, text, r.useColors) + newline
	case strings.HasPrefix(text, "@@"):
		return RenderStyle(StyleCyan, text, r.useColors) + newline
	case strings.HasPrefix(text, "+"):
		return RenderStyle(StyleGreen, text, r.useColors) + newline
	case strings.HasPrefix(text, "-"):
		return RenderStyle(StyleRed, text, r.useColors) + newline
	default:
		return line
	}
}

// PrintContents prints the file name followed by the sorted contents.
func (r *Reporter) PrintContents(path, contents string) {
	fmt.Fprintf(r.w, "%s\n", RenderStyle(StyleCyan, path, r.useColors))
	fmt.Fprint(r.w, contents)
	if contents != "" && !strings.HasSuffix(contents, "\n") {
		fmt.Fprintln(r.w)
	}
}

// PrintWritten reports a file that was rewritten in place.
func (r *Reporter) PrintWritten(path string) {
	fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleGreen, "sorted", r.useColors), path)
}

// PrintUnformatted reports a file whose class strings are out of order.
func (r *Reporter) PrintUnformatted(path string) {
	fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleYellow, "unsorted", r.useColors), path)
}

// PrintSummary outputs the file count summary
func (r *Reporter) PrintSummary(s Summary) {
	fmt.Fprintln(r.w, "")

	if s.Check {
		if s.FilesChanged == 0 {
			fmt.Fprintln(r.w, RenderStyle(StyleGreen,
				fmt.Sprintf("All %s sorted", pluralizeCount(s.FilesScanned, "file is", "files are")), r.useColors))
			return
		}
		fmt.Fprintln(r.w, RenderStyle(StyleRed,
			fmt.Sprintf("%s unsorted classes", pluralizeCount(s.FilesChanged, "file has", "files have")), r.useColors))
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --write to sort them", r.useColors))
		return
	}

	fmt.Fprintf(r.w, "Sorted classes in %d of %s\n", s.FilesChanged, pluralizeCount(s.FilesScanned, "file", "files"))
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
