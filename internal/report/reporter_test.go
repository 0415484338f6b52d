package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintDiff(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	err := r.PrintDiff("page.html",
		"<p>\n<div class=\"px-2 flex\">\n</p>\n",
		"<p>\n<div class=\"flex px-2\">\n</p>\n")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "--- page.html\n")
	assert.Contains(t, out, "+++ page.html\n")
	assert.Contains(t, out, "-<div class=\"px-2 flex\">\n")
	assert.Contains(t, out, "+<div class=\"flex px-2\">\n")
	assert.Contains(t, out, " <p>\n")
}

func TestPrintDiff_Unchanged(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	require.NoError(t, r.PrintDiff("page.html", "same\n", "same\n"))
	assert.Empty(t, buf.String())
}

func TestColorDiffLine(t *testing.T) {
	plain := NewReporter(nil, false)

	tests := []struct {
		name string
		line string
	}{
		{name: "header", line: "--- a.html\n"},
		{name: "hunk", line: "@@ -1 +1 @@\n"},
		{name: "added", line: "+new\n"},
		{name: "removed", line: "-old\n"},
		{name: "context", line: " same\n"},
		{name: "no newline", line: "+last"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.line, plain.colorDiffLine(tt.line))
		})
	}
}

func TestPrintContents(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	r.PrintContents("a.html", "<div class=\"flex\">")
	r.PrintContents("b.html", "done\n")
	assert.Equal(t, "a.html\n<div class=\"flex\">\nb.html\ndone\n", buf.String())
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		want    string
	}{
		{
			name:    "write",
			summary: Summary{FilesScanned: 3, FilesChanged: 1},
			want:    "\nSorted classes in 1 of 3 files\n",
		},
		{
			name:    "check clean single",
			summary: Summary{FilesScanned: 1, Check: true},
			want:    "\nAll 1 file is sorted\n",
		},
		{
			name:    "check failed",
			summary: Summary{FilesScanned: 4, FilesChanged: 2, Check: true},
			want:    "\n2 files have unsorted classes\nHint: Run with --write to sort them\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewReporter(&buf, false).PrintSummary(tt.summary)
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 file", pluralizeCount(1, "file", "files"))
	assert.Equal(t, "0 files", pluralizeCount(0, "file", "files"))
	assert.Equal(t, "7 files", pluralizeCount(7, "file", "files"))
}

func TestShouldUseColors(t *testing.T) {
	assert.True(t, ShouldUseColors(true))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ShouldUseColors(false))

	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ShouldUseColors(false))
}

func TestRenderStyle(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleRed, "plain", false))
}
