package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/twsort/internal/runner"
)

const (
	unsortedPage = "<div class=\"px-2 flex py-2\">hi</div>\n"
	sortedPage   = "<div class=\"flex py-2 px-2\">hi</div>\n"
)

// resetFlags restores every flag of cmd and its subcommands, since cobra
// keeps parsed values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// runRoot executes the root command with stdin and returns its stdout.
func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := runRootCapture(t, stdin, args...)
	return out, err
}

// runRootCapture is runRoot that also returns what was logged to stderr.
func runRootCapture(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Setenv("NO_COLOR", "1")

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	if args == nil {
		// nil makes cobra fall back to os.Args
		args = []string{}
	}
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func executeRoot(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runRoot(t, "", args...)
	require.NoError(t, err)
	return out
}

func writePage(t *testing.T, contents string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return dir, path
}

func TestRoot_RequiresPaths(t *testing.T) {
	_, err := runRoot(t, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--stdin")
}

func TestRoot_Write(t *testing.T) {
	dir, path := writePage(t, unsortedPage)

	out := executeRoot(t, "--write", dir)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sortedPage, string(data))
	assert.Contains(t, out, path)
}

func TestRoot_DefaultIsDryRun(t *testing.T) {
	dir, path := writePage(t, unsortedPage)

	out := executeRoot(t, dir)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, unsortedPage, string(data))
	assert.Contains(t, out, "+<div class=\"flex py-2 px-2\">hi</div>")
}

func TestRoot_CheckFormatted(t *testing.T) {
	dir, _ := writePage(t, unsortedPage)

	_, err := runRoot(t, "", "--check-formatted", dir)
	require.ErrorIs(t, err, runner.ErrCheckFailed)
	assert.True(t, isOnlyCheckFailure(err))

	clean, _ := writePage(t, sortedPage)
	executeRoot(t, "--check-formatted", clean)
}

func TestRoot_IgnoredFiles(t *testing.T) {
	dir, path := writePage(t, unsortedPage)

	executeRoot(t, "--write", "--ignored-files", path, dir)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, unsortedPage, string(data))
}

func TestRoot_Stdin(t *testing.T) {
	out, err := runRoot(t, unsortedPage, "--stdin")
	require.NoError(t, err)
	assert.Equal(t, sortedPage, out)
}

func TestRoot_StdinAllowDuplicates(t *testing.T) {
	input := `<i class="p-4 flex p-4">`

	out, err := runRoot(t, input, "--stdin")
	require.NoError(t, err)
	assert.Equal(t, `<i class="flex p-4">`, out)

	out, err = runRoot(t, input, "--stdin", "--allow-duplicates")
	require.NoError(t, err)
	assert.Equal(t, `<i class="flex p-4 p-4">`, out)
}

func TestRoot_StdinCustomRegex(t *testing.T) {
	out, err := runRoot(t, `tw="px-2 flex" class="px-2 flex"`, "--stdin", "--custom-regex", `tw="([^"]*)"`)
	require.NoError(t, err)
	assert.Equal(t, `tw="flex px-2" class="px-2 flex"`, out)
}

func TestRoot_InvalidCustomRegex(t *testing.T) {
	_, err := runRoot(t, "", "--stdin", "--custom-regex", `([`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to parse custom regex")
}

func TestRoot_ConfigFile(t *testing.T) {
	configPath := writeConfig(t, "twsort.yaml", "sortOrder:\n  - b\n  - a\n")

	out, err := runRoot(t, `<i class="a c b">`, "--stdin", "--config-file", configPath)
	require.NoError(t, err)
	assert.Equal(t, `<i class="b a c">`, out)
}

func TestRoot_MissingConfigFile(t *testing.T) {
	_, err := runRoot(t, "", "--stdin", "--config-file", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "make sure it exists")
}

func TestRoot_OutputCSSFile(t *testing.T) {
	cssPath := writeConfig(t, "out.css", ".zeta{color:red}.alpha{color:blue}")

	out, err := runRoot(t, `<i class="alpha zeta">`, "--stdin", "--output-css-file", cssPath)
	require.NoError(t, err)
	assert.Equal(t, `<i class="zeta alpha">`, out)
}

func TestRoot_Quiet(t *testing.T) {
	dir, _ := writePage(t, unsortedPage)

	out, err := runRoot(t, "", "--quiet", "--check-formatted", dir)
	require.ErrorIs(t, err, runner.ErrCheckFailed)
	assert.Empty(t, out)
}

func TestRoot_VerboseLogsPatternEntries(t *testing.T) {
	configPath := writeConfig(t, "twsort.yaml", "customRegex:\n  - '@apply ([^;]*);'\n")

	out, logged, err := runRootCapture(t, "@apply px-2 flex;", "--stdin", "--verbose", "--config-file", configPath)
	require.NoError(t, err)
	assert.Equal(t, "@apply flex px-2;", out)
	assert.Contains(t, logged, "Starting")
	assert.Regexp(t, `"patternEntries": ?2`, logged)
}
