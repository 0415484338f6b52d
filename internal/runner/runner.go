// Package runner applies a twsort engine to files and reports the results.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yacobolo/twsort"
	"github.com/yacobolo/twsort/internal/report"
)

// ErrCheckFailed is returned in check mode when a file has unsorted classes.
var ErrCheckFailed = errors.New("found unsorted classes")

// stdinName labels stdin in diffs and reports.
const stdinName = "<stdin>"

// WriteMode selects what happens to sorted output.
type WriteMode int

const (
	ToFile         WriteMode = iota // rewrite files in place
	DryRun                          // print a diff of each changed file
	ToConsole                       // print each file with sorted classes
	ToStdOut                        // print the sorted stdin body
	CheckFormatted                  // report unsorted files and fail
)

func (m WriteMode) String() string {
	switch m {
	case ToFile:
		return "write"
	case DryRun:
		return "dry-run"
	case ToConsole:
		return "print"
	case ToStdOut:
		return "stdout"
	case CheckFormatted:
		return "check-formatted"
	default:
		return fmt.Sprintf("WriteMode(%d)", int(m))
	}
}

// Flags are the mode-selecting command line switches.
type Flags struct {
	DryRun bool
	Write  bool
	Check  bool
	Print  bool
	Stdin  bool
}

// ResolveWriteMode picks the mode for a set of flags. The first set flag in
// the order dry-run, write, check, print, stdin wins; none selects DryRun.
func ResolveWriteMode(f Flags) WriteMode {
	switch {
	case f.DryRun:
		return DryRun
	case f.Write:
		return ToFile
	case f.Check:
		return CheckFormatted
	case f.Print:
		return ToConsole
	case f.Stdin:
		return ToStdOut
	default:
		return DryRun
	}
}

// Config controls a run.
type Config struct {
	Engine   *twsort.Engine
	Mode     WriteMode
	Jobs     int // Files processed at once; <= 0 selects GOMAXPROCS
	Reporter *report.Reporter
	Logger   *zap.Logger
}

// Result contains the outcome of a run
type Result struct {
	FilesScanned     int      // Files read successfully
	FilesWithClasses int      // Files with at least one class string
	Changed          []string // Files whose sorted output differs, in input order
}

type outcome struct {
	original string
	sorted   string
	matched  bool
	written  bool
	err      error
}

func (o outcome) changed() bool {
	return o.matched && o.original != o.sorted
}

// Run processes paths concurrently and reports them in input order. Errors
// for individual files do not stop the others; they are returned together.
// In CheckFormatted mode ErrCheckFailed is part of the returned error when
// any file is unsorted.
func Run(ctx context.Context, cfg Config, paths []string) (*Result, error) {
	log := cfg.logger()

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]outcome, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = cfg.processFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var (
		errs   error
		result = &Result{}
	)
	for i, path := range paths {
		o := outcomes[i]
		if o.err != nil {
			log.Warn("Skipping file", zap.String("path", path), zap.Error(o.err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, o.err))
			continue
		}

		result.FilesScanned++
		if !o.matched {
			log.Debug("No class strings", zap.String("path", path))
			continue
		}
		result.FilesWithClasses++
		if o.changed() {
			result.Changed = append(result.Changed, path)
		}
		log.Debug("Processed", zap.String("path", path), zap.Bool("changed", o.changed()))

		if err := cfg.reportFile(path, o); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	if cfg.Mode != ToConsole {
		cfg.Reporter.PrintSummary(report.Summary{
			FilesScanned: result.FilesScanned,
			FilesChanged: len(result.Changed),
			Check:        cfg.Mode == CheckFormatted,
		})
	}

	if cfg.Mode == CheckFormatted && len(result.Changed) > 0 {
		errs = multierr.Append(errs, ErrCheckFailed)
	}
	return result, errs
}

// RunStdin sorts the body read from r. Check and dry-run modes report on
// the reporter; every other mode writes the sorted body to w.
func RunStdin(cfg Config, r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	original := string(data)
	sorted := cfg.Engine.Rewrite(original)

	switch cfg.Mode {
	case CheckFormatted:
		if sorted != original {
			cfg.Reporter.PrintUnformatted(stdinName)
			return ErrCheckFailed
		}
		return nil
	case DryRun:
		return cfg.Reporter.PrintDiff(stdinName, original, sorted)
	default:
		if _, err := io.WriteString(w, sorted); err != nil {
			return fmt.Errorf("writing stdout: %w", err)
		}
		return nil
	}
}

func (cfg Config) processFile(path string) outcome {
	info, err := os.Stat(path)
	if err != nil {
		return outcome{err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return outcome{err: err}
	}

	o := outcome{original: string(data)}
	if !cfg.Engine.HasMatches(o.original) {
		return o
	}
	o.matched = true
	o.sorted = cfg.Engine.Rewrite(o.original)

	if cfg.Mode == ToFile && o.changed() {
		if err := os.WriteFile(path, []byte(o.sorted), info.Mode().Perm()); err != nil {
			return outcome{err: err}
		}
		o.written = true
	}
	return o
}

func (cfg Config) reportFile(path string, o outcome) error {
	switch cfg.Mode {
	case ToFile:
		if o.written {
			cfg.Reporter.PrintWritten(path)
		}
	case DryRun:
		return cfg.Reporter.PrintDiff(path, o.original, o.sorted)
	case ToConsole:
		cfg.Reporter.PrintContents(path, o.sorted)
	case CheckFormatted:
		if o.changed() {
			cfg.Reporter.PrintUnformatted(path)
		}
	}
	return nil
}

func (cfg Config) logger() *zap.Logger {
	if cfg.Logger == nil {
		return zap.NewNop()
	}
	return cfg.Logger
}
