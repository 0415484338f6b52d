// Package files discovers the files twsort rewrites.
package files

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ignoreFileNames are read from every walked directory.
var ignoreFileNames = []string{".gitignore", ".ignore"}

// Stats tracks discovery statistics
type Stats struct {
	FilesDiscovered int // Regular files found under the start paths
	FilesSkipped    int // Files dropped by the ignored-files list
}

// IgnoreSet holds files the user asked to leave alone. Plain entries are
// canonical absolute paths; entries with glob metacharacters are doublestar
// patterns matched against the walked path.
type IgnoreSet struct {
	paths map[string]struct{}
	globs []string
}

// NewIgnoreSet canonicalises the given paths. Paths that do not exist are
// dropped since they cannot match a discovered file.
func NewIgnoreSet(entries []string) *IgnoreSet {
	set := &IgnoreSet{paths: make(map[string]struct{}, len(entries))}
	for _, entry := range entries {
		if entry == "" {
			continue
		}
		if isGlob(entry) {
			set.globs = append(set.globs, filepath.ToSlash(entry))
			continue
		}
		if canonical, ok := canonicalize(entry); ok {
			set.paths[canonical] = struct{}{}
		}
	}
	return set
}

// Len returns the number of usable entries.
func (s *IgnoreSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.paths) + len(s.globs)
}

// Contains reports whether path is covered by the set.
func (s *IgnoreSet) Contains(path string) bool {
	if s.Len() == 0 {
		return false
	}

	slashed := filepath.ToSlash(filepath.Clean(path))
	for _, pattern := range s.globs {
		if ok, _ := doublestar.Match(pattern, slashed); ok {
			return true
		}
	}

	if len(s.paths) == 0 {
		return false
	}
	canonical, ok := canonicalize(path)
	if !ok {
		return false
	}
	_, found := s.paths[canonical]
	return found
}

func isGlob(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// canonicalize returns the absolute, symlink-free form of path.
func canonicalize(path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", false
	}
	return resolved, true
}

// Discover walks every start path and returns the regular files to process,
// deduplicated and in walk order. Hidden entries and anything matched by a
// .gitignore or .ignore file below a start path are not descended into.
// A start path naming a file is always returned unless it is in ignored.
func Discover(starts []string, ignored *IgnoreSet) ([]string, Stats, error) {
	var (
		result []string
		stats  Stats
		seen   = make(map[string]bool)
	)

	add := func(path string) {
		if seen[path] {
			return
		}
		seen[path] = true
		stats.FilesDiscovered++
		if ignored.Contains(path) {
			stats.FilesSkipped++
			return
		}
		result = append(result, path)
	}

	for _, start := range starts {
		info, err := os.Stat(start)
		if err != nil {
			return nil, stats, err
		}
		if !info.IsDir() {
			add(filepath.Clean(start))
			continue
		}

		w := walker{root: filepath.Clean(start), matchers: make(map[string]*ignore.GitIgnore)}
		if err := w.walk(add); err != nil {
			return nil, stats, err
		}
	}

	return result, stats, nil
}

type walker struct {
	root     string
	matchers map[string]*ignore.GitIgnore // directory -> compiled ignore files
}

func (w *walker) walk(add func(string)) error {
	return filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path != w.root {
			if isHidden(d.Name()) || w.ignored(path, d.IsDir()) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() {
			w.loadIgnoreFiles(path)
			return nil
		}
		if d.Type().IsRegular() {
			add(path)
		}
		return nil
	})
}

// loadIgnoreFiles compiles the ignore files of dir, if any. Missing or
// unreadable files are treated as empty.
func (w *walker) loadIgnoreFiles(dir string) {
	var lines []string
	for _, name := range ignoreFileNames {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		lines = append(lines, strings.Split(string(data), "\n")...)
	}
	if len(lines) > 0 {
		w.matchers[dir] = ignore.CompileIgnoreLines(lines...)
	}
}

// ignored checks path against the ignore files of every ancestor directory
// up to the walk root.
func (w *walker) ignored(path string, isDir bool) bool {
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		if gi := w.matchers[dir]; gi != nil {
			rel, err := filepath.Rel(dir, path)
			if err == nil {
				rel = filepath.ToSlash(rel)
				if gi.MatchesPath(rel) || (isDir && gi.MatchesPath(rel+"/")) {
					return true
				}
			}
		}
		if dir == w.root || dir == filepath.Dir(dir) {
			return false
		}
	}
}

func isHidden(name string) bool {
	return len(name) > 1 && name[0] == '.'
}
