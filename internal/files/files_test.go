package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files (path -> contents) below root.
func writeTree(t *testing.T, root string, tree map[string]string) {
	t.Helper()
	for name, contents := range tree {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	}
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	rel := make([]string, len(paths))
	for i, p := range paths {
		r, err := filepath.Rel(root, p)
		require.NoError(t, err)
		rel[i] = filepath.ToSlash(r)
	}
	return rel
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"index.html":          "",
		"src/app.jsx":         "",
		"src/view.html":       "",
		"build/out.html":      "",
		"node_modules/x.js":   "",
		".hidden/page.html":   "",
		".env":                "",
		"src/gen/skip.html":   "",
		"src/keep.html":       "",
		".gitignore":          "build/\nnode_modules\n",
		"src/.ignore":         "gen/\n",
		"docs/notes/deep.txt": "",
	})

	got, stats, err := Discover([]string{root}, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"index.html",
		"src/app.jsx",
		"src/view.html",
		"src/keep.html",
		"docs/notes/deep.txt",
	}, relPaths(t, root, got))
	assert.Equal(t, 5, stats.FilesDiscovered)
	assert.Zero(t, stats.FilesSkipped)
}

func TestDiscover_StartFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".gitignore": "*.html\n",
		"page.html":  "",
	})

	// An explicit file is returned even when an ignore file would skip it.
	got, _, err := Discover([]string{filepath.Join(root, "page.html")}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "page.html")}, got)
}

func TestDiscover_Deduplicates(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.html":     "",
		"sub/b.html": "",
	})

	got, stats, err := Discover([]string{root, filepath.Join(root, "sub"), filepath.Join(root, "a.html")}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.html", "sub/b.html"}, relPaths(t, root, got))
	assert.Equal(t, 2, stats.FilesDiscovered)
}

func TestDiscover_MissingStart(t *testing.T) {
	_, _, err := Discover([]string{filepath.Join(t.TempDir(), "nope")}, nil)
	require.Error(t, err)
}

func TestDiscover_IgnoredFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.html":        "",
		"b.html":        "",
		"vendor/c.html": "",
		"vendor/d.js":   "",
	})

	ignored := NewIgnoreSet([]string{
		filepath.Join(root, "a.html"),
		filepath.ToSlash(root) + "/vendor/**/*.html",
		filepath.Join(root, "missing.html"),
	})
	require.Equal(t, 2, ignored.Len())

	got, stats, err := Discover([]string{root}, ignored)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.html", "vendor/d.js"}, relPaths(t, root, got))
	assert.Equal(t, 4, stats.FilesDiscovered)
	assert.Equal(t, 2, stats.FilesSkipped)
}

func TestIgnoreSet_Contains(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"dir/page.html": ""})
	page := filepath.Join(root, "dir", "page.html")

	tests := []struct {
		name    string
		entries []string
		path    string
		want    bool
	}{
		{name: "empty set", entries: nil, path: page, want: false},
		{name: "exact path", entries: []string{page}, path: page, want: true},
		{name: "unclean path", entries: []string{filepath.Join(root, "dir", "..", "dir", "page.html")}, path: page, want: true},
		{name: "other file", entries: []string{filepath.Join(root, "other.html")}, path: page, want: false},
		{name: "glob", entries: []string{filepath.ToSlash(root) + "/**/*.html"}, path: page, want: true},
		{name: "glob miss", entries: []string{filepath.ToSlash(root) + "/**/*.jsx"}, path: page, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewIgnoreSet(tt.entries).Contains(tt.path))
		})
	}
}

func TestIgnoreSet_Symlink(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"real/page.html": ""})
	link := filepath.Join(root, "link")
	if err := os.Symlink(filepath.Join(root, "real"), link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	set := NewIgnoreSet([]string{filepath.Join(link, "page.html")})
	assert.True(t, set.Contains(filepath.Join(root, "real", "page.html")))
}

func TestNilIgnoreSet(t *testing.T) {
	var set *IgnoreSet
	assert.Zero(t, set.Len())
	assert.False(t, set.Contains("anything"))
}
