package fsops

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRecursive(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "a.txt"), "a")
	writeFile(t, filepath.Join(base, "b.log"), "b")
	writeFile(t, filepath.Join(base, "sub", "c.txt"), "c")
	writeFile(t, filepath.Join(base, "sub", "deep", "d.txt"), "d")
	writeFile(t, filepath.Join(base, "other", "e.md"), "e")

	ops := NewDefault()
	matches := ops.MatchRecursive(base, "*.txt")

	assert.ElementsMatch(t, []string{
		filepath.Join(base, "a.txt"),
		filepath.Join(base, "sub", "c.txt"),
		filepath.Join(base, "sub", "deep", "d.txt"),
	}, matches)
}

func TestMatchRecursive_MatchesDirectoryNames(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "cache.tmp"), 0o755))
	writeFile(t, filepath.Join(base, "work.tmp"), "w")

	ops := NewDefault()
	matches := ops.MatchRecursive(base, "*.tmp")

	assert.ElementsMatch(t, []string{
		filepath.Join(base, "cache.tmp"),
		filepath.Join(base, "work.tmp"),
	}, matches)
}

func TestMatchRecursive_NoMatches(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "a.txt"), "a")

	ops := NewDefault()
	assert.Empty(t, ops.MatchRecursive(base, "*.conf"))
}

func TestMatchRecursive_MissingBase(t *testing.T) {
	ops := NewDefault()
	assert.Empty(t, ops.MatchRecursive(filepath.Join(t.TempDir(), "gone"), "*"))
}

func TestMatchRecursive_DoesNotFollowSymlinkDirectories(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping symlink test on Windows")
	}

	tmp := t.TempDir()
	outside := filepath.Join(tmp, "outside")
	writeFile(t, filepath.Join(outside, "hidden.txt"), "h")

	base := filepath.Join(tmp, "base")
	writeFile(t, filepath.Join(base, "visible.txt"), "v")
	require.NoError(t, os.Symlink(outside, filepath.Join(base, "linked")))

	ops := NewDefault()
	matches := ops.MatchRecursive(base, "*.txt")

	assert.ElementsMatch(t, []string{filepath.Join(base, "visible.txt")}, matches)
}

func TestMatchRecursive_TerminatesOnCyclicSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping symlink test on Windows")
	}

	base := t.TempDir()
	writeFile(t, filepath.Join(base, "sub", "f.txt"), "f")
	// A cycle back to the root must not loop the walk.
	require.NoError(t, os.Symlink(base, filepath.Join(base, "sub", "cycle")))

	ops := NewDefault()
	matches := ops.MatchRecursive(base, "*.txt")

	assert.ElementsMatch(t, []string{filepath.Join(base, "sub", "f.txt")}, matches)
}
