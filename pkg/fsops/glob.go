package fsops

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchRecursive collects every entry under baseDir whose name matches
// pattern, in baseDir itself and in every reachable subdirectory.
// Subdirectories that are symbolic links are never followed, so cyclic
// links cannot cause the walk to loop.
//
// Matches from a directory always precede matches from its
// subdirectories, but the order across sibling subtrees depends on
// directory enumeration and must not be relied on. Enumeration failures
// are swallowed.
func (o *Ops) MatchRecursive(baseDir, pattern string) []string {
	var matches []string

	queue := []string{baseDir}
	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if matched, err := doublestar.Match(pattern, entry.Name()); err == nil && matched {
				matches = append(matches, filepath.Join(dir, entry.Name()))
			}
			// ReadDir does not resolve symlinks, so a linked directory
			// reports IsDir() == false and is never queued.
			if entry.IsDir() {
				queue = append(queue, filepath.Join(dir, entry.Name()))
			}
		}
	}
	return matches
}
