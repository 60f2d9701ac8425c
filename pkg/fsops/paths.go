package fsops

import "path/filepath"

// Canonicalize returns the canonical absolute form of path, with symlinks
// resolved, if the path exists. A path that does not exist (or cannot be
// resolved) is returned unchanged. Canonicalize never fails.
func Canonicalize(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return path
	}
	return abs
}
