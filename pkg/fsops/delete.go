package fsops

import (
	"os"
	"path/filepath"
)

// DeleteTree removes everything under dir, and dir itself when deleteRoot
// is set. Files and symlinks are unlinked directly; symlinked directories
// are removed as links and never entered. Directories are removed
// deepest-first after their contents are gone.
//
// The operation is best-effort: every individual removal failure is
// suppressed. The return value is false if dir could not be enumerated or
// if any removal failed; callers may ignore it.
func (o *Ops) DeleteTree(dir string, deleteRoot bool) bool {
	ok := true
	scan := []string{dir}
	var dirs []string

	for n := 0; len(scan) > 0; n++ {
		cur := scan[len(scan)-1]
		scan = scan[:len(scan)-1]

		entries, err := os.ReadDir(cur)
		if err != nil {
			if n == 0 {
				return false
			}
			ok = false
			continue
		}
		for _, entry := range entries {
			full := filepath.Join(cur, entry.Name())
			if entry.IsDir() {
				scan = append(scan, full)
				dirs = append(dirs, full)
				continue
			}
			if err := os.Remove(full); err != nil {
				ok = false
			}
		}
	}

	// Children were always discovered after their parent, so walking the
	// list backwards removes the deepest directories first.
	for i := len(dirs) - 1; i >= 0; i-- {
		if err := os.Remove(dirs[i]); err != nil {
			ok = false
		}
	}

	if deleteRoot {
		if err := os.Remove(dir); err != nil {
			ok = false
		}
	}
	return ok
}
