package fsops

import (
	"os"
	"path/filepath"
)

// EnsureDir creates path and all missing ancestors, then makes sure the
// directory is writable. If it is not, permissions are escalated in two
// steps only: owner-writable, then group-writable. World-writable modes
// are never attempted. When denyAccess is true an access-deny marker is
// written into the directory without overwriting an existing one.
//
// Creation and chmod failures are swallowed; the return value reports
// whether the directory ended up writable. Callers that need a guarantee
// must check it.
func (o *Ops) EnsureDir(path string, denyAccess bool) bool {
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		_ = os.MkdirAll(path, DirModeDefault)
	}

	ok := isWritable(path)
	if !ok {
		for _, mode := range []os.FileMode{DirModeDefault, DirModeGroup} {
			_ = os.Chmod(path, mode)
			if ok = isWritable(path); ok {
				break
			}
		}
	}

	if denyAccess {
		o.WriteAccessMarker(path, false)
	}
	return ok
}

// WriteAccessMarker writes the policy's access-deny marker into path. An
// existing marker is left alone unless overwrite is set. Returns false if
// the marker could not be written; the failure is otherwise silent.
func (o *Ops) WriteAccessMarker(path string, overwrite bool) bool {
	marker := filepath.Join(path, o.policy.MarkerName)
	if !overwrite {
		if _, err := os.Lstat(marker); err == nil {
			return true
		}
	}
	if err := os.WriteFile(marker, []byte(o.policy.MarkerContent), FileModeDefault); err != nil {
		return false
	}
	return true
}

// isWritable probes dir by creating and removing a scratch file. Mode bits
// alone lie under ACLs and on non-POSIX filesystems.
func isWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".deployfs-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}
