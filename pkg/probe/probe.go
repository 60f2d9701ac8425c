// Package probe detects hostile deployment environments, currently just
// directories backed by network filesystems where file-heavy operations
// crawl.
package probe

import (
	"strings"

	"github.com/glorpus-work/deployfs/internal/logger"
)

// diskFreeCommand is the diagnostic tool used to query the filesystem
// type backing a path.
const diskFreeCommand = "df"

// DefaultNetworkFSTypes are the filesystem types treated as
// network-backed.
var DefaultNetworkFSTypes = []string{
	"nfs", "nfs4", "cifs", "smbfs", "fuse.sshfs", "glusterfs", "lustre",
}

// Detector probes paths for network filesystems.
type Detector struct {
	runner  CommandRunner
	fsTypes []string
}

// NewDetector creates a detector using the given runner. An empty type
// list falls back to DefaultNetworkFSTypes.
func NewDetector(runner CommandRunner, fsTypes []string) *Detector {
	if len(fsTypes) == 0 {
		fsTypes = DefaultNetworkFSTypes
	}
	return &Detector{runner: runner, fsTypes: fsTypes}
}

// IsNetworkFilesystem reports whether path lives on a network filesystem.
// The diagnostic command restricts its report to the configured network
// types, so a successful exit with more than one output line (the header
// plus at least one data row) means the path matched.
//
// When no execution facility is available the probe fails open to false:
// callers use the result to avoid performance-degrading fallbacks, and a
// false negative is cheaper than always degrading. The command runs
// without a timeout; a hanging diagnostic blocks the caller.
func (d *Detector) IsNetworkFilesystem(path string) bool {
	if d.runner == nil || !d.runner.Available(diskFreeCommand) {
		logger.Debug("No execution facility for filesystem probe, assuming local", logger.Fields{
			"path": path,
		})
		return false
	}

	args := []string{"-P"}
	for _, fsType := range d.fsTypes {
		args = append(args, "-t", fsType)
	}
	args = append(args, path)

	output, err := d.runner.Run(diskFreeCommand, args...)
	if err != nil {
		return false
	}

	lines := 0
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			lines++
		}
	}
	return lines > 1
}
