//go:generate mockgen -destination=./mocks/deploy.go -package=mocks . TreeOps,NetProbe,HookRunner,BundleExtractor

package deploy

import (
	"context"

	"github.com/glorpus-work/deployfs/pkg/hooks"
)

// TreeOps is the subset of the filesystem toolkit used by the deployer.
type TreeOps interface {
	EnsureDir(path string, denyAccess bool) bool
	CopyTree(srcDir, dstDir string, exclude bool) error
	DeleteTree(dir string, deleteRoot bool) bool
}

// NetProbe detects network-backed deployment targets.
type NetProbe interface {
	IsNetworkFilesystem(path string) bool
}

// HookRunner executes post-deploy hook scripts.
type HookRunner interface {
	Execute(scriptPath string, hctx *hooks.Context) error
}

// BundleExtractor unpacks deployment bundles into a staging directory.
type BundleExtractor interface {
	ExtractBundle(ctx context.Context, bundlePath, destDir string) error
}

// Event represents a simple progress notification.
type Event struct {
	Phase string // prepare|copy|hook|done|error
	Msg   string
}

// Events carries callbacks for progress notifications.
type Events struct {
	OnEvent func(Event)
}

// Request describes a single deployment.
type Request struct {
	// Name identifies the component being deployed, e.g. a plugin name.
	Name string
	// Version of the component. Validated against MinVersion when set.
	Version string
	// MinVersion is the oldest version accepted for deployment.
	MinVersion string

	// SourceDir and BundlePath are mutually exclusive: deploy either a
	// directory tree or an archived bundle.
	SourceDir  string
	BundlePath string

	// TargetDir is where the files end up.
	TargetDir string

	// DataOnly skips files with excluded extensions so a data deployment
	// never overwrites application logic.
	DataOnly bool

	// Purge clears the target's existing contents first, keeping the
	// directory itself.
	Purge bool

	// HookScript, when set, runs after a successful copy.
	HookScript string
}

// Result reports what a deployment did.
type Result struct {
	// Target is the deployed-to directory.
	Target string
	// NetworkFS is set when the target lives on a network filesystem.
	NetworkFS bool
}
