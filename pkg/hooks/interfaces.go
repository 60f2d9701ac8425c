//go:generate mockgen -destination=./mocks/executor.go -package=mocks . Executor

package hooks

// Context provides deployment information to hook scripts.
type Context struct {
	Name      string
	Version   string
	Operation string // "deploy" or "purge"
	SourceDir string
	TargetDir string
}

// Executor runs a hook script with a deployment context. Deployments use
// hooks to let the application invalidate caches and recompile templates
// after its files changed on disk.
type Executor interface {
	Execute(scriptPath string, hctx *Context) error
}
