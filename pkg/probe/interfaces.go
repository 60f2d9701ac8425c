//go:generate mockgen -destination=./mocks/runner.go -package=mocks . CommandRunner

package probe

// CommandRunner abstracts process execution so the probe can degrade
// gracefully on systems without an exec facility and stay testable.
type CommandRunner interface {
	// Available reports whether the named command can be executed.
	Available(name string) bool
	// Run executes a command and returns its combined output.
	Run(name string, args ...string) (string, error)
}
