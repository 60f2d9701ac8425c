package probe

import "os/exec"

// ExecRunner executes commands through os/exec.
type ExecRunner struct{}

// NewRunner returns the default command runner implementation.
func NewRunner() *ExecRunner {
	return &ExecRunner{}
}

// Available reports whether name resolves to an executable in PATH.
func (r *ExecRunner) Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Run executes a command and returns its combined output.
func (r *ExecRunner) Run(name string, args ...string) (string, error) {
	output, err := exec.Command(name, args...).CombinedOutput()
	return string(output), err
}
