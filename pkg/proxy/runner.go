package proxy

import (
	"os"
	"os/exec"
)

// Runner abstracts child-process execution so tests can fake the
// process boundary without launching ssh, pgrep, or pkill.
type Runner interface {
	// Run executes name with a discrete argument vector and returns its
	// combined stdout/stderr. A non-zero exit status (or a failure to
	// start the command at all) is reported as an error.
	Run(name string, args ...string) ([]byte, error)

	// RunShell executes a shell pipeline with stdout and stderr attached
	// to the current process. Used only by the verbose diagnostic dump.
	RunShell(script string) error
}

// ExecRunner is the production Runner backed by os/exec. Every
// invocation blocks until the child exits; no timeout is applied, so a
// hanging ssh (e.g. an unexpected host key prompt) blocks the whole
// command.
type ExecRunner struct{}

func (ExecRunner) Run(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

func (ExecRunner) RunShell(script string) error {
	cmd := exec.Command("sh", "-c", script)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
