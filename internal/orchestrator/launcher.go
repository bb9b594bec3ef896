package orchestrator

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"godot-cli/internal/interfaces"
)

// Editor invocation shapes
var (
	editArgs = []string{"-e", "--path"}
	runArgs  = []string{"--path"}
)

// ProcessLauncher implements the Launcher interface with os/exec
type ProcessLauncher struct {
	stdout io.Writer
	stderr io.Writer
}

// NewProcessLauncher creates a launcher whose children inherit the process output streams
func NewProcessLauncher() interfaces.Launcher {
	return &ProcessLauncher{stdout: os.Stdout, stderr: os.Stderr}
}

// Launch starts executable with args and returns without waiting for it
func (l *ProcessLauncher) Launch(executable string, args ...string) (int, error) {
	cmd := exec.Command(executable, args...)
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start %s: %w", executable, err)
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		return pid, fmt.Errorf("failed to release process %d: %w", pid, err)
	}
	return pid, nil
}

// editCommand returns the editor arguments that open dir for editing
func editCommand(dir string) []string {
	return append(append([]string{}, editArgs...), dir)
}

// runCommand returns the editor arguments that run the project in dir
func runCommand(dir string) []string {
	return append(append([]string{}, runArgs...), dir)
}
