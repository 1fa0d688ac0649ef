package ide

import (
	"fmt"
	"os/exec"
)

// OSLauncher implements Launcher by spawning the editor process.
type OSLauncher struct{}

var _ Launcher = (*OSLauncher)(nil)

// NewOSLauncher creates a Launcher backed by os/exec.
func NewOSLauncher() *OSLauncher {
	return &OSLauncher{}
}

func (l *OSLauncher) Open(command, path string) error {
	if command == "" {
		return fmt.Errorf("editor command cannot be empty")
	}

	cmd := exec.Command(command, path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open IDE: %w", err)
	}

	// Reap the process in the background so it does not linger as a zombie.
	go func() { _ = cmd.Wait() }()

	return nil
}
