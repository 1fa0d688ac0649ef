package ide

// OpenCall records one Open invocation.
type OpenCall struct {
	Command string
	Path    string
}

// MockLauncher implements Launcher in memory for testing.
type MockLauncher struct {
	// OpenCalls records every Open invocation in order.
	OpenCalls []OpenCall

	// OpenError simulates a launch failure.
	OpenError error
}

var _ Launcher = (*MockLauncher)(nil)

// NewMockLauncher creates an empty MockLauncher.
func NewMockLauncher() *MockLauncher {
	return &MockLauncher{}
}

func (l *MockLauncher) Open(command, path string) error {
	l.OpenCalls = append(l.OpenCalls, OpenCall{Command: command, Path: path})
	if l.OpenError != nil {
		return l.OpenError
	}
	return nil
}
