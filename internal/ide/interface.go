package ide

// Launcher provides an abstraction over opening a project folder in an editor
type Launcher interface {
	// Open spawns the editor command with the path as its only argument.
	// The editor runs detached; Open returns once the process started.
	Open(command, path string) error
}
