package filesystem

import (
	"io/fs"
)

// FileSystem provides an abstraction over file operations for testability.
// The workspace scanner and the settings store are built entirely on it so
// both can run against the in-memory mock in tests.
type FileSystem interface {
	// File operations
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error
	Remove(path string) error

	// Directory operations
	ReadDir(path string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Path operations
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) bool
	Getwd() (string, error)

	// UserConfigDir returns the per-user configuration directory
	// (settings.json lives under it).
	UserConfigDir() (string, error)

	// File walking
	WalkDir(root string, fn fs.WalkDirFunc) error

	// Glob patterns
	Glob(pattern string) ([]string, error)
}
