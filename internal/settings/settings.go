package settings

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/yuuhLKT/warden/internal/filesystem"
	"github.com/yuuhLKT/warden/internal/models"
)

// Settings holds the persisted user preferences. They live in a JSON file
// under the per-user config directory and survive across invocations.
type Settings struct {
	DefaultIDE    string `json:"default_ide"`
	IDECommand    string `json:"ide_command"`
	WorkspacePath string `json:"workspace_path"`
	Theme         string `json:"theme"`
	DefaultSuffix string `json:"default_suffix"`
	ScanDepth     int    `json:"scan_depth"`

	// SelectedProject lives here instead of the project store; selection
	// is session state, not project data.
	SelectedProject string `json:"selected_project,omitempty"`
}

// Default returns the settings used before the user has saved anything.
func Default() Settings {
	return Settings{
		DefaultIDE:    string(models.IDEZed),
		IDECommand:    models.IDEConfigs[models.IDEZed].Command,
		WorkspacePath: "",
		Theme:         "system",
		DefaultSuffix: models.DefaultURLSuffix,
		ScanDepth:     models.DefaultScanDepth,
	}
}

// EditorCommand resolves the command used to open projects: the explicit
// override wins, otherwise the default IDE's launch command.
func (s Settings) EditorCommand() string {
	if s.IDECommand != "" {
		return s.IDECommand
	}
	return models.IDEConfigs[models.CoerceIDE(s.DefaultIDE)].Command
}

// Store loads and saves settings through the filesystem boundary.
type Store struct {
	fs filesystem.FileSystem
}

// NewStore creates a settings store.
func NewStore(fs filesystem.FileSystem) *Store {
	return &Store{fs: fs}
}

// Path returns the settings file location, creating the parent directory.
func (s *Store) Path() (string, error) {
	configDir, err := s.fs.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}

	dir := filepath.Join(configDir, "warden")
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}

	return filepath.Join(dir, "settings.json"), nil
}

// Load reads the settings file. A missing or corrupt file yields the
// defaults, which are written back so the next load finds a valid file.
func (s *Store) Load() (Settings, error) {
	path, err := s.Path()
	if err != nil {
		return Default(), err
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return s.resetToDefault()
	}

	var loaded Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		return s.resetToDefault()
	}

	if loaded.ScanDepth < 1 {
		loaded.ScanDepth = models.DefaultScanDepth
	}
	if loaded.DefaultSuffix == "" {
		loaded.DefaultSuffix = models.DefaultURLSuffix
	}

	return loaded, nil
}

func (s *Store) resetToDefault() (Settings, error) {
	defaults := Default()
	if err := s.Save(defaults); err != nil {
		return defaults, err
	}
	return defaults, nil
}

// Save writes the settings file, pretty-printed like the original config.
func (s *Store) Save(settings Settings) error {
	path, err := s.Path()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := s.fs.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}

	return nil
}
