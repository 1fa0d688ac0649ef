package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuuhLKT/warden/internal/filesystem"
)

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	store := NewStore(fs)

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, Default(), loaded)

	// The defaults were persisted so the next load reads a real file.
	data, err := fs.ReadFile("/home/user/.config/warden/settings.json")
	require.NoError(t, err)

	var onDisk Settings
	require.NoError(t, json.Unmarshal(data, &onDisk))
	require.Equal(t, Default(), onDisk)
}

func TestLoadCorruptFileResetsToDefaults(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/home/user/.config/warden/settings.json", []byte("{not json"))
	store := NewStore(fs)

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, Default(), loaded)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	store := NewStore(fs)

	saved := Settings{
		DefaultIDE:    "cursor",
		IDECommand:    "cursor",
		WorkspacePath: "/workspace",
		Theme:         "dark",
		DefaultSuffix: "local",
		ScanDepth:     3,
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, saved, loaded)
}

func TestLoadRepairsInvalidFields(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/home/user/.config/warden/settings.json",
		[]byte(`{"default_ide":"zed","scan_depth":0,"default_suffix":""}`))
	store := NewStore(fs)

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, 2, loaded.ScanDepth)
	require.Equal(t, "test", loaded.DefaultSuffix)
}

func TestEditorCommand(t *testing.T) {
	s := Settings{DefaultIDE: "vscode", IDECommand: ""}
	require.Equal(t, "code", s.EditorCommand())

	s.IDECommand = "code-insiders"
	require.Equal(t, "code-insiders", s.EditorCommand())

	// Unknown IDE names fall back to the default editor.
	s = Settings{DefaultIDE: "emacs"}
	require.Equal(t, "zed", s.EditorCommand())
}

func TestPathCreatesConfigDirectory(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	store := NewStore(fs)

	path, err := store.Path()
	require.NoError(t, err)
	require.Equal(t, "/home/user/.config/warden/settings.json", path)
	require.True(t, fs.Exists("/home/user/.config/warden"))
}
