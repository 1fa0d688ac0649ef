package ide

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockLauncherRecordsCalls(t *testing.T) {
	mock := NewMockLauncher()

	err := mock.Open("zed", "/workspace/my-app")
	require.NoError(t, err)

	err = mock.Open("code", "/workspace/other")
	require.NoError(t, err)

	require.Len(t, mock.OpenCalls, 2)
	require.Equal(t, OpenCall{Command: "zed", Path: "/workspace/my-app"}, mock.OpenCalls[0])
	require.Equal(t, OpenCall{Command: "code", Path: "/workspace/other"}, mock.OpenCalls[1])
}

func TestMockLauncherErrorHook(t *testing.T) {
	mock := NewMockLauncher()
	mock.OpenError = errors.New("command not found")

	err := mock.Open("emacs", "/workspace/my-app")
	require.ErrorContains(t, err, "command not found")

	// The call is still recorded.
	require.Len(t, mock.OpenCalls, 1)
}

func TestOSLauncherRejectsEmptyCommand(t *testing.T) {
	launcher := NewOSLauncher()

	err := launcher.Open("", "/workspace/my-app")
	if err == nil {
		t.Fatal("expected error for empty command")
	}
}
