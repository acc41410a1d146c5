package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigDirPrecedence(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/roster-conf")

	// Flag wins over env.
	got, err := ResolveConfigDir("/flag/conf")
	require.NoError(t, err)
	assert.Equal(t, "/flag/conf", got)

	// Env wins when flag is empty.
	got, err = ResolveConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, "/env/roster-conf", got)
}

func TestResolveConfigDirLinuxXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG resolution is Linux-only")
	}
	t.Setenv(EnvConfigDir, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	got, err := ResolveConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "roster"), got)
}

func TestResolveConfigDirHomeFallback(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("home fallback path is Linux-only")
	}
	t.Setenv(EnvConfigDir, "")
	t.Setenv("XDG_CONFIG_HOME", "")

	orig := platformDir.homeDir
	platformDir.homeDir = func() (string, error) { return "/home/tester", nil }
	t.Cleanup(func() { platformDir.homeDir = orig })

	got, err := ResolveConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".config", "roster"), got)
}

func TestResolveDataFilePrecedence(t *testing.T) {
	t.Setenv(EnvDataFile, "/env/users.json")

	got, err := ResolveDataFile("/flag/users.json", "/cfg/users.json")
	require.NoError(t, err)
	assert.Equal(t, "/flag/users.json", got)

	got, err = ResolveDataFile("", "/cfg/users.json")
	require.NoError(t, err)
	assert.Equal(t, "/cfg/users.json", got)

	got, err = ResolveDataFile("", "")
	require.NoError(t, err)
	assert.Equal(t, "/env/users.json", got)
}

func TestResolveDataFileDefaultsToCWD(t *testing.T) {
	t.Setenv(EnvDataFile, "")

	got, err := ResolveDataFile("", "")
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, DefaultDataFileName), got)
}
