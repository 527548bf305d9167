package desktop

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAutostart(t *testing.T, execPath string) (*Autostart, string) {
	t.Helper()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	a := &Autostart{executable: func() (string, error) { return execPath, nil }}
	return a, filepath.Join(configHome, "autostart", "desklet.desktop")
}

func TestAutostart_EnableWritesEntry(t *testing.T) {
	ctx := context.Background()
	a, entry := newTestAutostart(t, "/usr/bin/desklet")

	path, err := a.Enable(ctx)
	require.NoError(t, err)
	assert.Equal(t, entry, path)

	data, err := os.ReadFile(entry)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[Desktop Entry]\n")
	assert.Contains(t, string(data), "Exec=/usr/bin/desklet run --autostart\n")
	assert.Contains(t, string(data), "X-GNOME-Autostart-enabled=true\n")

	st, err := a.Status(ctx)
	require.NoError(t, err)
	assert.True(t, st.Installed)
	assert.Equal(t, "/usr/bin/desklet run --autostart", st.Exec)
}

func TestAutostart_QuotesPathWithSpaces(t *testing.T) {
	a, entry := newTestAutostart(t, "/opt/my apps/desklet")

	_, err := a.Enable(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(entry)
	require.NoError(t, err)
	assert.Contains(t, string(data), `Exec="/opt/my apps/desklet" run --autostart`)
}

func TestAutostart_DisableIsIdempotent(t *testing.T) {
	ctx := context.Background()
	a, entry := newTestAutostart(t, "/usr/bin/desklet")

	require.NoError(t, a.Disable(ctx))

	_, err := a.Enable(ctx)
	require.NoError(t, err)
	require.NoError(t, a.Disable(ctx))
	assert.NoFileExists(t, entry)
	require.NoError(t, a.Disable(ctx))

	st, err := a.Status(ctx)
	require.NoError(t, err)
	assert.False(t, st.Installed)
	assert.Equal(t, entry, st.EntryPath)
}
