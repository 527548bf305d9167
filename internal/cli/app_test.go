package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/desklet/internal/infrastructure/config"
)

func newTestApp(t *testing.T, fileLog bool) *App {
	t.Helper()
	t.Setenv("DESKLET_HOME", t.TempDir())
	t.Setenv("DESKLET_LOG_LEVEL", "")
	cfg := config.DefaultConfig()
	cfg.Logging.EnableFileLog = fileLog
	app := &App{Config: cfg, logCleanup: func() {}}
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestEnableFileLog_LogsOnlyToFile(t *testing.T) {
	tests := []struct {
		name     string
		fileLog  bool
		toStderr bool
		want     bool
	}{
		{"headless with file log", true, false, true},
		{"foreground tees stderr", true, true, false},
		{"file log disabled", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, tt.fileLog)
			require.NoError(t, app.EnableFileLog("", tt.toStderr))
			assert.Equal(t, tt.want, app.LogsOnlyToFile())
		})
	}
}
