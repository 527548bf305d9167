// Package desktop provides XDG desktop integration for the desklet.
package desktop

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bnema/desklet/internal/application/port"
	"github.com/bnema/desklet/internal/logging"
)

const (
	appName          = "desklet"
	autostartDirName = "autostart"
	desktopFileName  = "desklet.desktop"
	filePerm         = 0o644
	dirPerm          = 0o755
)

// autostartTemplate is the freedesktop.org desktop entry format.
// %s placeholder for executable path.
const autostartTemplate = `[Desktop Entry]
Type=Application
Name=GIF Desklet
Comment=Animated desktop overlay
Exec=%s run --autostart
Terminal=false
Hidden=false
NoDisplay=false
X-GNOME-Autostart-enabled=true
`

// Autostart implements port.AutostartRegistrar with an XDG autostart entry.
type Autostart struct {
	executable func() (string, error)
}

var _ port.AutostartRegistrar = (*Autostart)(nil)

// NewAutostart creates the registrar for the running executable.
func NewAutostart() *Autostart {
	return &Autostart{executable: getExecutablePath}
}

// getAutostartDir returns $XDG_CONFIG_HOME/autostart.
func getAutostartDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, autostartDirName), nil
}

func getEntryPath() (string, error) {
	dir, err := getAutostartDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, desktopFileName), nil
}

// getExecutablePath returns the path to the desklet executable.
func getExecutablePath() (string, error) {
	execPath, err := os.Executable()
	if err == nil {
		if resolved, symlinkErr := filepath.EvalSymlinks(execPath); symlinkErr == nil {
			execPath = resolved
		}
		return execPath, nil
	}

	path, err := exec.LookPath(appName)
	if err != nil {
		return "", fmt.Errorf("cannot find %s executable: %w", appName, err)
	}
	return path, nil
}

// Enable writes the autostart entry, replacing an existing one.
func (a *Autostart) Enable(ctx context.Context) (string, error) {
	log := logging.FromContext(ctx)

	path, err := getEntryPath()
	if err != nil {
		return "", err
	}
	execPath, err := a.executable()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return "", fmt.Errorf("create autostart dir: %w", err)
	}
	content := fmt.Sprintf(autostartTemplate, quoteExec(execPath))
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return "", fmt.Errorf("write autostart entry: %w", err)
	}

	log.Debug().Str("path", path).Str("exec", execPath).Msg("autostart entry written")
	return path, nil
}

// Disable removes the entry. A missing entry is not an error.
func (a *Autostart) Disable(ctx context.Context) error {
	path, err := getEntryPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove autostart entry: %w", err)
	}
	logging.FromContext(ctx).Debug().Str("path", path).Msg("autostart entry removed")
	return nil
}

// Status reads the entry back.
func (a *Autostart) Status(_ context.Context) (*port.AutostartStatus, error) {
	path, err := getEntryPath()
	if err != nil {
		return nil, err
	}
	status := &port.AutostartStatus{EntryPath: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return status, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read autostart entry: %w", err)
	}

	status.Installed = true
	for _, line := range strings.Split(string(data), "\n") {
		if cmdline, ok := strings.CutPrefix(strings.TrimSpace(line), "Exec="); ok {
			status.Exec = cmdline
			break
		}
	}
	return status, nil
}

// quoteExec quotes paths with spaces per the desktop entry Exec rules.
func quoteExec(path string) string {
	if !strings.ContainsAny(path, " \t\"\\`$") {
		return path
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", `$`, `\$`)
	return `"` + r.Replace(path) + `"`
}
