package config

import (
	"errors"
	"os"
	"path/filepath"
)

const appName = "desklet"

// Dirs are desklet's per-user directories.
type Dirs struct {
	Config  string // config.toml
	State   string // logs
	Runtime string // instance lock; falls back to State without XDG_RUNTIME_DIR
}

// ResolveDirs follows the XDG Base Directory layout. DESKLET_HOME, when set,
// puts all three under a single directory.
func ResolveDirs() (Dirs, error) {
	return resolveDirs(os.Getenv, os.UserHomeDir)
}

func resolveDirs(getenv func(string) string, home func() (string, error)) (Dirs, error) {
	if root := getenv("DESKLET_HOME"); root != "" {
		return Dirs{Config: root, State: root, Runtime: root}, nil
	}

	base := func(env string, fallback ...string) (string, error) {
		if v := getenv(env); filepath.IsAbs(v) {
			return filepath.Join(v, appName), nil
		}
		if fallback == nil {
			return "", nil
		}
		h, err := home()
		if err != nil {
			return "", errors.Join(errors.New("cannot locate home directory"), err)
		}
		parts := append([]string{h}, fallback...)
		return filepath.Join(append(parts, appName)...), nil
	}

	var d Dirs
	var err error
	if d.Config, err = base("XDG_CONFIG_HOME", ".config"); err != nil {
		return Dirs{}, err
	}
	if d.State, err = base("XDG_STATE_HOME", ".local", "state"); err != nil {
		return Dirs{}, err
	}
	if d.Runtime, _ = base("XDG_RUNTIME_DIR"); d.Runtime == "" {
		d.Runtime = d.State
	}
	return d, nil
}

// GetConfigFile returns the path of config.toml.
func GetConfigFile() (string, error) {
	d, err := ResolveDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(d.Config, "config.toml"), nil
}

func GetLogDir() (string, error) {
	d, err := ResolveDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(d.State, "logs"), nil
}

// GetLockFile returns the well-known instance lock path shared by the
// overlay and the stop/status commands.
func GetLockFile() (string, error) {
	d, err := ResolveDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(d.Runtime, appName+".lock"), nil
}
