package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func fakeHome() (string, error) { return "/home/ana", nil }

func TestResolveDirs(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Dirs
	}{
		{
			name: "defaults without runtime dir",
			env:  nil,
			want: Dirs{
				Config:  "/home/ana/.config/desklet",
				State:   "/home/ana/.local/state/desklet",
				Runtime: "/home/ana/.local/state/desklet",
			},
		},
		{
			name: "xdg variables",
			env: map[string]string{
				"XDG_CONFIG_HOME": "/cfg",
				"XDG_STATE_HOME":  "/state",
				"XDG_RUNTIME_DIR": "/run/user/1000",
			},
			want: Dirs{Config: "/cfg/desklet", State: "/state/desklet", Runtime: "/run/user/1000/desklet"},
		},
		{
			name: "relative xdg values are ignored",
			env:  map[string]string{"XDG_CONFIG_HOME": "cfg"},
			want: Dirs{
				Config:  "/home/ana/.config/desklet",
				State:   "/home/ana/.local/state/desklet",
				Runtime: "/home/ana/.local/state/desklet",
			},
		},
		{
			name: "desklet home overrides everything",
			env:  map[string]string{"DESKLET_HOME": "/tmp/dk", "XDG_CONFIG_HOME": "/cfg"},
			want: Dirs{Config: "/tmp/dk", State: "/tmp/dk", Runtime: "/tmp/dk"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveDirs(fakeEnv(tt.env), fakeHome)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDirs_NoHome(t *testing.T) {
	_, err := resolveDirs(fakeEnv(nil), func() (string, error) { return "", errors.New("no HOME") })
	assert.ErrorContains(t, err, "home directory")
}

func TestGetLockFile_UsesDeskletHome(t *testing.T) {
	t.Setenv("DESKLET_HOME", "/tmp/dk")
	path, err := GetLockFile()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/dk/desklet.lock", path)
}
