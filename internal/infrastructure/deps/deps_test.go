package deps

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/desklet/internal/application/port"
)

func TestPrependPathList(t *testing.T) {
	got := prependPathList("/usr/lib:/opt/lib::/usr/lib", "/opt/lib", "/new/lib")
	assert.Equal(t, "/opt/lib:/new/lib:/usr/lib", got)
	assert.Equal(t, "", prependPathList(""))
}

func TestCommandEnvWithPrefix(t *testing.T) {
	t.Setenv("PKG_CONFIG_PATH", "/usr/share/pkgconfig")

	env := CommandEnvWithPrefix("/opt/gtk3/")
	var pkgConfig string
	for _, kv := range env {
		if v, ok := strings.CutPrefix(kv, "PKG_CONFIG_PATH="); ok {
			pkgConfig = v
		}
	}
	require.NotEmpty(t, pkgConfig)
	assert.True(t, strings.HasPrefix(pkgConfig, "/opt/gtk3/lib/pkgconfig:"))
	assert.True(t, strings.HasSuffix(pkgConfig, ":/usr/share/pkgconfig"))
}

func TestCommandEnvWithoutPrefix(t *testing.T) {
	t.Setenv("DESKLET_TEST_MARKER", "1")
	assert.Contains(t, CommandEnvWithPrefix("  "), "DESKLET_TEST_MARKER=1")
}

func TestPkgConfigProbe_MissingCommand(t *testing.T) {
	p := &PkgConfigProbe{lookPath: func(string) (string, error) { return "", errors.New("not found") }}

	_, err := p.PkgConfigModVersion(context.Background(), "gtk+-3.0", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrPkgConfigMissing)
	var pcErr *port.PkgConfigError
	require.ErrorAs(t, err, &pcErr)
	assert.Equal(t, "gtk+-3.0", pcErr.Package)
}
