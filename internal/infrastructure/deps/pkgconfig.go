// Package deps probes the host for the GTK3 runtime libraries.
package deps

import (
	"context"
	"os/exec"
	"strings"

	"github.com/bnema/desklet/internal/application/port"
)

// PkgConfigProbe answers version queries with `pkg-config --modversion`.
type PkgConfigProbe struct {
	lookPath func(string) (string, error)
}

var _ port.RuntimeVersionProbe = (*PkgConfigProbe)(nil)

func NewPkgConfigProbe() *PkgConfigProbe {
	return &PkgConfigProbe{lookPath: exec.LookPath}
}

// PkgConfigModVersion returns the raw version line for pkgName. Failures are
// *port.PkgConfigError values wrapping ErrPkgConfigMissing or
// ErrPkgConfigPackageMissing.
func (p *PkgConfigProbe) PkgConfigModVersion(ctx context.Context, pkgName, prefix string) (string, error) {
	bin, err := p.lookPath("pkg-config")
	if err != nil {
		return "", &port.PkgConfigError{Package: pkgName, Err: port.ErrPkgConfigMissing}
	}

	cmd := exec.CommandContext(ctx, bin, "--modversion", pkgName)
	cmd.Env = CommandEnvWithPrefix(prefix)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", &port.PkgConfigError{
			Package: pkgName,
			Output:  strings.TrimSpace(string(out)),
			Err:     port.ErrPkgConfigPackageMissing,
		}
	}
	return string(out), nil
}
