package port

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrPkgConfigMissing means no pkg-config binary is on PATH.
	ErrPkgConfigMissing = errors.New("pkg-config not installed")
	// ErrPkgConfigPackageMissing means pkg-config ran but has no .pc file for the module.
	ErrPkgConfigPackageMissing = errors.New("module not found by pkg-config")
)

// PkgConfigError carries the module name and pkg-config's own output. Match
// on the cause with errors.Is against the sentinels above.
type PkgConfigError struct {
	Package string
	Output  string
	Err     error
}

func (e *PkgConfigError) Error() string {
	parts := []string{e.Package, e.Err.Error()}
	if e.Output != "" {
		parts = append(parts, e.Output)
	}
	return strings.Join(parts, ": ")
}

func (e *PkgConfigError) Unwrap() error { return e.Err }

// RuntimeVersionProbe reports installed versions of the shared libraries the
// overlay window links against. prefix, when set, is searched first.
type RuntimeVersionProbe interface {
	PkgConfigModVersion(ctx context.Context, pkgName string, prefix string) (string, error)
}
