package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/bnema/desklet/internal/application/port"
	"github.com/bnema/desklet/internal/logging"
)

// runtimeRequirement names one pkg-config module the overlay links against.
type runtimeRequirement struct {
	module  string
	display string
	minimum func(CheckRuntimeDependenciesInput) string
}

// GTK 3.22 introduced GdkMonitor, which monitor geometry relies on. GIO ships
// with GLib and shares its floor.
var gtkStack = []runtimeRequirement{
	{"gtk+-3.0", "GTK3", func(in CheckRuntimeDependenciesInput) string { return orDefault(in.MinGTK3Version, "3.22") }},
	{"gdk-pixbuf-2.0", "GdkPixbuf", func(in CheckRuntimeDependenciesInput) string { return orDefault(in.MinPixbufVersion, "2.36") }},
	{"glib-2.0", "GLib", func(in CheckRuntimeDependenciesInput) string { return orDefault(in.MinGLibVersion, "2.56") }},
	{"gio-2.0", "GIO", func(in CheckRuntimeDependenciesInput) string { return orDefault(in.MinGLibVersion, "2.56") }},
}

// RuntimeDependencyStatus is the outcome for one library.
type RuntimeDependencyStatus struct {
	Module      string
	DisplayName string

	Installed        bool
	Version          string
	RequiredVersion  string
	MeetsRequirement bool

	Error string
}

// CheckRuntimeDependenciesUseCase backs `desklet doctor`.
type CheckRuntimeDependenciesUseCase struct {
	probe port.RuntimeVersionProbe
}

func NewCheckRuntimeDependenciesUseCase(probe port.RuntimeVersionProbe) *CheckRuntimeDependenciesUseCase {
	return &CheckRuntimeDependenciesUseCase{probe: probe}
}

// CheckRuntimeDependenciesInput overrides where and what to check. Empty
// minimums fall back to the built-in floors.
type CheckRuntimeDependenciesInput struct {
	// Prefix is a custom install root (e.g. /opt/gtk3) searched before the system.
	Prefix string

	MinGTK3Version   string
	MinGLibVersion   string
	MinPixbufVersion string
}

type CheckRuntimeDependenciesOutput struct {
	Prefix string
	OK     bool
	Checks []RuntimeDependencyStatus
}

// Execute probes every library in the GTK3 stack. Probe failures are recorded
// per library and never abort the run.
func (uc *CheckRuntimeDependenciesUseCase) Execute(ctx context.Context, input CheckRuntimeDependenciesInput) (*CheckRuntimeDependenciesOutput, error) {
	out := &CheckRuntimeDependenciesOutput{Prefix: input.Prefix, OK: true}
	for _, req := range gtkStack {
		status := uc.check(ctx, req, input)
		if !status.MeetsRequirement {
			out.OK = false
		}
		out.Checks = append(out.Checks, status)
	}

	logging.FromContext(ctx).Debug().
		Str("component", "doctor").
		Bool("ok", out.OK).
		Str("prefix", input.Prefix).
		Msg("runtime dependency check complete")
	return out, nil
}

func (uc *CheckRuntimeDependenciesUseCase) check(ctx context.Context, req runtimeRequirement, input CheckRuntimeDependenciesInput) RuntimeDependencyStatus {
	status := RuntimeDependencyStatus{
		Module:          req.module,
		DisplayName:     req.display,
		RequiredVersion: req.minimum(input),
	}

	raw, err := uc.probe.PkgConfigModVersion(ctx, req.module, input.Prefix)
	if err != nil {
		status.Error = err.Error()
		return status
	}
	status.Installed = true
	status.Version = strings.TrimSpace(raw)

	cmp, ok := compareVersion(status.Version, status.RequiredVersion)
	if !ok {
		status.Error = "unparseable version " + strconv.Quote(status.Version)
		return status
	}
	status.MeetsRequirement = cmp >= 0
	return status
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// compareVersion orders two dotted versions, treating missing trailing
// segments as zero. ok is false when either side has no numeric prefix.
func compareVersion(a, b string) (cmp int, ok bool) {
	av, aok := parseVersionPrefix(a)
	bv, bok := parseVersionPrefix(b)
	if !aok || !bok {
		return 0, false
	}

	for i := range max(len(av), len(bv)) {
		x, y := segment(av, i), segment(bv, i)
		if x != y {
			if x > y {
				return 1, true
			}
			return -1, true
		}
	}
	return 0, true
}

func segment(v []int, i int) int {
	if i < len(v) {
		return v[i]
	}
	return 0
}

// parseVersionPrefix reads the leading digits-and-dots run of s, so distro
// suffixes like "3.24.41-1ubuntu" parse as 3.24.41.
func parseVersionPrefix(s string) ([]int, bool) {
	end := strings.IndexFunc(s, func(r rune) bool {
		return r != '.' && (r < '0' || r > '9')
	})
	if end >= 0 {
		s = s[:end]
	}
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return nil, false
	}

	fields := strings.Split(s, ".")
	parts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		parts = append(parts, n)
	}
	return parts, true
}
