package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/desklet/internal/application/port"
	"github.com/bnema/desklet/internal/application/port/mocks"
)

func TestCheckRuntimeDependencies(t *testing.T) {
	t.Run("all present and recent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		probe := mocks.NewMockRuntimeVersionProbe(ctrl)
		probe.EXPECT().PkgConfigModVersion(gomock.Any(), "gtk+-3.0", "").Return("3.24.41\n", nil)
		probe.EXPECT().PkgConfigModVersion(gomock.Any(), "gdk-pixbuf-2.0", "").Return("2.42.10\n", nil)
		probe.EXPECT().PkgConfigModVersion(gomock.Any(), "glib-2.0", "").Return("2.80.0\n", nil)
		probe.EXPECT().PkgConfigModVersion(gomock.Any(), "gio-2.0", "").Return("2.80.0\n", nil)

		out, err := NewCheckRuntimeDependenciesUseCase(probe).Execute(context.Background(), CheckRuntimeDependenciesInput{})

		require.NoError(t, err)
		assert.True(t, out.OK)
		require.Len(t, out.Checks, 4)
		assert.Equal(t, "3.24.41", out.Checks[0].Version)
		assert.True(t, out.Checks[0].MeetsRequirement)
	})

	t.Run("old gtk and missing gio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		probe := mocks.NewMockRuntimeVersionProbe(ctrl)
		missing := &port.PkgConfigError{Package: "gio-2.0", Err: port.ErrPkgConfigPackageMissing}
		probe.EXPECT().PkgConfigModVersion(gomock.Any(), "gtk+-3.0", "/opt/gtk").Return("3.20.0", nil)
		probe.EXPECT().PkgConfigModVersion(gomock.Any(), "gdk-pixbuf-2.0", "/opt/gtk").Return("2.42.10", nil)
		probe.EXPECT().PkgConfigModVersion(gomock.Any(), "glib-2.0", "/opt/gtk").Return("2.80.0", nil)
		probe.EXPECT().PkgConfigModVersion(gomock.Any(), "gio-2.0", "/opt/gtk").Return("", missing)

		out, err := NewCheckRuntimeDependenciesUseCase(probe).Execute(context.Background(), CheckRuntimeDependenciesInput{Prefix: "/opt/gtk"})

		require.NoError(t, err)
		assert.False(t, out.OK)
		assert.Equal(t, "/opt/gtk", out.Prefix)
		assert.True(t, out.Checks[0].Installed)
		assert.False(t, out.Checks[0].MeetsRequirement)
		assert.False(t, out.Checks[3].Installed)
		assert.Contains(t, out.Checks[3].Error, "gio-2.0")
	})
}

func TestCompareVersion(t *testing.T) {
	tests := []struct {
		a, b string
		want int
		ok   bool
	}{
		{"3.24.41", "3.22", 1, true},
		{"3.22", "3.22.0", 0, true},
		{"2.9", "2.10", -1, true},
		{"3.24.41-1ubuntu", "3.24.41", 0, true},
		{"", "3.22", 0, false},
		{".1", "1", 0, false},
	}
	for _, tt := range tests {
		got, ok := compareVersion(tt.a, tt.b)
		assert.Equal(t, tt.ok, ok, "%s vs %s", tt.a, tt.b)
		if tt.ok {
			assert.Equal(t, tt.want, got, "%s vs %s", tt.a, tt.b)
		}
	}
}
