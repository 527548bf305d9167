package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/desklet/internal/domain/entity"
)

var fullHD = entity.MonitorGeometry{X: 0, Y: 0, Width: 1920, Height: 1080}

func TestComputePlacement_Table(t *testing.T) {
	frame := entity.Size{W: 64, H: 64}
	tests := []struct {
		name string
		mode entity.PlacementMode
		want entity.Point
	}{
		{"top-left", entity.PlacementTopLeft, entity.Point{X: 20, Y: 20}},
		{"top-right", entity.PlacementTopRight, entity.Point{X: 1856, Y: 20}},
		{"bottom-left", entity.PlacementBottomLeft, entity.Point{X: 20, Y: 996}},
		{"bottom-right", entity.PlacementBottomRight, entity.Point{X: 1856, Y: 996}},
		{"unknown", entity.PlacementMode("center"), entity.Point{X: 0, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputePlacement(PlacementInput{Monitor: fullHD, Frame: frame, Mode: tt.mode, Margin: 20})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputePlacement_SecondMonitorOffset(t *testing.T) {
	m := entity.MonitorGeometry{X: 1920, Y: 200, Width: 1280, Height: 1024}
	got, err := ComputePlacement(PlacementInput{
		Monitor: m, Frame: entity.Size{W: 100, H: 50}, Mode: entity.PlacementBottomLeft, Margin: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.Point{X: 1930, Y: 200 + 1024 - 50 - 10}, got)
}

func TestComputePlacement_CornersStayOnMonitor(t *testing.T) {
	monitors := []entity.MonitorGeometry{
		fullHD,
		{X: -1280, Y: 0, Width: 1280, Height: 720},
		{X: 1920, Y: -300, Width: 2560, Height: 1440},
	}
	frames := []entity.Size{{W: 1, H: 1}, {W: 64, H: 64}, {W: 300, H: 200}, {W: 1280, H: 720}}
	modes := []entity.PlacementMode{
		entity.PlacementTopLeft, entity.PlacementTopRight,
		entity.PlacementBottomLeft, entity.PlacementBottomRight,
	}

	for _, m := range monitors {
		for _, f := range frames {
			for _, mode := range modes {
				got, err := ComputePlacement(PlacementInput{Monitor: m, Frame: f, Mode: mode})
				require.NoError(t, err)
				assert.True(t, m.Contains(got, f), "mode=%s monitor=%+v frame=%+v got=%s", mode, m, f, got)
			}
		}
	}
}

func TestComputePlacement_CustomClampsWithoutMargin(t *testing.T) {
	got, err := ComputePlacement(PlacementInput{
		Monitor: fullHD, Frame: entity.Size{W: 64, H: 64}, Mode: entity.PlacementCustom,
		Margin: 20, CustomX: "5000", CustomY: "5000",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.Point{X: 1856, Y: 1016}, got)

	got, err = ComputePlacement(PlacementInput{
		Monitor: fullHD, Frame: entity.Size{W: 64, H: 64}, Mode: entity.PlacementCustom,
		CustomX: "-40", CustomY: "300",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.Point{X: 0, Y: 300}, got)
}

func TestComputePlacement_CustomInvalidFallsBackToOrigin(t *testing.T) {
	m := entity.MonitorGeometry{X: 1920, Y: 0, Width: 1920, Height: 1080}
	tests := []struct {
		name   string
		x, y   string
		errors bool
	}{
		{"non numeric x", "abc", "10", true},
		{"non numeric y", "10", "1.5", true},
		{"unset", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputePlacement(PlacementInput{
				Monitor: m, Frame: entity.Size{W: 64, H: 64}, Mode: entity.PlacementCustom,
				CustomX: tt.x, CustomY: tt.y,
			})
			if tt.errors {
				require.ErrorIs(t, err, entity.ErrInvalidPlacement)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, m.Origin(), got)
		})
	}
}

func TestClampToMonitor_BoundsAndIdempotence(t *testing.T) {
	f := entity.Size{W: 64, H: 64}
	for _, x := range []int{-10000, -1, 0, 500, 1856, 1857, 99999} {
		for _, y := range []int{-10000, 0, 1016, 1017, 50000} {
			once := ClampToMonitor(entity.Point{X: x, Y: y}, fullHD, f)
			assert.True(t, fullHD.Contains(once, f))
			assert.Equal(t, once, ClampToMonitor(once, fullHD, f))
		}
	}
}

func TestClampToMonitor_FrameLargerThanMonitor(t *testing.T) {
	got := ClampToMonitor(entity.Point{X: 400, Y: 400}, fullHD, entity.Size{W: 4000, H: 2000})
	assert.Equal(t, fullHD.Origin(), got)
}
