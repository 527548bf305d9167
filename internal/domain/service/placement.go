// Package service contains pure domain logic shared by use cases.
package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/desklet/internal/domain/entity"
)

// PlacementInput groups everything the placement calculator depends on.
type PlacementInput struct {
	Monitor entity.MonitorGeometry
	Frame   entity.Size
	Mode    entity.PlacementMode
	Margin  int
	// CustomX and CustomY are only read in custom mode. Empty means unset.
	CustomX string
	CustomY string
}

// ComputePlacement maps its input to the overlay's top-left corner.
//
// The fixed-corner rows intentionally apply the margin only on the left and
// bottom edges; right-anchored corners sit flush against the monitor edge.
//
// In custom mode, unparsable coordinates return the monitor origin together
// with an error wrapping entity.ErrInvalidPlacement. The returned point is
// always usable.
func ComputePlacement(in PlacementInput) (entity.Point, error) {
	m := in.Monitor
	f := in.Frame

	switch in.Mode {
	case entity.PlacementTopLeft:
		return entity.Point{X: m.X + in.Margin, Y: m.Y + in.Margin}, nil
	case entity.PlacementTopRight:
		return entity.Point{X: m.X + m.Width - f.W, Y: m.Y + in.Margin}, nil
	case entity.PlacementBottomLeft:
		return entity.Point{X: m.X + in.Margin, Y: m.Y + m.Height - f.H - in.Margin}, nil
	case entity.PlacementBottomRight:
		return entity.Point{X: m.X + m.Width - f.W, Y: m.Y + m.Height - f.H - in.Margin}, nil
	case entity.PlacementCustom:
		requested, err := parseCustom(m, in.CustomX, in.CustomY)
		if err != nil {
			return m.Origin(), err
		}
		return ClampToMonitor(requested, m, f), nil
	default:
		return m.Origin(), nil
	}
}

// ClampToMonitor moves p so a frame of size f placed there stays inside m.
// When the frame is larger than the monitor the monitor origin wins.
// Clamping is idempotent.
func ClampToMonitor(p entity.Point, m entity.MonitorGeometry, f entity.Size) entity.Point {
	return entity.Point{
		X: clamp(p.X, m.X, m.X+m.Width-f.W),
		Y: clamp(p.Y, m.Y, m.Y+m.Height-f.H),
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func parseCustom(m entity.MonitorGeometry, rawX, rawY string) (entity.Point, error) {
	p := m.Origin()
	var err error
	if s := strings.TrimSpace(rawX); s != "" {
		if p.X, err = strconv.Atoi(s); err != nil {
			return m.Origin(), fmt.Errorf("%w: custom_x %q is not an integer", entity.ErrInvalidPlacement, rawX)
		}
	}
	if s := strings.TrimSpace(rawY); s != "" {
		if p.Y, err = strconv.Atoi(s); err != nil {
			return m.Origin(), fmt.Errorf("%w: custom_y %q is not an integer", entity.ErrInvalidPlacement, rawY)
		}
	}
	return p, nil
}
