package desklet

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gdk/v3"

	"github.com/bnema/desklet/internal/application/port"
	"github.com/bnema/desklet/internal/domain/entity"
)

// Monitors reads monitor geometry from the default GDK display on every
// call so hotplugged monitors are seen.
type Monitors struct{}

var _ port.MonitorProvider = Monitors{}

func (Monitors) MonitorCount() int {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return 0
	}
	return display.NMonitors()
}

func (Monitors) Monitor(index int) (entity.MonitorGeometry, error) {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return entity.MonitorGeometry{}, fmt.Errorf("no default display")
	}
	monitor := display.Monitor(index)
	if monitor == nil {
		return entity.MonitorGeometry{}, fmt.Errorf("monitor %d not found", index)
	}
	g := monitor.Geometry()
	return entity.MonitorGeometry{X: g.X(), Y: g.Y(), Width: g.Width(), Height: g.Height()}, nil
}
