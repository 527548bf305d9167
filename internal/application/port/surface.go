package port

import "github.com/bnema/desklet/internal/domain/entity"

// Surface is the overlay window. Implementations are not thread-safe:
// every method must run on the UI-owning context.
type Surface interface {
	Show(origin entity.Point)
	Present(frame *entity.Frame)
	Move(origin entity.Point)
	Origin() entity.Point
	Destroy()
}

// MonitorProvider reports monitor geometry, queried fresh on each call.
type MonitorProvider interface {
	MonitorCount() int
	Monitor(index int) (entity.MonitorGeometry, error)
}
