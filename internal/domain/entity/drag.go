package entity

// PrimaryButton is the pointer button that drags the overlay.
const PrimaryButton = 1

// DragSession tracks one press/drag/release gesture on the overlay.
// The zero value is idle.
type DragSession struct {
	dragging bool
	offset   Point
}

// Dragging reports whether a drag is in progress.
func (d *DragSession) Dragging() bool {
	return d.dragging
}

// Offset returns the pointer offset recorded at press time.
func (d *DragSession) Offset() Point {
	return d.offset
}

// Begin records the pointer offset relative to the window origin.
func (d *DragSession) Begin(pointer, windowOrigin Point) {
	d.dragging = true
	d.offset = pointer.Sub(windowOrigin)
}

// Target returns the window origin that keeps the grab offset under the pointer.
// ok is false when no drag is in progress.
func (d *DragSession) Target(pointer Point) (origin Point, ok bool) {
	if !d.dragging {
		return Point{}, false
	}
	return pointer.Sub(d.offset), true
}

// End resets the session to idle and reports whether a drag was in progress.
func (d *DragSession) End() bool {
	was := d.dragging
	d.dragging = false
	d.offset = Point{}
	return was
}
