package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDragSession_Gesture(t *testing.T) {
	var d DragSession

	_, ok := d.Target(Point{X: 10, Y: 10})
	assert.False(t, ok, "idle session must not move the window")

	d.Begin(Point{X: 150, Y: 150}, Point{X: 100, Y: 100})
	assert.True(t, d.Dragging())
	assert.Equal(t, Point{X: 50, Y: 50}, d.Offset())

	origin, ok := d.Target(Point{X: 200, Y: 220})
	assert.True(t, ok)
	assert.Equal(t, Point{X: 150, Y: 170}, origin)

	assert.True(t, d.End())
	assert.False(t, d.Dragging())
	assert.False(t, d.End())
}

func TestParsePlacementMode(t *testing.T) {
	assert.Equal(t, PlacementBottomRight, ParsePlacementMode(" Bottom-Right "))
	assert.True(t, ParsePlacementMode("custom").IsCustom())
	assert.False(t, ParsePlacementMode("center").Known())
}
