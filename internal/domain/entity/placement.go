package entity

import "strings"

// PlacementMode names the strategy used to position the overlay.
type PlacementMode string

const (
	PlacementTopLeft     PlacementMode = "top-left"
	PlacementTopRight    PlacementMode = "top-right"
	PlacementBottomLeft  PlacementMode = "bottom-left"
	PlacementBottomRight PlacementMode = "bottom-right"
	PlacementCustom      PlacementMode = "custom"
)

// PlacementModes lists the modes in the order the settings editor offers them.
func PlacementModes() []PlacementMode {
	return []PlacementMode{
		PlacementBottomRight,
		PlacementBottomLeft,
		PlacementTopLeft,
		PlacementTopRight,
		PlacementCustom,
	}
}

// ParsePlacementMode maps a configured string to a mode. Unknown values are
// returned verbatim so the calculator can apply its default row.
func ParsePlacementMode(s string) PlacementMode {
	return PlacementMode(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether m is one of the named modes.
func (m PlacementMode) Known() bool {
	for _, known := range PlacementModes() {
		if m == known {
			return true
		}
	}
	return false
}

// IsCustom reports whether the overlay is user-positioned and draggable.
func (m PlacementMode) IsCustom() bool {
	return m == PlacementCustom
}
