package entity

// Settings is the persisted desklet configuration record.
// CustomX and CustomY stay textual so malformed values reach the placement
// calculator and are recovered there instead of failing the whole load.
type Settings struct {
	GIFPath   string
	Monitor   int
	Position  PlacementMode
	Margin    int
	Autostart bool
	CustomX   string
	CustomY   string
}

// DefaultSettings mirrors the values the settings editor starts from.
func DefaultSettings() Settings {
	return Settings{
		Monitor:  0,
		Position: PlacementBottomRight,
		Margin:   20,
		CustomX:  "0",
		CustomY:  "0",
	}
}
