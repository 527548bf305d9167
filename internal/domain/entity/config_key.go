package entity

// ConfigKeyInfo describes a single configuration key for schema documentation.
type ConfigKeyInfo struct {
	// Key is the full dotted path to the config key (e.g., "desklet.position")
	Key string `json:"key"`

	// Type is the Go type name (e.g., "string", "int", "bool")
	Type string `json:"type"`

	// Default is the default value as a string representation
	Default string `json:"default"`

	Description string `json:"description"`

	// Values contains valid enum values. Empty if not an enum type.
	Values []string `json:"values,omitempty"`

	// Range describes numeric constraints (e.g., "0-10000")
	Range string `json:"range,omitempty"`

	// Section groups related keys (e.g., "Desklet", "Logging")
	Section string `json:"section"`
}
