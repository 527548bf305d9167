package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaProvider_ListsSortedKeys(t *testing.T) {
	keys := SchemaProvider{}.GetSchema()
	require.NotEmpty(t, keys)

	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1].Key, keys[i].Key)
	}

	var position bool
	for _, k := range keys {
		if k.Key == "desklet.position" {
			position = true
			assert.Equal(t, "bottom-right", k.Default)
			assert.Contains(t, k.Values, "custom")
		}
	}
	assert.True(t, position)
}

func TestSetValue(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		raw     string
		check   func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name:  "position normalizes case",
			key:   "desklet.position",
			raw:   " Custom ",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, "custom", cfg.Desklet.Position) },
		},
		{name: "unknown position", key: "desklet.position", raw: "center", wantErr: true},
		{
			name:  "margin",
			key:   "desklet.margin",
			raw:   "42",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, 42, cfg.Desklet.Margin) },
		},
		{name: "margin not a number", key: "desklet.margin", raw: "wide", wantErr: true},
		{
			name:  "autostart",
			key:   "DESKLET.AUTOSTART",
			raw:   "true",
			check: func(t *testing.T, cfg *Config) { assert.True(t, cfg.Desklet.Autostart) },
		},
		{
			name:  "custom coordinate keeps text",
			key:   "desklet.custom_x",
			raw:   "abc",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, "abc", cfg.Desklet.CustomX) },
		},
		{
			name:  "stop timeout",
			key:   "instance.stop_timeout_ms",
			raw:   "3000",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, 3000, cfg.Instance.StopTimeoutMs) },
		},
		{name: "unknown key", key: "desklet.opacity", raw: "1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := SetValue(cfg, tt.key, tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
