package config

import (
	"sort"

	"github.com/samber/lo"
)

// Presets are named playback setups layered over DefaultConfig.
var Presets = map[string]func(*Config){
	"broadcast": func(c *Config) {
		c.View.Camera = "catcher"
		c.Playback.Loop = true
	},
	"review": func(c *Config) {
		c.View.Camera = "catcher"
		c.Playback.Loop = false
		c.Playback.Hold = 2
		c.Playback.RestartDelay = 1.5
	},
	"mound": func(c *Config) {
		c.View.Camera = "pitcher"
		c.Playback.Loop = true
	},
	"scout": func(c *Config) {
		c.View.Camera = "overhead"
		c.View.Outfield = true
		c.Playback.Loop = true
		c.Playback.RestartDelay = 0.5
	},
}

// GetPreset returns a fresh config for the named preset, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// ListPresets returns the preset names in order.
func ListPresets() []string {
	names := lo.Keys(Presets)
	sort.Strings(names)
	return names
}
