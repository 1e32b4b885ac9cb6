package config

import "sort"

func preset(pattern string, min, max, value, cell int) *Config {
	cfg := DefaultConfig()
	cfg.Pattern = pattern
	cfg.CellWidth, cfg.CellHeight = cell, cell
	cfg.Controls = RadiusControls(min, max, value)
	return cfg
}

var Presets = map[string]map[string]*Config{
	"ring": {
		"small":   preset("ring", 0, 12, 4, 16),
		"default": preset("ring", 0, DefaultMaxRadius, DefaultRadius, DefaultCellWidth),
		"large":   preset("ring", 10, 120, 60, 4),
	},
	"disc": {
		"small":   preset("disc", 0, 12, 4, 16),
		"default": preset("disc", 0, DefaultMaxRadius, DefaultRadius, DefaultCellWidth),
		"large":   preset("disc", 10, 120, 60, 4),
	},
}

func GetPreset(pattern, name string) *Config {
	patternPresets, ok := Presets[pattern]
	if !ok {
		return nil
	}
	cfg, ok := patternPresets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(pattern string) []string {
	patternPresets, ok := Presets[pattern]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(patternPresets))
	for name := range patternPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
