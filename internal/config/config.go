package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/voxgeo/internal/settings"
)

const (
	DefaultCellWidth  = 10
	DefaultCellHeight = 10
	DefaultWidth      = 20
	DefaultHeight     = 20
	DefaultPattern    = "ring"
	DefaultDriver     = "radius"
	DefaultRadius     = 10
	DefaultMaxRadius  = 40
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Pattern    string          `yaml:"pattern"`
	Driver     string          `yaml:"driver"`
	Width      int             `yaml:"width"`
	Height     int             `yaml:"height"`
	CellWidth  int             `yaml:"cell_width"`
	CellHeight int             `yaml:"cell_height"`
	Controls   []settings.Node `yaml:"controls"`
}

// RadiusControls declares a single radius slider.
func RadiusControls(min, max, value int) []settings.Node {
	return []settings.Node{
		{
			Tag: "settings",
			Children: []settings.Node{
				{
					Tag:  settings.KindSlider,
					Name: DefaultDriver,
					Attrs: map[string]string{
						"min":   strconv.Itoa(min),
						"max":   strconv.Itoa(max),
						"value": strconv.Itoa(value),
					},
				},
			},
		},
	}
}

func DefaultConfig() *Config {
	return &Config{
		Pattern:    DefaultPattern,
		Driver:     DefaultDriver,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		Controls:   RadiusControls(0, DefaultMaxRadius, DefaultRadius),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: field size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("%w: cell size %dx%d", ErrInvalidConfig, c.CellWidth, c.CellHeight)
	}
	if c.Driver == "" {
		return fmt.Errorf("%w: driver setting is empty", ErrInvalidConfig)
	}
	if c.driverNode() == nil {
		return fmt.Errorf("%w: no control named %q", ErrInvalidConfig, c.Driver)
	}
	return nil
}

// SetDriverValue overrides the declared initial value of the driver control.
func (c *Config) SetDriverValue(v int) error {
	n := c.driverNode()
	if n == nil {
		return fmt.Errorf("%w: no control named %q", ErrInvalidConfig, c.Driver)
	}
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs["value"] = strconv.Itoa(v)
	return nil
}

func (c *Config) driverNode() *settings.Node {
	for i := range c.Controls {
		children := c.Controls[i].Children
		for j := range children {
			if children[j].Name == c.Driver {
				return &children[j]
			}
		}
	}
	return nil
}

// Clone returns a deep copy so presets can be adjusted safely.
func (c *Config) Clone() *Config {
	out := *c
	out.Controls = cloneNodes(c.Controls)
	return &out
}

func cloneNodes(nodes []settings.Node) []settings.Node {
	if nodes == nil {
		return nil
	}
	out := make([]settings.Node, len(nodes))
	for i, n := range nodes {
		out[i] = n
		if n.Attrs != nil {
			out[i].Attrs = make(map[string]string, len(n.Attrs))
			for k, v := range n.Attrs {
				out[i].Attrs[k] = v
			}
		}
		out[i].Children = cloneNodes(n.Children)
	}
	return out
}
