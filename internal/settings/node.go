package settings

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is one control declaration. Roots group controls; their direct
// children are the controls themselves.
type Node struct {
	Tag      string            `yaml:"tag"`
	Name     string            `yaml:"name,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty"`
	Children []Node            `yaml:"children,omitempty"`
}

// Float reads a numeric attribute, returning def when it is absent.
func (n Node) Float(key string, def float64) (float64, error) {
	raw, ok := n.Attrs[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: attribute %s=%q is not a number", ErrInvalidControl, key, raw)
	}
	return v, nil
}
