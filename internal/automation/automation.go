// Package automation runs scripted sequences of driver values and writes a
// snapshot of the field after each one.
package automation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/voxgeo/internal/analysis"
	"github.com/san-kum/voxgeo/internal/config"
	"github.com/san-kum/voxgeo/internal/export"
	"github.com/san-kum/voxgeo/internal/scene"
	"github.com/san-kum/voxgeo/internal/settings"
	"github.com/san-kum/voxgeo/internal/voxel"
)

// Scenario defines a scripted export sequence
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single driver value and where to write the result.
// Empty fields fall back to the base config.
type ScenarioStep struct {
	Pattern string `yaml:"pattern"`
	Value   string `yaml:"value"`
	Format  string `yaml:"format"`
	SaveAs  string `yaml:"save_as"`
}

// StepResult describes one completed step.
type StepResult struct {
	Step    int
	Pattern string
	Param   int
	Width   int
	Height  int
	Lit     int
	Path    string
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s: no steps", path)
	}

	return &scenario, nil
}

// Sweep builds a scenario that visits every driver value in [lo, hi].
func Sweep(pattern string, lo, hi int, format string) (*Scenario, error) {
	if lo < 0 || hi < lo {
		return nil, fmt.Errorf("sweep: invalid range [%d,%d]", lo, hi)
	}
	sc := &Scenario{
		Name:        fmt.Sprintf("%s sweep", pattern),
		Description: fmt.Sprintf("%s from %d to %d", pattern, lo, hi),
	}
	for v := lo; v <= hi; v++ {
		sc.Steps = append(sc.Steps, ScenarioStep{
			Pattern: pattern,
			Value:   strconv.Itoa(v),
			Format:  format,
			SaveAs:  fmt.Sprintf("%s_%03d.%s", pattern, v, format),
		})
	}
	return sc, nil
}

// RunScenario executes all steps against cfg and writes outputs under dir.
// Values are delivered through the driver control, so they are clamped to the
// declared range like any other input.
func RunScenario(ctx context.Context, scenario *Scenario, cfg *config.Config, dir string) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))
	catalog := scene.NewCatalog()

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		pattern := step.Pattern
		if pattern == "" {
			pattern = cfg.Pattern
		}
		proc, err := catalog.Get(pattern)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		reg := settings.NewRegistry()
		if err := reg.Discover(cfg.Controls); err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		field, err := voxel.New(cfg.Width, cfg.Height)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		sc := scene.New(field, nil, proc)
		if err := sc.Bind(reg, cfg.Driver); err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		if step.Value != "" {
			ev := settings.ChangeEvent{Name: cfg.Driver, Raw: step.Value}
			if err := reg.Dispatch(ev); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		if err := sc.Err(); err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		res := StepResult{
			Step:    i + 1,
			Pattern: proc.Name,
			Param:   sc.Param(),
			Width:   field.Width(),
			Height:  field.Height(),
			Lit:     analysis.Lit(field),
		}

		if step.SaveAs != "" {
			format := step.Format
			if format == "" {
				format = formatFromPath(step.SaveAs)
			}
			res.Path = filepath.Join(dir, step.SaveAs)
			if err := export.Save(res.Path, format, proc.Name, sc.Param(), field, cfg.CellWidth, cfg.CellHeight); err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}

		results = append(results, res)
	}

	return results, nil
}

func formatFromPath(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return "png"
	}
	return ext[1:]
}
