package automation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/voxgeo/internal/config"
)

func TestSweep(t *testing.T) {
	g := NewWithT(t)

	sc, err := Sweep("ring", 2, 4, "csv")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(sc.Steps).To(HaveLen(3))
	g.Expect(sc.Steps[0].SaveAs).To(Equal("ring_002.csv"))
	g.Expect(sc.Steps[2].Value).To(Equal("4"))

	_, err = Sweep("ring", 4, 2, "csv")
	g.Expect(err).To(HaveOccurred())
}

func TestRunScenario(t *testing.T) {
	g := NewWithT(t)
	dir := t.TempDir()

	sc := &Scenario{Steps: []ScenarioStep{
		{Pattern: "ring", Value: "1", SaveAs: "ring.csv"},
		{Pattern: "disc", Value: "1"},
		{Value: "99"},
	}}
	results, err := RunScenario(context.Background(), sc, config.DefaultConfig(), dir)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(results).To(HaveLen(3))

	g.Expect(results[0].Lit).To(Equal(8))
	g.Expect(results[0].Width).To(Equal(3))
	data, err := os.ReadFile(filepath.Join(dir, "ring.csv"))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(data)).To(Equal("1,1,1\n1,0,1\n1,1,1\n"))

	g.Expect(results[1].Lit).To(Equal(9))
	g.Expect(results[1].Path).To(BeEmpty())

	// the default driver is capped at its declared max
	g.Expect(results[2].Pattern).To(Equal("ring"))
	g.Expect(results[2].Param).To(Equal(config.DefaultMaxRadius))
}

func TestRunScenarioUnknownPattern(t *testing.T) {
	g := NewWithT(t)

	sc := &Scenario{Steps: []ScenarioStep{{Pattern: "spiral"}}}
	_, err := RunScenario(context.Background(), sc, config.DefaultConfig(), t.TempDir())
	g.Expect(err).To(MatchError(ContainSubstring("unknown pattern: spiral")))
}

func TestRunScenarioCancelled(t *testing.T) {
	g := NewWithT(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sc, _ := Sweep("ring", 0, 3, "json")
	results, err := RunScenario(ctx, sc, config.DefaultConfig(), t.TempDir())
	g.Expect(err).To(MatchError(context.Canceled))
	g.Expect(results).To(BeEmpty())
}

func TestLoadScenario(t *testing.T) {
	g := NewWithT(t)
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	g.Expect(os.WriteFile(path, []byte(`
name: demo
steps:
  - pattern: ring
    value: "3"
    save_as: ring3.png
  - pattern: disc
    value: "5"
`), 0644)).To(Succeed())

	sc, err := LoadScenario(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(sc.Name).To(Equal("demo"))
	g.Expect(sc.Steps).To(HaveLen(2))
	g.Expect(sc.Steps[0].SaveAs).To(Equal("ring3.png"))

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	g.Expect(os.WriteFile(empty, []byte("name: empty\n"), 0644)).To(Succeed())
	_, err = LoadScenario(empty)
	g.Expect(err).To(HaveOccurred())
}
