package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/voxgeo/internal/render"
	"github.com/san-kum/voxgeo/internal/scene"
	"github.com/san-kum/voxgeo/internal/settings"
	"github.com/san-kum/voxgeo/internal/surface"
)

const barWidth = 20

// Options configures the terminal view.
type Options struct {
	Registry  *settings.Registry
	Driver    string
	Grid      scene.Grid
	Procedure scene.Procedure
	Theme     string
	Plain     bool
}

// Model is the Bubble Tea model of the terminal view.
type Model struct {
	reg     *settings.Registry
	driver  string
	sliders []string
	focus   int
	scene   *scene.Scene
	canvas  *surface.Canvas
	theme   Theme
	plain   bool
	editing bool
	editBuf string
	status  string
}

// NewModel binds a scene to the driver setting and paints the first frame.
// Terminal cells are one character pair per field cell.
func NewModel(opts Options) (*Model, error) {
	canvas := surface.NewCanvas(0, 0)
	renderer, err := render.New(canvas, 1, 1)
	if err != nil {
		return nil, err
	}
	sc := scene.New(opts.Grid, renderer, opts.Procedure)
	if err := sc.Bind(opts.Registry, opts.Driver); err != nil {
		return nil, err
	}

	m := &Model{
		reg:    opts.Registry,
		driver: opts.Driver,
		scene:  sc,
		canvas: canvas,
		theme:  GetTheme(opts.Theme),
		plain:  opts.Plain,
	}
	for _, name := range opts.Registry.Names() {
		if _, err := opts.Registry.Slider(name); err != nil {
			continue
		}
		if name == opts.Driver {
			m.focus = len(m.sliders)
		}
		m.sliders = append(m.sliders, name)
	}
	return m, nil
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if m.editing {
			return m, m.editKey(key)
		}
		return m, m.handleKey(key)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "up", "k":
		if m.focus > 0 {
			m.focus--
		}
	case "down", "j":
		if m.focus < len(m.sliders)-1 {
			m.focus++
		}
	case "left", "h":
		m.nudge(-1)
	case "right", "l":
		m.nudge(1)
	case "pgdown":
		m.nudge(-5)
	case "pgup":
		m.nudge(5)
	case "enter":
		if len(m.sliders) > 0 {
			m.editing, m.editBuf = true, ""
		}
	case "t":
		m.theme = nextTheme(m.theme)
	case "p":
		m.plain = !m.plain
	}
	return nil
}

func (m *Model) editKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		ev := settings.ChangeEvent{Name: m.sliders[m.focus], Raw: m.editBuf}
		if err := m.reg.Dispatch(ev); err != nil {
			m.status = err.Error()
		} else {
			m.status = ""
		}
		m.editing, m.editBuf = false, ""
	case "esc":
		m.editing, m.editBuf = false, ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' {
				m.editBuf += string(c)
			}
		}
	}
	return nil
}

func (m *Model) nudge(dir int) {
	if len(m.sliders) == 0 {
		return
	}
	slider, err := m.reg.Slider(m.sliders[m.focus])
	if err != nil {
		m.status = err.Error()
		return
	}
	slider.Nudge(dir)
}

func (m *Model) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary).
		Render(fmt.Sprintf("voxgeo · %s", m.scene.Procedure().Name))

	var field string
	if m.plain {
		field = m.canvas.Plain()
	} else {
		field = m.canvas.String()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(field),
		panelStyle.Render(m.controls()),
	)

	hint := lipgloss.NewStyle().Foreground(m.theme.Muted).Italic(true).
		Render("←/→ adjust · ↑/↓ select · enter type · t theme · p plain · q quit")

	parts := []string{title, body, hint}
	if err := m.scene.Err(); err != nil {
		parts = append(parts, lipgloss.NewStyle().Foreground(m.theme.Error).Render(err.Error()))
	}
	if m.status != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(m.theme.Error).Render(m.status))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) controls() string {
	var b strings.Builder
	label := lipgloss.NewStyle().Foreground(m.theme.Text)
	focused := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)

	for i, name := range m.sliders {
		slider, err := m.reg.Slider(name)
		if err != nil {
			continue
		}
		v := slider.Setting().Value()
		frac := 0.0
		if span := slider.Max() - slider.Min(); span > 0 {
			frac = (v - slider.Min()) / span
		}

		style, cursor := label, "  "
		if i == m.focus {
			style, cursor = focused, "▸ "
		}
		value := fmt.Sprintf("%g", v)
		if i == m.focus && m.editing {
			value = m.editBuf + "_"
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, style.Render(fmt.Sprintf("%-8s %6s", name, value)), ProgressBar(frac, barWidth))
	}

	w, h := m.scene.Grid().Width(), m.scene.Grid().Height()
	fmt.Fprintf(&b, "\nfield %dx%d · %d updates", w, h, m.scene.Updates())
	return b.String()
}

// Run starts the terminal view and blocks until it quits.
func Run(opts Options) error {
	m, err := NewModel(opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
