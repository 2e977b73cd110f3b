package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/statebars/pkg/canvas"
	"github.com/matzehuels/statebars/pkg/chart/data"
	"github.com/matzehuels/statebars/pkg/chart/render"
	"github.com/matzehuels/statebars/pkg/scene"
	"github.com/matzehuels/statebars/pkg/scene/sink"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	tipStyle          = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

const barCells = 30

func (c *CLI) inspectCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "inspect [data.json]",
		Short: "Browse the ranked states and highlight one",
		Long: `Browse the chart's states for a dataset file or http(s) URL.

The cursor is the brushed state: moving it redraws the chart with that
state highlighted and shows the bar's tooltip. Press enter to write the
current chart to an SVG file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			runner := c.newRunner(cfg)
			ds, err := runner.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if output == "" {
				output = basePath("", args[0]) + ".svg"
			}

			provider := canvas.NewFixed(cfg.Chart.Width, cfg.Chart.Height)
			m := newInspectModel(runner.Renderer, provider, ds, output)

			final, err := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithOutput(os.Stderr)).Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(inspectModel); ok && fm.written != "" {
				printSuccess("Wrote %s", fm.written)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "SVG file written on enter (default next to the input)")
	return cmd
}

// inspectModel is the bubbletea model behind the inspect command. The list
// acts as the sibling view that brushes the chart.
type inspectModel struct {
	chart   *render.Chart
	title   string
	entries []data.Entry
	max     float64

	cursor int
	offset int
	height int
	key    data.Key

	output  string
	written string
	err     error
}

func newInspectModel(r *render.Renderer, p canvas.Provider, ds *data.Dataset, output string) inspectModel {
	chart := render.NewChart(r, p)
	chart.SetData(ds)
	entries := data.Prepare(ds.States, r.Weights)

	m := inspectModel{
		chart:   chart,
		title:   r.Options.Title,
		entries: entries,
		height:  15,
		key:     data.KeyMale,
		output:  output,
	}
	for _, e := range entries {
		m.max = max(m.max, e.Per100k)
	}
	m.brush()
	return m
}

// brush selects the entry under the cursor and hovers its bar segment.
func (m *inspectModel) brush() {
	if len(m.entries) == 0 {
		return
	}
	m.chart.SetBrushed(m.entries[m.cursor].Name)
	m.hover()
}

// hover dispatches a pointer enter on the selected segment so the surface
// tooltip holds its lines.
func (m *inspectModel) hover() {
	s := m.chart.Surface()
	if s == nil || len(m.entries) == 0 {
		return
	}
	name := m.entries[m.cursor].Name
	for _, bar := range s.Root.FindAll(string(m.key)) {
		if v, _ := bar.Get("data-state"); v == name {
			bar.Dispatch(scene.EventPointerEnter, scene.PointerEvent{X: bar.Float("x"), Y: bar.Float("y")})
			return
		}
	}
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
				m.brush()
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
				m.brush()
			}
		case "tab":
			if m.key == data.KeyMale {
				m.key = data.KeyFemale
			} else {
				m.key = data.KeyMale
			}
			m.hover()
		case "enter":
			m.err = m.write()
			if m.err == nil {
				m.written = m.output
			}
		}
	case tea.WindowSizeMsg:
		m.height = max(5, msg.Height-14)
	}
	return m, nil
}

// write saves the current surface as an interactive SVG.
func (m inspectModel) write() error {
	s := m.chart.Surface()
	if s == nil {
		return fmt.Errorf("nothing drawn yet")
	}
	return writeOutput(m.output, sink.RenderSVG(s.Root, s.Width, s.Height, sink.WithTooltips()))
}

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ brush  tab male/female  ⏎ write svg  q quit"))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(m.entries))
	for i := m.offset; i < end; i++ {
		e := m.entries[i]
		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		line := fmt.Sprintf("%s%3d %-22s", cursor, i+1, e.Name)
		b.WriteString(style.Render(line))
		b.WriteString(" " + rateBar(e.Male, e.Female, m.max, barCells))
		b.WriteString(" " + StyleNumber.Render(fmt.Sprintf("%.2f", e.Per100k)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if tip := m.tipLines(); len(tip) > 0 {
		b.WriteString(tipStyle.Render(listSelectedStyle.Render(tip[0]) + "\n" + strings.Join(tip[1:], "\n")))
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(StyleWarning.Render(m.err.Error()))
	case m.written != "":
		b.WriteString(listDimStyle.Render(iconArrow + " " + m.written))
	default:
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.entries))))
	}
	return b.String()
}

func (m inspectModel) tipLines() []string {
	s := m.chart.Surface()
	if s == nil || s.Tip == nil {
		return nil
	}
	return s.Tip.Lines()
}
