package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/streamlinechart"

	"gridpad/pkg/nav"
	"gridpad/pkg/pad"
)

type RunCommand struct{}

const (
	headerHeight = 2 // title + blank line
	padHeight    = 4 // pad glyph block + blank
	legendHeight = 2 // legend row + blank
	footerHeight = 7 // log box height
	maxLogs      = 5 // number of log messages to show
	borderSize   = 2 // chart border
)

// Axis colors for the position chart
var axisColors = map[string]string{
	"horizontal": "208", // orange
	"vertical":   "51",  // cyan
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	chartStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	glyphStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	hiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

type runModel struct {
	ctrl     *pad.Controller
	chart    *streamlinechart.Model
	width    int      // terminal width
	height   int      // terminal height
	logs     []string // last N log messages
	quitting bool
	pose     nav.Pose
	selected string // identifier of the last committed selection
}

func (m *runModel) addLog(msg string) {
	m.logs = append(m.logs, msg)
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

// Messages from the controller
type stateMsg pad.State
type logMsg string

func waitForState(ctrl *pad.Controller) tea.Cmd {
	return func() tea.Msg {
		return stateMsg(<-ctrl.States())
	}
}

func waitForLog(ctrl *pad.Controller) tea.Cmd {
	return func() tea.Msg {
		return logMsg(<-ctrl.Logs())
	}
}

// chartSize calculates the size of the chart based on terminal dimensions
func (m *runModel) chartSize() (width, height int) {
	if m.width == 0 || m.height == 0 {
		return 80, 12 // default size before we know terminal size
	}
	width = m.width - borderSize - 2
	if width < 40 {
		width = 40
	}
	height = m.height - headerHeight - padHeight - legendHeight - footerHeight - borderSize
	if height < 8 {
		height = 8
	}
	return width, height
}

func (m *runModel) resizeChart() {
	w, h := m.chartSize()
	m.chart.Resize(w, h)
}

func initialRunModel(ctrl *pad.Controller) runModel {
	chart := streamlinechart.New(80, 12,
		streamlinechart.WithYRange(0, 10),
	)

	for name, color := range axisColors {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		chart.SetDataSetStyles(name, runes.ThinLineStyle, style)
	}

	return runModel{
		ctrl:  ctrl,
		chart: &chart,
		pose:  ctrl.Pose(),
	}
}

func (m runModel) Init() tea.Cmd {
	// Start listening for state and log updates
	return tea.Batch(
		waitForState(m.ctrl),
		waitForLog(m.ctrl),
	)
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeChart()
		return m, nil

	case tea.KeyMsg:
		// Input events arrive one at a time on this loop; each move runs
		// to completion before the next key is seen.
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "up":
			m.ctrl.Move(context.Background(), nav.Translate, 1)
		case "down":
			m.ctrl.Move(context.Background(), nav.Translate, -1)
		case "right":
			m.ctrl.Move(context.Background(), nav.Rotate, 1)
		case "left":
			m.ctrl.Move(context.Background(), nav.Rotate, -1)
		case "r":
			if err := m.ctrl.Refresh(context.Background()); err != nil {
				m.addLog(fmt.Sprintf("Refresh error: %v", err))
			}
		}
		return m, nil

	case stateMsg:
		state := pad.State(msg)
		if state.Error == nil {
			m.pose = state.Pose
			m.selected = state.Selected.ID
			m.chart.PushDataSet("horizontal", float64(state.Pose.H))
			m.chart.PushDataSet("vertical", float64(state.Pose.V))
			m.chart.DrawAll()
		}
		return m, waitForState(m.ctrl)

	case logMsg:
		m.addLog(string(msg))
		return m, waitForLog(m.ctrl)
	}

	return m, nil
}

func (m runModel) View() string {
	if m.quitting {
		return "Pad stopped.\n"
	}

	var sb strings.Builder

	// Header
	sb.WriteString(titleStyle.Render("Gridpad"))
	sb.WriteString(fmt.Sprintf(" - (%d, %d) facing %03d°", m.pose.H, m.pose.V, m.pose.Rot))
	if m.selected != "" {
		sb.WriteString(statusStyle.Render("  selected " + m.selected))
	}
	sb.WriteString("\n\n")

	// Pad
	sb.WriteString(m.renderPad())
	sb.WriteString("\n")

	// Chart
	sb.WriteString(chartStyle.Render(m.chart.View()))
	sb.WriteString("\n")

	// Legend
	sb.WriteString(renderLegend())
	sb.WriteString("\n")

	// Log box
	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(m.width - 4).
		Foreground(lipgloss.Color("9"))

	var logLines string
	if len(m.logs) == 0 {
		logLines = statusStyle.Render("Arrows move and turn the pad, 'r' refreshes, 'q' quits")
	} else {
		logLines = strings.Join(m.logs, "\n")
	}
	sb.WriteString(logStyle.Render(logLines))
	sb.WriteString("\n")

	return sb.String()
}

// renderPad draws the four directional glyphs. The configured visibility
// toggles hide a glyph pair without changing what the keys do.
func (m runModel) renderPad() string {
	cfg := m.ctrl.Config()

	up, down := glyph("▲", cfg.ShowVertical), glyph("▼", cfg.ShowVertical)
	left, right := glyph("◀", cfg.ShowHorizontal), glyph("▶", cfg.ShowHorizontal)

	return fmt.Sprintf("     %s\n  %s  %s  %s      %s\n     %s",
		up, left, glyphStyle.Render("●"), right,
		statusStyle.Render(fmt.Sprintf("step ×%d", cfg.StepIncrement)),
		down)
}

func glyph(g string, visible bool) string {
	if visible {
		return glyphStyle.Render(g)
	}
	return hiddenStyle.Render("·")
}

func renderLegend() string {
	var items []string
	for _, name := range []string{"horizontal", "vertical"} {
		colorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(axisColors[name])).Bold(true)
		items = append(items, colorStyle.Render("━━")+" "+name)
	}
	return strings.Join(items, "  ")
}

func (c *RunCommand) Execute(args []string) error {
	cfg, err := pad.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "No configuration found. Run 'gridpad setup' first.")
		os.Exit(1)
	}

	ctrl, err := pad.NewController(cfg)
	if err != nil {
		log.Fatalf("Failed to create controller: %v", err)
	}
	defer ctrl.Close()

	// Start the refresh loop in the background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := ctrl.Start(ctx); err != nil && err != context.Canceled {
			log.Printf("Controller error: %v", err)
		}
	}()

	p := tea.NewProgram(initialRunModel(ctrl), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}

	return nil
}
