package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/revealgrid/internal/config"
	"github.com/iw2rmb/revealgrid/record"
	"github.com/iw2rmb/revealgrid/table"
)

var (
	quitKey = key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit"))
	helpKey = key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "more keys"))

	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
	popupStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// chromeHeight is the number of lines taken by the header and help line.
const chromeHeight = 2

type app struct {
	table  table.Model
	help   help.Model
	source string
}

func newApp(records []record.Record, source string, settings config.Settings, logger *log.Logger) app {
	cfg := table.Config{
		Records: records,
		Style:   table.DefaultStyle(),
		KeyMap:  table.DefaultKeyMap(),
		Logger:  logger,
		OnChange: func(ev table.ChangeEvent) {
			logger.Debug("grid changed",
				"version", ev.Version,
				"revealed", ev.Revealed,
				"cursor", fmt.Sprintf("%d,%d", ev.Cursor.Row, ev.Cursor.Col),
				"reset", ev.Reset)
		},
	}
	if cb := (systemClipboard{}); cb.available() {
		cfg.Clipboard = cb
	} else {
		logger.Warn("system clipboard unavailable; copy and paste disabled")
	}
	cfg = settings.Apply(cfg)

	return app{table: table.New(cfg), help: help.New(), source: source}
}

func (a app) Init() tea.Cmd { return a.table.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width
		a.table = a.table.SetSize(msg.Width, max(msg.Height-chromeHeight, 0))
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitKey):
			return a, tea.Quit
		case key.Matches(msg, helpKey):
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return a, cmd
}

func (a app) View() string {
	short := a.help
	short.ShowAll = false
	base := lipgloss.JoinVertical(lipgloss.Left,
		a.header(),
		a.table.View(),
		short.View(a),
	)
	if !a.help.ShowAll {
		return base
	}
	return overlay.Composite(popupStyle.Render(a.help.View(a)), base, overlay.Center, overlay.Center, 0, 0)
}

func (a app) header() string {
	g := a.table.Grid()
	cur := g.Cursor()
	status := fmt.Sprintf("%d/%d revealed · row %d col %d", g.Revealed(), g.TotalCells(), cur.Row, cur.Col)
	return titleStyle.Render(a.source) + "  " + statusStyle.Render(status)
}

// ShortHelp implements help.KeyMap.
func (a app) ShortHelp() []key.Binding {
	return append(a.table.KeyMap().ShortHelp(), helpKey, quitKey)
}

// FullHelp implements help.KeyMap.
func (a app) FullHelp() [][]key.Binding {
	return append(a.table.KeyMap().FullHelp(), []key.Binding{helpKey, quitKey})
}
