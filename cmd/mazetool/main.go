// mazetool renders generated mazes in the terminal so level shaping can be
// inspected without a panel attached.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"glowgrid.dev/glowgrid/hud"
	"glowgrid.dev/glowgrid/internal/render"
	"glowgrid.dev/glowgrid/labyrinth"
	"glowgrid.dev/glowgrid/maze"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	mazeStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	statStyle = lipgloss.NewStyle().Faint(true)

	wallCell  = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Render("██")
	pathCell  = "  "
	startCell = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Render("▓▓")
	exitCell  = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Render("▓▓")
)

type keyMap struct {
	LevelUp   key.Binding
	LevelDown key.Binding
	Reseed    key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LevelUp, k.LevelDown, k.Reseed, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	LevelUp: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "next level"),
	),
	LevelDown: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "prev level"),
	),
	Reseed: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reseed"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type model struct {
	level int
	seed  int64
	grid  *maze.Grid
	help  help.Model
}

func newModel(level int, seed int64) model {
	m := model{level: level, seed: seed, help: help.New()}
	m.regenerate()
	return m
}

func (m *model) regenerate() {
	gen := maze.NewGenerator(rand.New(rand.NewSource(m.seed)))
	m.grid = gen.Generate(m.level, maze.Layout{
		ScreenW:   render.PanelWidth,
		ScreenH:   render.PanelHeight,
		HUDHeight: hud.Height,
		CellSize:  labyrinth.CellSizeForLevel(m.level),
	})
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.LevelUp):
			m.level++
			m.regenerate()
		case key.Matches(msg, keys.LevelDown):
			if m.level > 1 {
				m.level--
				m.regenerate()
			}
		case key.Matches(msg, keys.Reseed):
			m.seed++
			m.regenerate()
		}
	}
	return m, nil
}

func (m model) View() string {
	var sb strings.Builder
	for cy := 0; cy < m.grid.Height; cy++ {
		for cx := 0; cx < m.grid.Width; cx++ {
			switch m.grid.At(cx, cy) {
			case maze.TileStart:
				sb.WriteString(startCell)
			case maze.TileExit:
				sb.WriteString(exitCell)
			case maze.TileWall:
				sb.WriteString(wallCell)
			default:
				sb.WriteString(pathCell)
			}
		}
		if cy < m.grid.Height-1 {
			sb.WriteString("\n")
		}
	}

	stats := statStyle.Render(fmt.Sprintf(
		"level %d  seed %d  %dx%d cells @ %dpx  start (%d,%d)  exit (%d,%d)",
		m.level, m.seed,
		m.grid.Width, m.grid.Height, m.grid.CellSize,
		m.grid.StartX, m.grid.StartY, m.grid.ExitX, m.grid.ExitY,
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("mazetool"),
		mazeStyle.Render(sb.String()),
		stats,
		m.help.View(keys),
	)
}

func main() {
	level := flag.Int("level", 1, "starting level")
	seed := flag.Int64("seed", 1, "RNG seed")
	flag.Parse()

	if _, err := tea.NewProgram(newModel(*level, *seed)).Run(); err != nil {
		log.Fatal(err)
	}
}
