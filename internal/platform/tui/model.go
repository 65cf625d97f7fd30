package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/penguins/internal/core"
	"github.com/vovakirdan/penguins/internal/games/penguins"
	"github.com/vovakirdan/penguins/internal/platform/session"
)

// bannerFrames is how long the "Level N" banner stays up.
const bannerFrames = 90

// Default grid before the first WindowSizeMsg arrives.
const (
	defaultCols = 80
	defaultRows = 24
)

// Model is the Bubble Tea model for one run of the game.
type Model struct {
	session    *session.Session
	screen     *core.Screen
	vp         penguins.Viewport
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	tickRate   int
	width      int
	height     int
	banner     string
	bannerLeft int // Frames until the banner disappears
	quitting   bool
}

// NewModel creates a model driving the given session.
func NewModel(s *session.Session, tickRate int) Model {
	m := Model{
		session:    s,
		screen:     core.NewScreen(defaultCols, defaultRows),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		tickRate:   tickRate,
		width:      defaultCols,
		height:     defaultRows,
	}
	m.layout()
	return m
}

// Init starts the tick loop. The session has already reset the game.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		x, y := m.vp.ToLogical(msg.X, msg.Y)
		m.session.Game.SetPlayerPosition(x, y)
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Mute):
		m.session.ToggleMute()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRefill:
		m.session.Refill()
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.session.Step(m.inputFrame)
	m.inputFrame.Clear()

	switch {
	case res.Restarted:
		m.bannerLeft = 0
	case res.LevelChanged:
		m.banner = fmt.Sprintf("Level %d", res.State.Level)
		m.bannerLeft = bannerFrames
	case m.bannerLeft > 0:
		m.bannerLeft--
	}

	return m, tickCmd(m.tickRate)
}

// layout sizes the game area to the terminal minus the help footer.
// The logical world stays fixed; only the viewport changes.
func (m *Model) layout() {
	m.help.Width = m.width

	footer := 1
	if m.help.ShowAll {
		footer = 0
		for _, col := range m.keys.FullHelp() {
			footer = max(footer, len(col))
		}
	}
	rows := max(m.height-footer, 1)

	cfg := m.session.Game.Config()
	m.screen.Resize(m.width, rows)
	m.vp = penguins.NewViewport(m.width, rows, cfg.Screen.Width, cfg.Screen.Height)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Game.Render(m.screen, m.vp)
	if m.bannerLeft > 0 {
		penguins.DrawBanner(m.screen, m.banner)
	}

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}
