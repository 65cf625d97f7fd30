package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/penguins/internal/platform/session"
	"github.com/vovakirdan/penguins/internal/registry"
)

// ID is the registry identifier of the terminal frontend.
const ID = "terminal"

func init() {
	registry.Register(ID, func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game in the terminal.
type Frontend struct{}

// ID returns the frontend identifier.
func (Frontend) ID() string { return ID }

// Title returns a human-readable description.
func (Frontend) Title() string { return "Terminal, steer with the mouse" }

// Run starts the Bubble Tea program and blocks until the player quits.
// Logs must not go to the terminal while the alternate screen is active.
func (Frontend) Run(opts registry.Options) error {
	s, err := session.Start(ID, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	p := tea.NewProgram(
		NewModel(s, opts.Runtime.TickRate),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
