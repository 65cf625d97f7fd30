package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/penguins/internal/platform/session"
	"github.com/vovakirdan/penguins/internal/registry"
)

// ID is the registry identifier of the window frontend.
const ID = "window"

func init() {
	registry.Register(ID, func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game in a desktop window.
type Frontend struct{}

// ID returns the frontend identifier.
func (Frontend) ID() string { return ID }

// Title returns a human-readable description.
func (Frontend) Title() string { return "Desktop window with sprites and sound" }

// Run loads the textures, opens the window and blocks until it is closed.
// Textures are loaded before the window opens; a missing file is fatal.
func (Frontend) Run(opts registry.Options) error {
	sprites, err := LoadSprites(opts.Config.Assets)
	if err != nil {
		return err
	}
	applyTextureSizes(&opts.Config, sprites.Player.Bounds(), sprites.Follower.Bounds())

	s, err := session.Start(ID, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := opts.Config
	ebiten.SetWindowSize(int(cfg.Screen.Width), int(cfg.Screen.Height))
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	if err := ebiten.RunGame(newGame(s, sprites)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
