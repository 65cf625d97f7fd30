package window

import (
	"fmt"
	"image"
	_ "image/jpeg" // background.jpg
	_ "image/png"  // penguin sprites

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/penguins/internal/config"
)

// Sprites holds the textures of one run.
type Sprites struct {
	Player     *ebiten.Image
	Follower   *ebiten.Image
	Background *ebiten.Image
}

// LoadSprites loads every texture named in the asset config.
// A missing or undecodable file fails the whole load.
func LoadSprites(assets config.AssetsConfig) (Sprites, error) {
	var s Sprites
	var err error

	if s.Player, err = loadImage("player", assets.Path(assets.Player)); err != nil {
		return Sprites{}, err
	}
	if s.Follower, err = loadImage("follower", assets.Path(assets.Follower)); err != nil {
		return Sprites{}, err
	}
	if s.Background, err = loadImage("background", assets.Path(assets.Background)); err != nil {
		return Sprites{}, err
	}
	return s, nil
}

func loadImage(kind, path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("window: cannot load %s image %s: %w", kind, path, err)
	}
	return img, nil
}

// applyTextureSizes replaces the configured sprite sizes with the texture
// bounds, so collision boxes match what is drawn.
func applyTextureSizes(cfg *config.PenguinsConfig, player, follower image.Rectangle) {
	cfg.Player.Width = float64(player.Dx())
	cfg.Player.Height = float64(player.Dy())
	cfg.Follower.Width = float64(follower.Dx())
	cfg.Follower.Height = float64(follower.Dy())
}
