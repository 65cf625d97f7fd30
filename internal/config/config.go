// Package config provides YAML-based configuration for the penguin game:
// world size, sprite sizes, level populations, assets and audio.
package config

// PenguinsConfig contains all tunable settings of the game and its frontends.
type PenguinsConfig struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Player   PlayerConfig   `yaml:"player"`
	Follower FollowerConfig `yaml:"follower"`
	Drift    DriftConfig    `yaml:"drift"`
	Levels   LevelsConfig   `yaml:"levels"`
	Assets   AssetsConfig   `yaml:"assets"`
	Audio    AudioConfig    `yaml:"audio"`
}

// ScreenConfig defines the logical world size in units.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Title  string  `yaml:"title"`
}

// PlayerConfig defines the player's start position and sprite.
// Width and Height are the unscaled texture size.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Scale  float64 `yaml:"scale"`
}

// Box returns the player's collision box size.
func (p PlayerConfig) Box() (float64, float64) {
	return p.Width * p.Scale, p.Height * p.Scale
}

// FollowerConfig defines the unscaled follower texture size.
type FollowerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Box returns the follower collision box size at the given scale.
func (f FollowerConfig) Box(scale float64) (float64, float64) {
	return f.Width * scale, f.Height * scale
}

// DriftConfig defines the vertical drift of moving followers.
type DriftConfig struct {
	Step float64 `yaml:"step"` // Units per frame
}

// Population describes how many followers a level spawns and how big they are.
type Population struct {
	Count int     `yaml:"count"`
	Scale float64 `yaml:"scale"`
}

// LevelsConfig holds the population of each level.
type LevelsConfig struct {
	Start   Population `yaml:"start"`   // Level 1 at game start, static
	Refill  Population `yaml:"refill"`  // Level 1 refill, static
	Falling Population `yaml:"falling"` // Level 2, drifting down
	Rising  Population `yaml:"rising"`  // Level 3, drifting up
}

// AssetsConfig names the image files used by the window frontend.
// Relative file names are resolved against Dir.
type AssetsConfig struct {
	Dir        string `yaml:"dir"`
	Player     string `yaml:"player"`
	Follower   string `yaml:"follower"`
	Background string `yaml:"background"`
}

// AudioConfig defines the sound table and which sounds play as cues.
type AudioConfig struct {
	Enabled bool              `yaml:"enabled"`
	Volume  float64           `yaml:"volume"` // Exponent for base-2 gain, 0 = unchanged
	Startup string            `yaml:"startup"`
	LevelUp string            `yaml:"level_up"`
	Sounds  map[string]string `yaml:"sounds"`
}
