package config

import (
	_ "embed"
)

//go:embed defaults/penguins.yaml
var defaultPenguinsYAML []byte

// DefaultPenguinsConfig returns the built-in configuration.
func DefaultPenguinsConfig() PenguinsConfig {
	return PenguinsConfig{
		Screen: ScreenConfig{
			Width:  1024,
			Height: 600,
			Title:  "Sprite Collect penguins with Different Levels Example",
		},
		Player: PlayerConfig{
			StartX: 50,
			StartY: 50,
			Width:  256,
			Height: 256,
			Scale:  0.25,
		},
		Follower: FollowerConfig{
			Width:  256,
			Height: 256,
		},
		Drift: DriftConfig{
			Step: 2,
		},
		Levels: LevelsConfig{
			Start:   Population{Count: 50, Scale: 0.25},
			Refill:  Population{Count: 20, Scale: 0.15},
			Falling: Population{Count: 30, Scale: 0.15},
			Rising:  Population{Count: 30, Scale: 0.15},
		},
		Assets: AssetsConfig{
			Dir:        ".",
			Player:     "penguin.png",
			Follower:   "followerPenguin.png",
			Background: "background.jpg",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0,
			Startup: "main_1",
			LevelUp: "main_2",
			Sounds: map[string]string{
				"main_1": "IceBlizzard.wav",
				"main_2": "IceCream.wav",
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPenguinsYAML
}
