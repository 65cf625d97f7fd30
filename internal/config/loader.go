package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by Load when no config file was found.
const SourceEmbedded = "embedded"

// Load loads the game configuration.
// Search order: customPath -> ~/.penguins/configs/penguins.yaml -> ./configs/penguins.yaml -> embedded default.
// Values missing from a file keep their defaults. The second return value
// names where the configuration came from.
func Load(customPath string) (PenguinsConfig, string, error) {
	// An explicit path must work
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	// Implicit locations fall through on any error
	for _, path := range []string{userConfigPath("penguins.yaml"), filepath.Join("configs", "penguins.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := LoadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := parse(defaultPenguinsYAML)
	if err != nil {
		return DefaultPenguinsConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// LoadFile reads, parses and validates a single config file.
func LoadFile(path string) (PenguinsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PenguinsConfig{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return cfg, nil
}

// parse overlays YAML onto the built-in defaults and validates the result.
func parse(data []byte) (PenguinsConfig, error) {
	cfg := DefaultPenguinsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable game.
func (c PenguinsConfig) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %vx%v", c.Screen.Width, c.Screen.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Scale <= 0 {
		errs = append(errs, errors.New("player width, height and scale must be positive"))
	}
	if c.Follower.Width <= 0 || c.Follower.Height <= 0 {
		errs = append(errs, errors.New("follower width and height must be positive"))
	}
	if c.Drift.Step < 0 {
		errs = append(errs, fmt.Errorf("drift step must not be negative, got %v", c.Drift.Step))
	}

	pops := []struct {
		name string
		pop  Population
	}{
		{"start", c.Levels.Start},
		{"refill", c.Levels.Refill},
		{"falling", c.Levels.Falling},
		{"rising", c.Levels.Rising},
	}
	for _, p := range pops {
		if p.pop.Count < 0 {
			errs = append(errs, fmt.Errorf("levels.%s.count must not be negative, got %d", p.name, p.pop.Count))
		}
		if p.pop.Scale <= 0 {
			errs = append(errs, fmt.Errorf("levels.%s.scale must be positive, got %v", p.name, p.pop.Scale))
		}
	}

	if c.Audio.Startup != "" {
		if _, ok := c.Audio.Sounds[c.Audio.Startup]; !ok {
			errs = append(errs, fmt.Errorf("audio.startup names unknown sound %q", c.Audio.Startup))
		}
	}
	if c.Audio.LevelUp != "" {
		if _, ok := c.Audio.Sounds[c.Audio.LevelUp]; !ok {
			errs = append(errs, fmt.Errorf("audio.level_up names unknown sound %q", c.Audio.LevelUp))
		}
	}

	return errors.Join(errs...)
}

// Path resolves an asset file name against the asset directory.
func (a AssetsConfig) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(a.Dir, name)
}

// Marshal renders the configuration as YAML.
func (c PenguinsConfig) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
	}
	return out, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".penguins", "configs", filename)
}
