package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/penguins/internal/audio"
	"github.com/vovakirdan/penguins/internal/config"
	"github.com/vovakirdan/penguins/internal/core"
	"github.com/vovakirdan/penguins/internal/registry"
)

const (
	defaultFrontend  = "window"
	terminalFrontend = "terminal"
)

var playCmd = &cobra.Command{
	Use:   "play [frontend]",
	Short: "Play the game",
	Long: `Start the game in the given frontend (default: window).

Controls:
  Mouse      - Steer the penguin
  R          - Restart
  F          - More penguins (level 1 only)
  M          - Mute
  ?          - Help (terminal)
  Q/Esc      - Quit

Examples:
  penguins play
  penguins play terminal
  penguins play window --seed 7 --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	id := defaultFrontend
	if len(args) == 1 {
		id = args[0]
	}

	if !registry.Exists(id) {
		return fmt.Errorf("unknown frontend %q, run 'penguins list' to see available frontends", id)
	}

	logFile := flagLogFile
	if id == terminalFrontend {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("the terminal frontend needs an interactive terminal")
		}
		if logFile == "" {
			logFile = defaultLogFile()
		}
	}

	logger, closeLog, err := newLogger(flagLogLevel, logFile)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close, nothing left to log to
	defer closeLog()

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "path", source)

	sounds, err := loadSounds(cfg, logger)
	if err != nil {
		return err
	}
	defer sounds.Close()

	frontend, err := registry.Create(id)
	if err != nil {
		return err
	}

	runtime := core.DefaultConfig()
	runtime.Seed = flagSeed
	if flagFPS > 0 {
		runtime.TickRate = flagFPS
	}

	opts := registry.Options{
		Config:     cfg,
		Runtime:    runtime,
		ConfigPath: source,
		Watch:      flagWatch,
		Logger:     logger,
	}
	if sounds != nil {
		opts.Sounds = sounds
	}
	return frontend.Run(opts)
}

var _ registry.Sounds = (*audio.Player)(nil)

// loadSounds decodes the sound table. A missing sound file is fatal; a
// missing audio device only disables sound.
func loadSounds(cfg config.PenguinsConfig, logger *log.Logger) (*audio.Player, error) {
	if flagMute || !cfg.Audio.Enabled {
		logger.Info("sound disabled")
		return nil, nil
	}

	sounds, err := audio.Load(cfg.Audio.Sounds, cfg.Assets.Dir, cfg.Audio.Volume)
	if err != nil {
		return nil, err
	}
	if err := sounds.Start(); err != nil {
		logger.Warn("playing without sound", "error", err)
		return nil, nil
	}
	for _, name := range sounds.Names() {
		d, _ := sounds.Duration(name)
		logger.Debug("sound ready", "sound", name, "length", d)
	}
	return sounds, nil
}
