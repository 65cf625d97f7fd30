// Package session drives one run of the game for a frontend: it owns the
// game, plays the audio cues, applies config reloads and logs the run.
// Frontends only translate their input and draw snapshots.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/penguins/internal/config"
	"github.com/vovakirdan/penguins/internal/core"
	"github.com/vovakirdan/penguins/internal/games/penguins"
	"github.com/vovakirdan/penguins/internal/registry"
)

// Session wraps a game with its side effects.
// Like the game, it is driven from a single goroutine.
type Session struct {
	Game *penguins.Game

	cfg     config.PenguinsConfig
	logger  *log.Logger
	sounds  registry.Sounds
	watcher *config.Watcher
}

// Start creates and resets the game, starts watching the config file when
// requested and plays the startup cue.
func Start(frontend string, opts registry.Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		Game:   penguins.New(opts.Config),
		cfg:    opts.Config,
		logger: logger.With("frontend", frontend),
		sounds: opts.Sounds,
	}

	if opts.Watch {
		if opts.ConfigPath == "" || opts.ConfigPath == config.SourceEmbedded {
			s.logger.Warn("nothing to watch, running on embedded config")
		} else {
			w, err := config.NewWatcher(opts.ConfigPath)
			if err != nil {
				return nil, err
			}
			s.watcher = w
			s.logger.Info("watching config", "path", opts.ConfigPath)
		}
	}

	s.Game.Reset(opts.Runtime)
	s.logger.Info("game started", "seed", s.Game.Seed(), "followers", s.Game.State().Remaining)

	s.cue(opts.Config.Audio.Startup)
	return s, nil
}

// Step applies a pending config reload, then advances the game one frame.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	s.reload()

	res := s.Game.Step(in)
	if res.Restarted {
		s.logger.Info("game restarted", "seed", s.Game.Seed())
	}
	if res.LevelChanged {
		s.logger.Info("level complete", "level", res.State.Level, "score", res.State.Score)
		s.cue(s.cfg.Audio.LevelUp)
	}
	return res
}

// Refill drops the level 1 refill batch, as the F key does.
func (s *Session) Refill() bool {
	ok := s.Game.Refill()
	if ok {
		s.logger.Debug("refill", "remaining", s.Game.State().Remaining)
	} else {
		s.logger.Debug("refill ignored", "level", s.Game.State().Level)
	}
	return ok
}

// ToggleMute flips the audio mute state and returns the new state.
// Without sound the session stays muted.
func (s *Session) ToggleMute() bool {
	if s.sounds == nil {
		return true
	}
	muted := !s.sounds.Muted()
	s.sounds.SetMuted(muted)
	s.logger.Debug("audio", "muted", muted)
	return muted
}

// Close stops the config watcher and logs the final score.
func (s *Session) Close() {
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			s.logger.Warn("closing config watcher", "error", err)
		}
	}
	st := s.Game.State()
	s.logger.Info("game over", "level", st.Level, "score", st.Score)
}

func (s *Session) reload() {
	if s.watcher == nil {
		return
	}
	cfg, ok, err := s.watcher.Poll()
	if err != nil {
		// Keep playing with the last good config.
		s.logger.Warn("config reload failed", "error", err)
		return
	}
	if !ok {
		return
	}
	// Texture sizes are fixed for a run; only scales and counts retune.
	cfg.Player.Width, cfg.Player.Height = s.cfg.Player.Width, s.cfg.Player.Height
	cfg.Follower = s.cfg.Follower
	s.cfg = cfg
	s.Game.Retune(cfg)
	s.logger.Info("config reloaded", "drift", cfg.Drift.Step, "player_scale", cfg.Player.Scale)
}

func (s *Session) cue(name string) {
	if name == "" || s.sounds == nil {
		return
	}
	if err := s.sounds.Play(name); err != nil {
		s.logger.Warn("cannot play sound", "sound", name, "error", err)
	}
}
