package session

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/penguins/internal/config"
	"github.com/vovakirdan/penguins/internal/core"
	"github.com/vovakirdan/penguins/internal/registry"
)

func testOptions(buf *bytes.Buffer) registry.Options {
	return registry.Options{
		Config:  config.DefaultPenguinsConfig(),
		Runtime: core.RuntimeConfig{TickRate: 60, Seed: 42},
		Logger:  log.NewWithOptions(buf, log.Options{Level: log.DebugLevel}),
	}
}

func TestStartAndClose(t *testing.T) {
	var buf bytes.Buffer
	s, err := Start("test", testOptions(&buf))
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	st := s.Game.State()
	if st.Level != 1 || st.Remaining != 50 {
		t.Errorf("started at %+v", st)
	}
	if s.Game.Seed() != 42 {
		t.Errorf("seed %d, expected 42", s.Game.Seed())
	}

	s.Close()
	out := buf.String()
	for _, want := range []string{"game started", "frontend=test", "game over"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestStepLogsLevelChange(t *testing.T) {
	var buf bytes.Buffer
	s, err := Start("test", testOptions(&buf))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	// Collect everything by parking a giant player over the screen.
	cfg := s.Game.Config()
	cfg.Player.Scale = 100
	s.Game.Retune(cfg)
	s.Game.SetPlayerPosition(512, 300)

	res := s.Step(core.InputFrame{})
	if !res.LevelChanged || res.State.Level != 2 {
		t.Fatalf("step result %+v, expected a change to level 2", res)
	}
	if !strings.Contains(buf.String(), "level complete") {
		t.Errorf("level change not logged:\n%s", buf.String())
	}
}

func TestRefillAndMute(t *testing.T) {
	var buf bytes.Buffer
	s, err := Start("test", testOptions(&buf))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if !s.Refill() {
		t.Error("refill on level 1 refused")
	}
	// A nil sound player is always muted.
	if !s.ToggleMute() {
		t.Error("nil player reported unmuted")
	}
}

func TestWatchEmbedded(t *testing.T) {
	var buf bytes.Buffer
	opts := testOptions(&buf)
	opts.Watch = true
	opts.ConfigPath = config.SourceEmbedded

	s, err := Start("test", opts)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer s.Close()

	if s.watcher != nil {
		t.Error("embedded config should not be watched")
	}
}

func TestWatchReloadsTuning(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "penguins.yaml")
	if err := os.WriteFile(path, []byte("drift:\n  step: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	opts := testOptions(&buf)
	opts.Watch = true
	opts.ConfigPath = path
	opts.Config.Player.Width = 100 // as if measured from a texture

	s, err := Start("test", opts)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer s.Close()

	if err := os.WriteFile(path, []byte("drift:\n  step: 5\nplayer:\n  scale: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for s.Game.Config().Drift.Step != 5 {
		if time.Now().After(deadline) {
			t.Fatalf("reload not applied:\n%s", buf.String())
		}
		s.Step(core.InputFrame{})
		time.Sleep(10 * time.Millisecond)
	}

	if w := s.Game.Snapshot().Player.W; w != 50 {
		t.Errorf("player width %v after reload, expected 100*0.5", w)
	}
}

type recordedSounds struct {
	played []string
	muted  bool
}

func (r *recordedSounds) Play(name string) error {
	if !r.muted {
		r.played = append(r.played, name)
	}
	return nil
}

func (r *recordedSounds) SetMuted(muted bool) { r.muted = muted }
func (r *recordedSounds) Muted() bool         { return r.muted }

func TestCues(t *testing.T) {
	var buf bytes.Buffer
	sounds := &recordedSounds{}
	opts := testOptions(&buf)
	opts.Sounds = sounds

	s, err := Start("test", opts)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	cfg := s.Game.Config()
	if len(sounds.played) != 1 || sounds.played[0] != cfg.Audio.Startup {
		t.Fatalf("played %v after start, expected [%s]", sounds.played, cfg.Audio.Startup)
	}

	cfg.Player.Scale = 100
	s.Game.Retune(cfg)
	s.Game.SetPlayerPosition(512, 300)
	s.Step(core.InputFrame{})
	if len(sounds.played) != 2 || sounds.played[1] != cfg.Audio.LevelUp {
		t.Fatalf("played %v after level change", sounds.played)
	}

	if !s.ToggleMute() || !sounds.Muted() {
		t.Error("mute not forwarded")
	}
	s.Step(core.InputFrame{}) // level 2 -> 3 while muted
	if len(sounds.played) != 2 {
		t.Errorf("muted cue played: %v", sounds.played)
	}
	if s.ToggleMute() {
		t.Error("second toggle left sound muted")
	}
}
