// Package audio plays the game's sound cues through a single speaker.
// Sounds are decoded into memory once at load time, so playing a cue never
// touches the filesystem.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
)

// ErrUnknownSound is returned when a cue names a sound that was never loaded.
var ErrUnknownSound = errors.New("audio: unknown sound")

// Player holds the decoded sound table and mixes cues onto the speaker.
// All methods are safe on a nil *Player, which plays nothing.
type Player struct {
	mu      sync.Mutex
	buffers map[string]*beep.Buffer
	mixer   *beep.Mixer
	volume  float64
	muted   bool
	started bool
}

// Load decodes every sound of the table. Relative file names are resolved
// against dir. A missing or unreadable file fails the whole load.
func Load(sounds map[string]string, dir string, volume float64) (*Player, error) {
	p := &Player{
		buffers: make(map[string]*beep.Buffer, len(sounds)),
		mixer:   &beep.Mixer{},
		volume:  volume,
	}

	names := make([]string, 0, len(sounds))
	for name := range sounds {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		path := sounds[name]
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		buf, err := decodeFile(path)
		if err != nil {
			return nil, fmt.Errorf("audio: cannot load sound %q: %w", name, err)
		}
		p.buffers[name] = buf
	}

	return p, nil
}

func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return buf, nil
}

// Start opens the speaker and begins mixing. Calling it again is a no-op.
func (p *Player) Start() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Play starts the named sound once, mixed over anything already playing.
// Before Start or while muted it only checks the name.
func (p *Player) Play(name string) error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	buf, ok := p.buffers[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSound, name)
	}
	if !p.started || p.muted {
		return nil
	}

	vol := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   p.volume,
	}
	speaker.Lock()
	p.mixer.Add(vol)
	speaker.Unlock()
	return nil
}

// SetMuted silences future cues. Sounds already playing finish.
func (p *Player) SetMuted(muted bool) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Muted reports whether cues are silenced.
func (p *Player) Muted() bool {
	if p == nil {
		return true
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Names returns the loaded sound names in sorted order.
func (p *Player) Names() []string {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	names := make([]string, 0, len(p.buffers))
	for name := range p.buffers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Duration returns the length of a loaded sound.
func (p *Player) Duration(name string) (time.Duration, bool) {
	if p == nil {
		return 0, false
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	buf, ok := p.buffers[name]
	if !ok {
		return 0, false
	}
	return sampleRate.D(buf.Len()), true
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
}
