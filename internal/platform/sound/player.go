// Package sound plays feedback tones and background music through the
// system audio device.
package sound

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/numrush/internal/game"
)

// Sink receives round events and music toggles.
type Sink interface {
	game.Notifier
	SetMusic(on bool)
	Close()
}

// Player mixes short effects and the music loop into one speaker stream.
// Until Init succeeds every method is a no-op.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
	logger      *log.Logger
}

var _ Sink = (*Player)(nil)

// NewPlayer creates an uninitialized player.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger.WithPrefix("sound"),
	}
}

// Init opens the audio device. On failure the player stays silent and the
// error is returned for logging; the game runs without sound.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio unavailable, sound disabled", "err", err)
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Correct plays the correct-tap blip.
func (p *Player) Correct(n int) {
	p.play(correctTone(n))
}

// Wrong plays the wrong-tap buzz.
func (p *Player) Wrong(int) {
	p.play(wrongTone())
}

// RoundComplete plays the finish fanfare.
func (p *Player) RoundComplete() {
	p.play(fanfare())
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SetMusic starts or pauses the background loop.
func (p *Player) SetMusic(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if p.music != nil {
		p.music.Paused = !on
		return
	}
	if !on {
		return
	}

	loop, err := musicLoop()
	if err != nil {
		p.logger.Warn("music unavailable", "err", err)
		return
	}
	p.music = &beep.Ctrl{Streamer: loop}
	p.mixer.Add(p.music)
}

// Close stops everything and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.music = nil
	p.initialized = false
}

// Nop is a silent Sink for headless runs and tests.
type Nop struct {
	game.NopNotifier
}

var _ Sink = Nop{}

func (Nop) SetMusic(bool) {}
func (Nop) Close()        {}
