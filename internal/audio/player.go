// Package audio plays the game's sound effects through the system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate  = beep.SampleRate(44100)
	hitDuration = 180 * time.Millisecond
)

// Player mixes sound effects into a single speaker stream.
// A Player that was never initialized, or was muted, stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // Log2 volume offset; 0 is unchanged
	muted       bool
	initialized bool
}

// NewPlayer creates a player. Call Initialize before sounds can be heard.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer.
// Calling it more than once is a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetMuted silences or restores sound effects.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports whether sound effects are silenced.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// OnHit plays the collision sound.
func (p *Player) OnHit() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	// The speaker goroutine reads the mixer, so additions go through its lock.
	s := HitSound(sampleRate, p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// HitSound returns the finite collision effect: a short falling tone.
func HitSound(sr beep.SampleRate, volume float64) beep.Streamer {
	s := beep.Take(sr.N(hitDuration), NewHitGenerator(sr, hitDuration))
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume}
}

// HitGenerator produces a tone that slides from 440Hz down to 110Hz and
// fades out over its duration.
type HitGenerator struct {
	sr    beep.SampleRate
	total int
	pos   int
	phase float64
}

// NewHitGenerator creates a hit sound generator.
func NewHitGenerator(sr beep.SampleRate, d time.Duration) *HitGenerator {
	return &HitGenerator{
		sr:    sr,
		total: sr.N(d),
	}
}

func (g *HitGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}

		progress := float64(g.pos) / float64(g.total)
		freq := 440 * math.Pow(0.25, progress)
		envelope := 1 - progress

		sample := 0.4 * envelope * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *HitGenerator) Err() error {
	return nil
}
