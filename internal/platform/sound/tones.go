package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// oscillator produces a fixed-length tone.
type oscillator struct {
	freq     float64
	phase    float64
	wave     Wave
	position int
	length   int
	rate     beep.SampleRate
}

func newOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, wave: wave, length: rate.N(d), rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.position >= o.length {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.length {
			return i, true
		}

		var v float64
		switch o.wave {
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		default:
			v = math.Sin(2 * math.Pi * o.phase)
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fade applies a linear release over the last part of a stream of known length.
type fade struct {
	s        beep.Streamer
	position int
	length   int
	release  int
}

func newFade(s beep.Streamer, d, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{s: s, length: rate.N(d), release: rate.N(release)}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.s.Stream(samples)
	for i := 0; i < n; i++ {
		if remaining := f.length - f.position; f.release > 0 && remaining < f.release {
			vol := math.Max(float64(remaining)/float64(f.release), 0)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// tone is a faded oscillator at the given gain.
func tone(freq float64, d time.Duration, wave Wave, gain float64) beep.Streamer {
	return volume(newFade(newOscillator(freq, d, wave, sampleRate), d, d/3, sampleRate), gain)
}

// correctTone is a short sine blip whose pitch climbs with the tapped number.
func correctTone(n int) beep.Streamer {
	return tone(520+float64(n)*12, 70*time.Millisecond, WaveSine, 0.35)
}

// wrongTone is a low square buzz.
func wrongTone() beep.Streamer {
	return tone(140, 160*time.Millisecond, WaveSquare, 0.15)
}

// fanfare is a rising major arpeggio played when a round is finished.
func fanfare() beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99, 1046.5}
	parts := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		parts[i] = tone(f, 120*time.Millisecond, WaveSine, 0.35)
	}
	return beep.Seq(parts...)
}

// melody is the background loop: a short pentatonic phrase of sine notes.
var melody = []float64{392, 440, 523.25, 587.33, 523.25, 440, 392, 329.63}

const noteLength = 220 * time.Millisecond

// musicLoop returns an endless stream of the background melody.
func musicLoop() (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(melody))
	for _, f := range melody {
		sine, err := generators.SineTone(sampleRate, f)
		if err != nil {
			return nil, err
		}
		note := beep.Take(sampleRate.N(noteLength), sine)
		parts = append(parts, volume(newFade(note, noteLength, noteLength/2, sampleRate), 0.08))
	}
	phrase := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	phrase.Append(beep.Seq(parts...))
	return beep.Loop(-1, phrase.Streamer(0, phrase.Len())), nil
}
