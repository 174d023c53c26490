package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/scrollframe/core"
)

// floatBuffer holds mono samples in [-1, 1]
type floatBuffer []float64

// waveform maps a phase in [0, 1) to a sample
type waveform func(phase float64) float64

func sine(p float64) float64 { return math.Sin(2 * math.Pi * p) }

func square(p float64) float64 {
	if p < 0.5 {
		return 1
	}
	return -1
}

func saw(p float64) float64 { return 2*p - 1 }

func noise(float64) float64 { return rand.Float64()*2 - 1 }

// tone is one enveloped note
type tone struct {
	wave    waveform
	freq    float64
	length  time.Duration
	attack  time.Duration
	release time.Duration
}

// tones lists the notes of each sound, played back to back
var tones = map[core.SoundType][]tone{
	core.SoundFocusChange: {
		{wave: sine, freq: 659.25, length: focusSoundDuration, attack: focusSoundAttack, release: focusSoundRelease},
	},
	core.SoundFocusError: {
		{wave: saw, freq: 100, length: errorSoundDuration, attack: errorSoundAttack, release: errorSoundRelease},
	},
	core.SoundFocusSidebar: {
		{wave: sine, freq: 523.25, length: sidebarNoteDuration, attack: focusSoundAttack, release: sidebarNoteRelease},
		{wave: sine, freq: 783.99, length: sidebarNoteDuration, attack: focusSoundAttack, release: sidebarNoteRelease},
	},
	core.SoundClick: {
		{wave: noise, length: clickSoundDuration, release: clickSoundRelease},
	},
}

// oscillator samples wave at freq for n samples
func oscillator(wave waveform, freq float64, n int) floatBuffer {
	buf := make(floatBuffer, n)
	step := freq / float64(sampleRate)
	var phase float64
	for i := range buf {
		buf[i] = wave(phase)
		phase = math.Mod(phase+step, 1)
	}
	return buf
}

// applyEnvelope ramps the head up over attack and the tail down over release
func applyEnvelope(buf floatBuffer, attack, release time.Duration) {
	up := sampleRate.N(attack)
	down := sampleRate.N(release)
	tail := max(len(buf)-down, up)

	for i := range buf {
		switch {
		case up > 0 && i < up:
			buf[i] *= float64(i) / float64(up)
		case down > 0 && i >= tail:
			buf[i] *= float64(len(buf)-i) / float64(down)
		}
	}
}

func (t tone) render() floatBuffer {
	buf := oscillator(t.wave, t.freq, sampleRate.N(t.length))
	applyEnvelope(buf, t.attack, t.release)
	return buf
}

// generateSound renders the notes of st into one buffer, nil for unknown sounds
func generateSound(st core.SoundType) floatBuffer {
	notes, ok := tones[st]
	if !ok {
		return nil
	}
	var out floatBuffer
	for _, n := range notes {
		out = append(out, n.render()...)
	}
	return out
}

// bufferStreamer plays a cached buffer once at a fixed gain
type bufferStreamer struct {
	buf  floatBuffer
	gain float64
	pos  int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	n = copyScaled(samples, s.buf[s.pos:], s.gain)
	s.pos += n
	return n, true
}

func (s *bufferStreamer) Err() error { return nil }

// copyScaled writes src*gain to both channels of dst, returns the count written
func copyScaled(dst [][2]float64, src floatBuffer, gain float64) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		v := src[i] * gain
		dst[i] = [2]float64{v, v}
	}
	return n
}
