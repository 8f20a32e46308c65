package siren

import (
	"math"
	"math/rand"
)

// WaveformKind selects the oscillator's waveform.
type WaveformKind int

const (
	Sine WaveformKind = iota
	Square
	Saw
	Triangle
	Noise
)

// Lookup table sizes for the sine oscillator, mirroring the teacher
// engine's fixed-point LUT approach for cheap per-sample trig.
const (
	sinLUTSize = 8192
	sinLUTMask = sinLUTSize - 1
)

var sinLUT [sinLUTSize]float32

func init() {
	for i := 0; i < sinLUTSize; i++ {
		phase := float64(i) * twoPi / float64(sinLUTSize)
		sinLUT[i] = float32(math.Sin(phase))
	}
}

// fastSin returns sin(phase) via the precomputed LUT with linear
// interpolation. phase must be in [0, 2π).
func fastSin(phase float32) float32 {
	indexF := phase * (sinLUTSize / twoPi)
	index := int(indexF) & sinLUTMask
	frac := indexF - float32(int(indexF))
	next := (index + 1) & sinLUTMask
	return sinLUT[index] + frac*(sinLUT[next]-sinLUT[index])
}

// Oscillator holds per-voice phase state. It is owned exclusively by a
// Channel and never shared across voices.
type Oscillator struct {
	Kind  WaveformKind
	phase float32 // radians, in [0, 2π)
}

// Fill writes len(out) samples (BufFrames in a Channel tick) of the
// oscillator's waveform at frequency freqHz into out, advancing and
// wrapping the stored phase. It reports whether the phase wrapped.
// Square and Saw are intentionally naive (non-band-limited): this is a
// deliberate chiptune-aliasing design choice, not an oversight.
func (o *Oscillator) Fill(out []float32, freqHz float32) bool {
	delta := twoPi * freqHz / SampleRate
	phase := o.phase
	wrapped := false

	switch o.Kind {
	case Sine:
		for i := range out {
			out[i] = fastSin(phase)
			phase += delta
			if phase >= twoPi {
				phase -= twoPi
				wrapped = true
			} else if phase < 0 {
				phase += twoPi
			}
		}
	case Square:
		for i := range out {
			if phase < pi {
				out[i] = 1
			} else {
				out[i] = -1
			}
			phase += delta
			if phase >= twoPi {
				phase -= twoPi
				wrapped = true
			} else if phase < 0 {
				phase += twoPi
			}
		}
	case Saw:
		for i := range out {
			out[i] = 2*(phase/twoPi) - 1
			phase += delta
			if phase >= twoPi {
				phase -= twoPi
				wrapped = true
			} else if phase < 0 {
				phase += twoPi
			}
		}
	case Triangle:
		for i := range out {
			saw := 2*(phase/twoPi) - 1
			if saw < 0 {
				out[i] = 2*(-saw) - 1
			} else {
				out[i] = 2*saw - 1
			}
			phase += delta
			if phase >= twoPi {
				phase -= twoPi
				wrapped = true
			} else if phase < 0 {
				phase += twoPi
			}
		}
	case Noise:
		for i := range out {
			out[i] = rand.Float32()*2 - 1
			phase += delta
			if phase >= twoPi {
				phase -= twoPi
				wrapped = true
			} else if phase < 0 {
				phase += twoPi
			}
		}
	}

	o.phase = phase
	return wrapped
}

const pi = twoPi / 2
