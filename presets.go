package siren

// Preset constructor functions. spec.md §9 notes that the source
// language's macro conveniences (pluck-square, note, defsong, defbpm)
// are pure sugar over plain constructor calls; Go has no macros, so
// these are just that — ordinary functions, with no runtime cost
// difference from hand-written construction.

// PluckSquare builds a short percussive square-wave voice: fast attack,
// no sustain hold, short release — a classic chiptune "pluck".
func PluckSquare(gain float32) *Channel {
	ch := mustChannel(Square, EnvelopeParams{
		AttackMs:  2,
		DecayMs:   60,
		Sustain:   0,
		ReleaseMs: 40,
	})
	ch.SetGain(gain)
	return ch
}

// PluckTriangle is PluckSquare's triangle-wave sibling, commonly used for
// basslines.
func PluckTriangle(gain float32) *Channel {
	ch := mustChannel(Triangle, EnvelopeParams{
		AttackMs:  2,
		DecayMs:   120,
		Sustain:   0,
		ReleaseMs: 80,
	})
	ch.SetGain(gain)
	return ch
}

// SustainedSine builds a sustained sine-wave pad voice: slow attack,
// full sustain, slow release.
func SustainedSine(gain float32) *Channel {
	ch := mustChannel(Sine, EnvelopeParams{
		AttackMs:  150,
		DecayMs:   100,
		Sustain:   1,
		ReleaseMs: 300,
	})
	ch.SetGain(gain)
	return ch
}

// NoiseHit builds a short noise burst, suitable for percussion/SFX.
func NoiseHit(gain float32) *Channel {
	ch := mustChannel(Noise, EnvelopeParams{
		AttackMs:  1,
		DecayMs:   30,
		Sustain:   0,
		ReleaseMs: 20,
	})
	ch.SetGain(gain)
	return ch
}

// NewNote is a readable constructor for a single Note entry; Rest builds
// a rest of the given duration.
func NewNote(freqHz float32, durationMs float64) Note {
	return Note{FreqHz: freqHz, DurationMs: durationMs}
}

// Rest builds a rest Note of the given duration.
func Rest(durationMs float64) Note {
	return Note{FreqHz: 0, DurationMs: durationMs}
}
