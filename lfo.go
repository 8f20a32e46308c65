package siren

// LfoTarget selects what an LFO modulates on its paired Channel.
type LfoTarget int

const (
	LfoOff LfoTarget = iota
	LfoFreq
	LfoAmp
)

// LFO is a buffer-rate (not sample-rate) modulation source: once per
// Mixer tick it produces a single modulation value and advances its
// phase, per spec.md §4.4. This is a deliberate performance trade-off —
// the detail floor is ~86 updates/sec at defaults — preserved here
// rather than switched to sample-rate modulation, which would change the
// observable signal in spec.md §8's scenarios.
type LFO struct {
	Target LfoTarget
	RateHz float32
	Depth  float32

	phase float32
}

// Tick computes this buffer's modulation value and advances phase.
func (l *LFO) Tick() float32 {
	m := l.Depth * fastSin(l.phase)
	l.phase += twoPi * l.RateHz * BufFrames / SampleRate
	for l.phase >= twoPi {
		l.phase -= twoPi
	}
	for l.phase < 0 {
		l.phase += twoPi
	}
	return m
}
