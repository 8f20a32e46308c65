package siren

// SamplePlayer streams a preloaded mono sample buffer, with an optional
// loop region. Cursor always stays in [0, len(samples)]; no out-of-bounds
// read is ever performed, even for a zero-length sample.
type SamplePlayer struct {
	samples   []float32
	cursor    int
	active    bool
	loopStart int
	loopEnd   int // loopEnd > loopStart enables looping
}

// NewSamplePlayer wraps samples (not copied — callers should treat the
// slice as owned by the player afterward) with an optional loop region.
func NewSamplePlayer(samples []float32, loopStart, loopEnd int) *SamplePlayer {
	return &SamplePlayer{samples: samples, loopStart: loopStart, loopEnd: loopEnd}
}

// Play resets the cursor to 0 and marks the player active.
func (p *SamplePlayer) Play() {
	p.cursor = 0
	p.active = len(p.samples) > 0
}

// Stop marks the player inactive; Tick will emit silence thereafter.
func (p *SamplePlayer) Stop() { p.active = false }

// Active reports whether the player is currently streaming.
func (p *SamplePlayer) Active() bool { return p.active }

func (p *SamplePlayer) looping() bool {
	return p.loopEnd > p.loopStart && p.loopEnd <= len(p.samples) && p.loopStart >= 0
}

// Tick fills out (length BufFrames) with the next buffer's worth of
// sample data, looping or stopping at the end per spec.md §4.7.
func (p *SamplePlayer) Tick(out []float32) {
	if !p.active || len(p.samples) == 0 {
		for i := range out {
			out[i] = 0
		}
		return
	}

	looping := p.looping()
	for i := range out {
		if p.cursor >= len(p.samples) {
			if looping {
				p.cursor = p.loopStart
			} else {
				out[i] = 0
				p.active = false
				continue
			}
		}
		if looping && p.cursor >= p.loopEnd {
			p.cursor = p.loopStart
		}
		if !p.active {
			out[i] = 0
			continue
		}
		out[i] = p.samples[p.cursor]
		p.cursor++
	}
}
