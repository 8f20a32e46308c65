package siren

import "math"

// Channel is a single monophonic voice: oscillator + envelope + optional
// filter + optional LFO + gain. It exclusively owns all of its
// sub-units; nothing is shared across voices.
type Channel struct {
	osc      Oscillator
	env      *EnvelopeState
	filter   *Filter
	lfo      *LFO
	gain     float32
	currentFreq float32

	// sweep is an additive, teacher-grounded feature (spec.md supplement
	// §12): an optional frequency glide independent of the LFO.
	sweep sweepState

	ringModSource *Channel
	syncSource    *Channel
	prevRaw       float32
	phaseWrapped  bool

	sounding bool // true while the envelope has not reached StageDone
}

type sweepState struct {
	enabled bool
	period  int
	counter int
	shift   uint
	up      bool
}

// NewChannel builds a Channel with the given waveform and envelope
// parameters. Filter and LFO start disabled; gain defaults to 1.0.
// Returns ErrInvalidEnvelope if env violates spec.md §3's invariants
// (negative time, sustain outside [0,1]) — a configuration error
// reported at construction time, never during Tick.
func NewChannel(kind WaveformKind, env EnvelopeParams) (*Channel, error) {
	if err := validateEnvelope(env); err != nil {
		return nil, err
	}
	return &Channel{
		osc:    Oscillator{Kind: kind},
		env:    NewEnvelopeState(env),
		filter: NewFilter(),
		lfo:    &LFO{Target: LfoOff},
		gain:   1,
	}, nil
}

// mustChannel builds a Channel and panics on a configuration error. Used
// internally for slots (SFX pool, etc.) whose parameters are fixed and
// known-valid at compile time.
func mustChannel(kind WaveformKind, env EnvelopeParams) *Channel {
	ch, err := NewChannel(kind, env)
	if err != nil {
		panic(err)
	}
	return ch
}

// Gain returns the channel's output gain multiplier.
func (c *Channel) Gain() float32 { return c.gain }

// SetGain sets the channel's output gain multiplier, clamped to [0,1]
// per spec.md §3's Channel invariant.
func (c *Channel) SetGain(g float32) { c.gain = clamp32(g, 0, 1) }

// SetEnvelope replaces the envelope timing parameters in place. Returns
// ErrInvalidEnvelope without modifying state if p is invalid.
func (c *Channel) SetEnvelope(p EnvelopeParams) error {
	if err := validateEnvelope(p); err != nil {
		return err
	}
	c.env.SetParams(p)
	return nil
}

// SetFilter enables a biquad filter on this channel's output. Returns
// ErrInvalidFilterQ if q <= 0 (a construction-time configuration error
// per spec.md §7); the filter is left unchanged in that case.
func (c *Channel) SetFilter(kind FilterKind, cutoffHz, q float32) error {
	if q <= 0 {
		return ErrInvalidFilterQ
	}
	c.filter.Set(kind, cutoffHz, q)
	return nil
}

// ClearFilter disables filtering; Fill becomes a no-op thereafter.
func (c *Channel) ClearFilter() { c.filter.Clear() }

// SetLFO enables an LFO targeting either frequency or amplitude.
func (c *Channel) SetLFO(target LfoTarget, rateHz, depth float32) {
	c.lfo.Target = target
	c.lfo.RateHz = rateHz
	c.lfo.Depth = depth
}

// ClearLFO disables LFO modulation.
func (c *Channel) ClearLFO() { c.lfo.Target = LfoOff }

// SetSweep enables a frequency sweep: the channel's current frequency
// glides toward 0 (down) or upward (up) by one shift-scaled step every
// periodTicks ticks. Supplemental feature, grounded in the teacher's
// SQUARE_SWEEP register logic (spec.md §12).
func (c *Channel) SetSweep(periodTicks int, shift uint, up bool) {
	if shift == 0 {
		shift = 1
	}
	c.sweep = sweepState{enabled: true, period: periodTicks, shift: shift, up: up}
}

// ClearSweep disables the frequency sweep.
func (c *Channel) ClearSweep() { c.sweep = sweepState{} }

// SetRingMod makes this channel's output multiply against src's previous
// raw oscillator sample each tick. Supplemental feature (spec.md §12).
func (c *Channel) SetRingMod(src *Channel) { c.ringModSource = src }

// SetSync makes this channel's phase reset to 0 whenever src's phase
// wraps. Supplemental feature (spec.md §12).
func (c *Channel) SetSync(src *Channel) { c.syncSource = src }

// Play stores the target frequency and triggers the envelope's Attack
// stage (retriggering from the current level if still sounding).
func (c *Channel) Play(freqHz float32) {
	c.currentFreq = freqHz
	c.env.NoteOn()
	c.sounding = true
}

// Release triggers the envelope's Release stage.
func (c *Channel) Release() {
	c.env.NoteOff()
}

// Sounding reports whether the envelope has not yet reached StageDone.
func (c *Channel) Sounding() bool {
	if c.env.Stage() == StageDone || c.env.Stage() == StageIdle {
		c.sounding = false
	}
	return c.sounding
}

// Tick fills out (length BufFrames) with one buffer's worth of this
// voice's signal, following the fixed processing order required by
// spec.md §4.5 / §5: oscillator → envelope → LFO-amp → filter → gain.
func (c *Channel) Tick(out []float32) {
	fEff := c.currentFreq

	if c.lfo.Target == LfoFreq {
		fEff += c.lfo.Tick()
		if fEff < 0 {
			fEff = 0
		}
	}

	c.applySweep()

	c.phaseWrapped = c.osc.Fill(out, fEff)
	if len(out) > 0 {
		c.prevRaw = out[len(out)-1]
	}

	for i := range out {
		out[i] *= c.env.Next()
	}

	if c.lfo.Target == LfoAmp {
		m := c.lfo.Tick()
		scale := clamp32(1-c.lfo.Depth+m, 0, 1)
		for i := range out {
			out[i] *= scale
		}
	}

	if c.ringModSource != nil {
		for i := range out {
			out[i] *= c.ringModSource.prevRaw
		}
	}

	if c.syncSource != nil && c.syncSource.phaseWrapped {
		c.osc.phase = 0
	}

	if c.filter.Kind != FilterNone {
		c.filter.Fill(out)
	}

	for i := range out {
		out[i] = sanitize(out[i]) * c.gain
	}
}

func (c *Channel) applySweep() {
	if !c.sweep.enabled || c.sweep.period <= 0 {
		return
	}
	c.sweep.counter++
	if c.sweep.counter < c.sweep.period {
		return
	}
	c.sweep.counter = 0

	delta := c.currentFreq / float32(int(1)<<c.sweep.shift)
	if c.sweep.up {
		c.currentFreq += delta
	} else {
		c.currentFreq -= delta
		if c.currentFreq < 0 {
			c.currentFreq = 0
		}
	}
	if c.currentFreq > float32(math.MaxInt32) {
		c.currentFreq = float32(math.MaxInt32)
	}
}
