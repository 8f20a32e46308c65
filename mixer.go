package siren

// voiceSlot pairs a named Channel with its driving Seq and stereo pan.
type voiceSlot struct {
	name string
	ch   *Channel
	seq  *Seq
	pan  float32
}

type sfxSlot struct {
	ch  *Channel
	pan float32
}

type sampleSlot struct {
	player *SamplePlayer
	pan    float32
}

// Mixer owns every Channel, Seq and SamplePlayer it contains, and is the
// only place stereo summing, panning, master gain and clamping happen.
// It is constructed once and mutated each Tick; it has no shared mutable
// state with anything outside itself (spec.md §5).
type Mixer struct {
	voices []voiceSlot

	sfx        []sfxSlot
	nextSFX    int
	samples    []sampleSlot
	masterGain float32

	mono   []float32
	stereo []float32
}

// NewMixer builds a Mixer with sfxSlots SFX channels and sampleSlots
// SamplePlayer slots (spec.md default: 4 and 4, via SFXPoolSize /
// SamplePoolSize — kept as constructor parameters rather than hardcoded
// constants per spec.md §13's resolution of the sizing open question).
// master_gain defaults to 1.0. Returns ErrInvalidPoolSize for a negative
// pool size; 0 is legal (spec.md §8's boundary behaviors).
func NewMixer(sfxSlots, sampleSlots int) (*Mixer, error) {
	if sfxSlots < 0 || sampleSlots < 0 {
		return nil, ErrInvalidPoolSize
	}

	m := &Mixer{
		masterGain: 1,
		mono:       make([]float32, BufFrames),
		stereo:     make([]float32, BufSize),
	}

	m.sfx = make([]sfxSlot, sfxSlots)
	for i := range m.sfx {
		m.sfx[i] = sfxSlot{ch: mustChannel(Square, EnvelopeParams{Sustain: 1})}
	}
	m.samples = make([]sampleSlot, sampleSlots)
	for i := range m.samples {
		m.samples[i] = sampleSlot{player: NewSamplePlayer(nil, 0, 0)}
	}

	return m, nil
}

// AddVoice registers a named Channel+Seq pair at the given pan ([-1,+1]).
// Voice order does not matter for the mixed output (addition is
// commutative), but slot index matters for Voice/SetSync/SetRingMod.
func (m *Mixer) AddVoice(name string, ch *Channel, seq *Seq, pan float32) int {
	m.voices = append(m.voices, voiceSlot{name: name, ch: ch, seq: seq, pan: clamp32(pan, -1, 1)})
	return len(m.voices) - 1
}

// Voice returns the Channel at a named voice slot index, for supplemental
// wiring such as SetSync/SetRingMod (spec.md §12).
func (m *Mixer) Voice(i int) *Channel {
	if i < 0 || i >= len(m.voices) {
		return nil
	}
	return m.voices[i].ch
}

// SetMasterGain sets the mixer's overall output gain, clamped to [0,1].
func (m *Mixer) SetMasterGain(g float32) { m.masterGain = clamp32(g, 0, 1) }

// SetSync wires a hard-sync relationship between two named voice slots:
// dst's oscillator phase resets whenever src's phase wraps. Supplemental
// feature, spec.md §12.
func (m *Mixer) SetSync(dst, src int) {
	d, s := m.Voice(dst), m.Voice(src)
	if d != nil && s != nil {
		d.SetSync(s)
	}
}

// SetRingMod wires a ring-modulation relationship between two named voice
// slots. Supplemental feature, spec.md §12.
func (m *Mixer) SetRingMod(dst, src int) {
	d, s := m.Voice(dst), m.Voice(src)
	if d != nil && s != nil {
		d.SetRingMod(s)
	}
}

// SFX fires a one-shot sound on the next SFX slot in round-robin order,
// overwriting whatever was previously sounding there with no error
// (spec.md §4.8's SFX dispatch contract). inst is copied into the slot's
// Channel (oscillator kind, envelope, filter, LFO, gain) before Play is
// called at freqHz.
func (m *Mixer) SFX(freqHz, pan float32, inst *Channel) {
	if len(m.sfx) == 0 {
		return
	}
	slot := &m.sfx[m.nextSFX]
	slot.ch.copyVoiceParamsFrom(inst)
	slot.pan = clamp32(pan, -1, 1)
	slot.ch.Play(freqHz)
	m.nextSFX = (m.nextSFX + 1) % len(m.sfx)
}

// Sample returns the SamplePlayer at a sample-pool slot index, so an
// embedder can Play or Stop it. Loading a buffer and setting the slot's
// pan go through LoadSample and SetSamplePan.
func (m *Mixer) Sample(i int) *SamplePlayer {
	if i < 0 || i >= len(m.samples) {
		return nil
	}
	return m.samples[i].player
}

// LoadSample replaces the buffer at a sample-pool slot with samples (an
// optional loop region given by loopStart/loopEnd) and does not affect
// prior playback of other slots.
func (m *Mixer) LoadSample(i int, samples []float32, loopStart, loopEnd int) {
	if i < 0 || i >= len(m.samples) {
		return
	}
	m.samples[i].player = NewSamplePlayer(samples, loopStart, loopEnd)
}

// SetSamplePan sets the stereo pan ([-1,+1]) of a sample-pool slot.
func (m *Mixer) SetSamplePan(i int, pan float32) {
	if i < 0 || i >= len(m.samples) {
		return
	}
	m.samples[i].pan = clamp32(pan, -1, 1)
}

// Tick produces one interleaved stereo buffer of length BufSize, ready
// for a host audio sink. It never errors: the mixer is infallible by
// construction (spec.md §4.8/§7) and any non-finite sample anywhere in
// the graph is coerced to 0 before the final clamp.
func (m *Mixer) Tick() []float32 {
	for i := range m.stereo {
		m.stereo[i] = 0
	}

	for _, v := range m.voices {
		if v.seq != nil {
			v.seq.Tick(v.ch)
		}
		v.ch.Tick(m.mono)
		sumPan(m.stereo, m.mono, v.pan)
	}

	for i := range m.sfx {
		slot := &m.sfx[i]
		if !slot.ch.Sounding() {
			continue
		}
		slot.ch.Tick(m.mono)
		sumPan(m.stereo, m.mono, slot.pan)
	}

	for i := range m.samples {
		slot := &m.samples[i]
		slot.player.Tick(m.mono)
		sumPan(m.stereo, m.mono, slot.pan)
	}

	for i := range m.stereo {
		v := sanitize(m.stereo[i]) * m.masterGain
		m.stereo[i] = clamp32(v, -1, 1)
	}

	return m.stereo
}

// sumPan adds mono into stereo (interleaved L,R) using the linear pan law
// from spec.md §4.8: left = (1-p)/2, right = (1+p)/2.
func sumPan(stereo, mono []float32, pan float32) {
	left := (1 - pan) / 2
	right := (1 + pan) / 2
	for i, s := range mono {
		stereo[2*i] += s * left
		stereo[2*i+1] += s * right
	}
}

// copyVoiceParamsFrom copies an instrument template's waveform, envelope,
// filter, LFO and gain onto c, without touching c's runtime state
// (phase/envelope stage are left for Play to (re)trigger).
func (c *Channel) copyVoiceParamsFrom(inst *Channel) {
	if inst == nil {
		return
	}
	c.osc.Kind = inst.osc.Kind
	c.env.SetParams(inst.env.params)
	if inst.filter.Kind == FilterNone {
		c.filter.Clear()
	} else {
		c.filter.Set(inst.filter.Kind, inst.filter.cutoff, inst.filter.q)
	}
	c.lfo.Target = inst.lfo.Target
	c.lfo.RateHz = inst.lfo.RateHz
	c.lfo.Depth = inst.lfo.Depth
	c.gain = inst.gain
}
