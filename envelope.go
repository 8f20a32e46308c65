package siren

// EnvelopeShape selects the envelope generator's stage progression.
// Standard is the default ADSR state machine spec.md §4.2 requires; the
// others are additive voice color grounded in the teacher's
// ENV_SHAPE_SAW_UP/DOWN/LOOP registers.
type EnvelopeShape int

const (
	ShapeADSR EnvelopeShape = iota
	ShapeSawUp
	ShapeSawDown
	ShapeLoop
)

// EnvelopeStage is the current state of an EnvelopeState machine.
type EnvelopeStage int

const (
	StageIdle EnvelopeStage = iota
	StageAttack
	StageDecay
	StageSustain
	StageRelease
	StageDone
)

// EnvelopeParams holds the ADSR timing/level parameters for a Channel.
// Times are non-negative milliseconds; Sustain is in [0,1].
type EnvelopeParams struct {
	AttackMs   float64
	DecayMs    float64
	Sustain    float32
	ReleaseMs  float64
	Shape      EnvelopeShape
}

func (p EnvelopeParams) attackSamps() int  { return maxInt(msToSamps(p.AttackMs), 0) }
func (p EnvelopeParams) decaySamps() int   { return maxInt(msToSamps(p.DecayMs), 0) }
func (p EnvelopeParams) releaseSamps() int { return maxInt(msToSamps(p.ReleaseMs), 0) }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// EnvelopeState is the running state machine for one voice's amplitude
// envelope. It is owned exclusively by a Channel.
type EnvelopeState struct {
	params EnvelopeParams

	stage            EnvelopeStage
	samplesInStage   int
	level            float32
	releaseStartLevel float32
}

// NewEnvelopeState builds an idle envelope with the given parameters.
func NewEnvelopeState(p EnvelopeParams) *EnvelopeState {
	return &EnvelopeState{params: p, stage: StageIdle}
}

// SetParams replaces the envelope's timing parameters without disturbing
// its current stage or level.
func (e *EnvelopeState) SetParams(p EnvelopeParams) { e.params = p }

// NoteOn triggers Attack. Per spec.md §4.2's retrigger rule, if the
// envelope is already sounding (level > 0) Attack restarts from the
// current level rather than from 0: samplesInStage is chosen so the very
// next Attack sample is at or at most one attack step above the current
// level, avoiding an audible amplitude jump on retrigger.
func (e *EnvelopeState) NoteOn() {
	atk := e.params.attackSamps()
	if e.level <= 0 || atk <= 0 {
		e.level = 0
		e.samplesInStage = 0
	} else {
		// Standard ADSR attack is linear: level = samplesInStage/atk.
		// Solve samplesInStage for the current level so the next emitted
		// sample continues smoothly from here.
		e.samplesInStage = int(e.level * float32(atk))
		if e.samplesInStage >= atk {
			e.samplesInStage = atk - 1
		}
	}
	e.stage = StageAttack
}

// NoteOff triggers Release, fading from whatever level is currently
// sounding (not from 1.0) — spec.md §8's release-from-actual-level
// invariant.
func (e *EnvelopeState) NoteOff() {
	if e.stage == StageIdle || e.stage == StageDone {
		return
	}
	e.releaseStartLevel = e.level
	e.stage = StageRelease
	e.samplesInStage = 0
}

// Next advances the envelope by one sample and returns the emitted
// amplitude multiplier in [0,1].
func (e *EnvelopeState) Next() float32 {
	switch e.stage {
	case StageIdle, StageDone:
		return 0

	case StageAttack:
		atk := e.params.attackSamps()
		switch e.params.Shape {
		case ShapeSawDown:
			if atk <= 0 {
				e.level = 0
				e.stage = StageSustain
			} else {
				e.level = 1 - float32(e.samplesInStage)/float32(atk)
				e.samplesInStage++
				if e.samplesInStage >= atk {
					e.level = 0
					e.stage = StageSustain
				}
			}
		case ShapeSawUp:
			if atk <= 0 {
				e.level = 1
				e.stage = StageSustain
			} else {
				e.level = float32(e.samplesInStage) / float32(atk)
				e.samplesInStage++
				if e.samplesInStage >= atk {
					e.level = 1
					e.stage = StageSustain
				}
			}
		default: // ShapeADSR, ShapeLoop share the same attack curve
			if atk <= 0 {
				e.level = 1
				e.stage = StageDecay
				e.samplesInStage = 0
			} else {
				e.samplesInStage++
				e.level = float32(e.samplesInStage) / float32(atk)
				if e.level >= 1 {
					e.level = 1
					e.stage = StageDecay
					e.samplesInStage = 0
				}
			}
		}

	case StageDecay:
		dec := e.params.decaySamps()
		if dec <= 0 {
			e.level = e.params.Sustain
			e.stage = StageSustain
		} else {
			e.level = 1 - (1-e.params.Sustain)*float32(e.samplesInStage)/float32(dec)
			e.samplesInStage++
			if e.samplesInStage >= dec {
				e.level = e.params.Sustain
				e.stage = StageSustain
			}
		}

	case StageSustain:
		if e.params.Shape == ShapeSawUp || e.params.Shape == ShapeSawDown {
			// one-shot shapes hold the level their ramp ended on
			break
		}
		e.level = e.params.Sustain

	case StageRelease:
		rel := e.params.releaseSamps()
		if e.params.Shape == ShapeLoop {
			if rel <= 0 {
				e.stage = StageAttack
				e.samplesInStage = 0
			} else {
				e.level = e.releaseStartLevel * (1 - float32(e.samplesInStage)/float32(rel))
				e.samplesInStage++
				if e.samplesInStage >= rel {
					e.stage = StageAttack
					e.samplesInStage = 0
				}
			}
		} else {
			if rel <= 0 {
				e.level = 0
				e.stage = StageDone
			} else {
				e.level = e.releaseStartLevel * (1 - float32(e.samplesInStage)/float32(rel))
				e.samplesInStage++
				if e.samplesInStage >= rel || e.level <= 0 {
					e.level = 0
					e.stage = StageDone
				}
			}
		}
	}

	if e.level < 0 {
		e.level = 0
	} else if e.level > 1 {
		e.level = 1
	}
	return e.level
}

// Stage reports the envelope's current stage, mostly useful for tests
// and SFX-slot lifecycle checks.
func (e *EnvelopeState) Stage() EnvelopeStage { return e.stage }

// Level reports the envelope's last emitted amplitude.
func (e *EnvelopeState) Level() float32 { return e.level }
