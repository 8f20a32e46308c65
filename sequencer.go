package siren

// Seq drives a paired Channel through an ordered note list, firing
// note-on/note-off at tick-accurate instants and looping seamlessly when
// the list wraps. An empty note list is a no-op. Per spec.md §9's open
// question, release timing is resolved at tick-boundary precision (not
// sub-tick sample precision) — acceptable provided total song length
// matches the sum of durations within one tick.
type Seq struct {
	notes []Note

	index          int
	samplesIntoNote int
	triggered      bool
}

// NewSeq builds a Seq over notes. The slice is copied so callers may
// reuse or mutate their source slice afterward.
func NewSeq(notes []Note) *Seq {
	cp := make([]Note, len(notes))
	copy(cp, notes)
	return &Seq{notes: cp}
}

// Tick advances the sequence by one buffer's worth of samples (BufFrames),
// emitting Play/Release calls on ch as note boundaries are crossed.
func (s *Seq) Tick(ch *Channel) {
	if len(s.notes) == 0 {
		return
	}

	note := s.notes[s.index]

	if s.samplesIntoNote == 0 {
		if note.FreqHz > 0 {
			if !s.triggered {
				ch.Play(note.FreqHz)
				s.triggered = true
			}
		} else if s.triggered {
			ch.Release()
			s.triggered = false
		}
	}

	durSamps := msToSamps(note.DurationMs)
	s.samplesIntoNote += BufFrames

	if s.samplesIntoNote >= durSamps {
		if note.FreqHz > 0 {
			ch.Release()
		}
		s.triggered = false
		s.index = (s.index + 1) % len(s.notes)
		s.samplesIntoNote = 0
	}
}

// Reset rewinds the sequence to its first note, silent and untriggered.
func (s *Seq) Reset() {
	s.index = 0
	s.samplesIntoNote = 0
	s.triggered = false
}
