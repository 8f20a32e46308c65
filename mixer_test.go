package siren

import "testing"

func TestNewMixerRejectsNegativePoolSize(t *testing.T) {
	if _, err := NewMixer(-1, 0); err != ErrInvalidPoolSize {
		t.Fatalf("want ErrInvalidPoolSize, got %v", err)
	}
	if _, err := NewMixer(0, 0); err != nil {
		t.Fatalf("zero pool sizes must be legal, got %v", err)
	}
}

func TestSilentMixerProducesZeroBuffer(t *testing.T) {
	m, err := NewMixer(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	buf := m.Tick()
	if len(buf) != BufSize {
		t.Fatalf("want len %d, got %d", BufSize, len(buf))
	}
	for i, s := range buf {
		if s != 0 {
			t.Fatalf("sample %d: want silence, got %v", i, s)
		}
	}
}

func TestMixerOutputStaysClamped(t *testing.T) {
	m, err := NewMixer(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		ch := mustChannel(Noise, EnvelopeParams{Sustain: 1})
		ch.SetGain(1)
		ch.Play(440)
		m.AddVoice("v", ch, nil, 0)
	}
	m.SetMasterGain(1)

	for tick := 0; tick < 10; tick++ {
		buf := m.Tick()
		for i, s := range buf {
			if s < -1.0001 || s > 1.0001 {
				t.Fatalf("tick %d sample %d out of range: %v", tick, i, s)
			}
		}
	}
}

func TestMixerCenterPanGivesEqualLeftRight(t *testing.T) {
	m, err := NewMixer(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	ch := mustChannel(Sine, EnvelopeParams{Sustain: 1})
	ch.Play(440)
	m.AddVoice("v", ch, nil, 0)

	buf := m.Tick()
	for i := 0; i+1 < len(buf); i += 2 {
		if buf[i] != buf[i+1] {
			t.Fatalf("centered pan should give equal L/R, frame %d: L=%v R=%v", i/2, buf[i], buf[i+1])
		}
	}
}

func TestMixerSFXRoundRobin(t *testing.T) {
	m, err := NewMixer(2, 0)
	if err != nil {
		t.Fatal(err)
	}
	inst := mustChannel(Square, EnvelopeParams{Sustain: 1})

	m.SFX(440, 0, inst)
	if !m.sfx[0].ch.Sounding() {
		t.Fatal("first SFX call should land on slot 0")
	}
	m.SFX(880, 0, inst)
	if !m.sfx[1].ch.Sounding() {
		t.Fatal("second SFX call should land on slot 1")
	}
	m.SFX(220, 0, inst)
	if m.sfx[0].ch.currentFreq != 220 {
		t.Fatalf("third SFX call should wrap back to slot 0, got freq %v", m.sfx[0].ch.currentFreq)
	}
}

func TestMixerVoiceAndSampleLookupBounds(t *testing.T) {
	m, err := NewMixer(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if m.Voice(5) != nil {
		t.Fatal("out-of-range Voice lookup must return nil")
	}
	if m.Sample(5) != nil {
		t.Fatal("out-of-range Sample lookup must return nil")
	}
	if m.Sample(0) == nil {
		t.Fatal("in-range Sample lookup must return a player")
	}
}
