package siren

import (
	"math"
	"testing"
)

func TestFilterNoneIsNoOp(t *testing.T) {
	f := NewFilter()
	buf := []float32{0.1, 0.2, -0.3, 0.4}
	want := append([]float32(nil), buf...)
	f.Fill(buf)
	for i := range buf {
		if buf[i] != want[i] {
			t.Fatalf("FilterNone must not modify buf, sample %d: got %v want %v", i, buf[i], want[i])
		}
	}
}

func TestFilterLowPassAttenuatesHighFreq(t *testing.T) {
	osc := Oscillator{Kind: Sine}
	buf := make([]float32, BufFrames*20)
	osc.Fill(buf, 8000)

	f := NewFilter()
	f.Set(LowPass, 200, 0.707)
	cp := append([]float32(nil), buf...)
	f.Fill(cp)

	rms := func(s []float32) float64 {
		var sum float64
		for _, v := range s {
			sum += float64(v) * float64(v)
		}
		return math.Sqrt(sum / float64(len(s)))
	}
	if rms(cp) >= rms(buf) {
		t.Fatalf("low-pass at 200Hz should attenuate an 8kHz tone: in rms %v, out rms %v", rms(buf), rms(cp))
	}
}

func TestFilterStableUnderSustainedInput(t *testing.T) {
	f := NewFilter()
	f.Set(BandPass, 1000, 5)
	buf := make([]float32, BufFrames)
	for i := range buf {
		buf[i] = 1
	}
	for tick := 0; tick < 200; tick++ {
		f.Fill(buf)
		for i, s := range buf {
			if math.IsNaN(float64(s)) || math.IsInf(float64(s), 0) {
				t.Fatalf("filter produced non-finite output at tick %d sample %d", tick, i)
			}
			if s < -4 || s > 4 {
				t.Fatalf("filter output diverging: tick %d sample %d = %v", tick, i, s)
			}
		}
		for i := range buf {
			buf[i] = 1
		}
	}
}

func TestFilterClearLeavesHistory(t *testing.T) {
	f := NewFilter()
	f.Set(LowPass, 500, 0.707)
	buf := []float32{1, 1, 1, 1}
	f.Fill(buf)
	x1Before := f.x1

	f.Clear()
	out := []float32{9, 9, 9, 9}
	f.Fill(out)
	if out[0] != 9 {
		t.Fatalf("Fill after Clear must be a no-op, got %v", out[0])
	}
	if f.x1 != x1Before {
		t.Fatalf("Clear must not reset history, want %v got %v", x1Before, f.x1)
	}
}
