package siren

import "math"

// FilterKind selects the biquad's mode. None disables filtering entirely;
// Filter.Fill becomes a no-op and leaves history untouched.
type FilterKind int

const (
	FilterNone FilterKind = iota
	LowPass
	HighPass
	BandPass
)

// minFilterFreq/maxFilterFreq bound the cutoff passed to the Cookbook
// coefficient formulas, per spec.md §4.3.
const (
	minFilterFreq = 1.0
	maxFilterFreq = SampleRate/2 - 1
)

// Filter is a second-order (biquad) IIR filter implementing the Audio EQ
// Cookbook difference equation. It holds two samples of input and output
// history that persist across Fill calls (tick boundaries) — they are
// never zeroed between ticks. Coefficients are recomputed lazily, only
// when (Kind, cutoff, Q) change.
type Filter struct {
	Kind   FilterKind
	cutoff float32
	q      float32

	x1, x2 float32
	y1, y2 float32

	b0, b1, b2, a1, a2 float32
	coeffsValid        bool
}

// NewFilter builds a disabled filter (Kind = FilterNone).
func NewFilter() *Filter {
	return &Filter{Kind: FilterNone, q: 0.707}
}

// Set configures the filter's kind, cutoff (Hz) and Q, invalidating the
// cached coefficients if anything changed. cutoff is clamped to
// [1, SampleRate/2-1] Hz, inside (0, SampleRate/2); a q <= 0 is replaced
// by 0.707.
func (f *Filter) Set(kind FilterKind, cutoffHz, q float32) {
	if cutoffHz < minFilterFreq {
		cutoffHz = minFilterFreq
	} else if cutoffHz > maxFilterFreq {
		cutoffHz = maxFilterFreq
	}
	if q <= 0 {
		q = 0.707
	}
	if kind == f.Kind && cutoffHz == f.cutoff && q == f.q {
		return
	}
	f.Kind = kind
	f.cutoff = cutoffHz
	f.q = q
	f.coeffsValid = false
}

// Clear disables the filter. Per spec.md §4.3, Fill then becomes a
// bit-identical no-op — history is left as-is, not zeroed.
func (f *Filter) Clear() { f.Kind = FilterNone }

func (f *Filter) recompute() {
	w0 := twoPi * float64(f.cutoff) / SampleRate
	sinW0, cosW0 := math.Sincos(w0)
	alpha := sinW0 / (2 * float64(f.q))

	var b0, b1, b2, a0, a1, a2 float64
	switch f.Kind {
	case LowPass:
		b1 = 1 - cosW0
		b0 = b1 / 2
		b2 = b0
		a0 = 1 + alpha
		a1 = -2 * cosW0
		a2 = 1 - alpha
	case HighPass:
		b0 = (1 + cosW0) / 2
		b1 = -(1 + cosW0)
		b2 = b0
		a0 = 1 + alpha
		a1 = -2 * cosW0
		a2 = 1 - alpha
	case BandPass:
		// Constant 0dB peak gain form.
		b0 = alpha
		b1 = 0
		b2 = -alpha
		a0 = 1 + alpha
		a1 = -2 * cosW0
		a2 = 1 - alpha
	default:
		a0 = 1
		b0 = 1
	}

	f.b0 = float32(b0 / a0)
	f.b1 = float32(b1 / a0)
	f.b2 = float32(b2 / a0)
	f.a1 = float32(a1 / a0)
	f.a2 = float32(a2 / a0)
	f.coeffsValid = true
}

// Fill applies the biquad in place over buf. No-op when Kind is
// FilterNone. Non-finite outputs are coerced to 0 before being written
// back, per spec.md §7.
func (f *Filter) Fill(buf []float32) {
	if f.Kind == FilterNone {
		return
	}
	if !f.coeffsValid {
		f.recompute()
	}

	x1, x2, y1, y2 := f.x1, f.x2, f.y1, f.y2
	b0, b1, b2, a1, a2 := f.b0, f.b1, f.b2, f.a1, f.a2

	for i, x0 := range buf {
		y0 := b0*x0 + b1*x1 + b2*x2 - a1*y1 - a2*y2
		y0 = sanitize(y0)
		buf[i] = y0
		x2, x1 = x1, x0
		y2, y1 = y1, y0
	}

	f.x1, f.x2, f.y1, f.y2 = x1, x2, y1, y2
}
