package siren

import "errors"

// Configuration errors are returned at construction time only, per
// spec.md §7 — they never surface from Tick/Next/Fill, which are
// infallible by construction and instead recover locally from any
// runtime anomaly (NaN/Inf coercion, clamping).
var (
	ErrInvalidEnvelope  = errors.New("siren: invalid envelope parameters")
	ErrInvalidFilterQ   = errors.New("siren: filter Q must be > 0")
	ErrInvalidPoolSize  = errors.New("siren: pool size must be >= 0")
)

// validateEnvelope checks spec.md §3's EnvelopeParams invariants: all
// times >= 0, sustain in [0,1].
func validateEnvelope(p EnvelopeParams) error {
	if p.AttackMs < 0 || p.DecayMs < 0 || p.ReleaseMs < 0 {
		return ErrInvalidEnvelope
	}
	if p.Sustain < 0 || p.Sustain > 1 {
		return ErrInvalidEnvelope
	}
	return nil
}
