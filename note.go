package siren

// Note is one entry in a Seq's note list. FreqHz == 0 denotes a rest.
type Note struct {
	FreqHz     float32
	DurationMs float64
}
