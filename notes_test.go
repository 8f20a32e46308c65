package siren

import "testing"

func TestNamedNoteFrequencies(t *testing.T) {
	cases := []struct {
		name string
		got  float32
		want float32
	}{
		{"A4", A4, 440.0},
		{"C4", C4, 261.625565},
		{"E4", E4, 329.627557},
	}
	for _, c := range cases {
		diff := c.got - c.want
		if diff < 0 {
			diff = -diff
		}
		if diff > 0.001 {
			t.Errorf("%s = %v, want ~%v", c.name, c.got, c.want)
		}
	}
}
