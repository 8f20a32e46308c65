package playback

import "testing"

func TestPianoKeysCoversWhiteAndBlackKeys(t *testing.T) {
	want := []byte{'z', 'x', 'c', 'v', 'b', 'n', 'm', ',', 's', 'd', 'g', 'h', 'j'}
	for _, k := range want {
		if _, ok := pianoKeys[k]; !ok {
			t.Fatalf("key %q has no mapped note", string(k))
		}
	}
}

func TestPianoKeysAreDistinctFrequencies(t *testing.T) {
	seen := map[float32]byte{}
	for k, freq := range pianoKeys {
		if prev, ok := seen[freq]; ok {
			t.Fatalf("keys %q and %q map to the same frequency %v", string(prev), string(k), freq)
		}
		seen[freq] = k
	}
}

func TestNewKeyboardHostDoesNotTouchStdinBeforeStart(t *testing.T) {
	h := NewKeyboardHost(nil, nil)
	if h.oldState != nil {
		t.Fatal("constructing a KeyboardHost must not put the terminal in raw mode")
	}
}
