package wavload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqrew/siren"
)

// writeWAV encodes data (raw int16-range samples) as a PCM WAV fixture at
// path, grounded in the go-audio/wav Encoder/IntBuffer round-trip used
// across the retrieved examples' audio-file tooling.
func writeWAV(t *testing.T, path string, sampleRate, bitDepth, numChans int, data []int) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, numChans, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChans, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
}

func TestLoadRoundTripsMonoPCM16(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	samples := []int{0, 16384, -16384, 32767, -32768}
	writeWAV(t, path, siren.SampleRate, 16, 1, samples)

	got := Load(path)
	require.Len(t, got, len(samples))
	for i, v := range samples {
		assert.InDelta(t, float64(v)/32768, float64(got[i]), 1e-6)
	}
}

func TestLoadRejectsWrongSampleRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrongrate.wav")
	writeWAV(t, path, 22050, 16, 1, []int{0, 100, -100})

	assert.Empty(t, Load(path))
}

func TestLoadRejectsStereo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	writeWAV(t, path, siren.SampleRate, 16, 2, []int{0, 0, 100, 100, -100, -100})

	assert.Empty(t, Load(path))
}

func TestLoadRejectsWrongBitDepth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "8bit.wav")
	writeWAV(t, path, siren.SampleRate, 8, 1, []int{0, 100, 200})

	assert.Empty(t, Load(path))
}

func TestLoadRejectsNonexistentFile(t *testing.T) {
	assert.Empty(t, Load(filepath.Join(t.TempDir(), "nope.wav")))
}

func TestLoadRejectsNonWAVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notawav.txt")
	require.NoError(t, os.WriteFile(path, []byte("not a wav file"), 0o644))

	assert.Empty(t, Load(path))
}

func TestLoadAllIsIndexAlignedWithMixedResults(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.wav")
	writeWAV(t, good, siren.SampleRate, 16, 1, []int{0, 1000, -1000})
	bad := filepath.Join(dir, "missing.wav")

	got := LoadAll([]string{good, bad})
	require.Len(t, got, 2)
	assert.NotEmpty(t, got[0])
	assert.Empty(t, got[1])
}
