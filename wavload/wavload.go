// Package wavload loads WAV files into the mono float32 buffers siren's
// SamplePlayer expects, per spec.md §6's WAV loader contract: only mono
// 16-bit PCM at SampleRate is supported, normalized by /32768; any format
// mismatch or IO error yields an empty slice rather than an error value,
// so callers only need to check length. Grounded in the go-audio/wav
// decoder usage shown across the retrieved examples.
package wavload

import (
	"os"

	"github.com/go-audio/wav"

	"github.com/sqrew/siren"
)

// Load reads path and returns its samples as mono float32 in [-1,1].
// Returns a nil/empty slice if the file can't be opened, isn't a valid
// WAV, isn't mono 16-bit PCM, or isn't at siren.SampleRate.
func Load(path string) []float32 {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil
	}
	dec.ReadInfo()
	if dec.NumChans != 1 || dec.BitDepth != 16 || int(dec.SampleRate) != siren.SampleRate {
		return nil
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil || buf == nil {
		return nil
	}

	out := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		out[i] = float32(v) / 32768
	}
	return out
}

// LoadAll loads every path in paths concurrently, using errgroup to fan
// the IO out and join it back into index-aligned results; a failed or
// malformed file yields an empty slice at its index rather than aborting
// the whole batch.
func LoadAll(paths []string) [][]float32 {
	out := make([][]float32, len(paths))
	loadAllConcurrent(paths, out)
	return out
}
