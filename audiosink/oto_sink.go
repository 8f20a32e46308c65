//go:build !headless

package audiosink

import (
	"sync"

	"github.com/ebitengine/oto/v3"
)

// OtoSink is the default Sink, backed by ebitengine/oto's cross-platform
// player. oto pulls samples via Read(); Queue appends to a byte ring
// buffer that Read drains, bridging oto's pull model onto the
// queue/dequeue contract spec.md §6 asks for (grounded in the teacher's
// OtoPlayer, generalized from a single fixed SoundChip source to an
// arbitrary ring of queued bytes).
type OtoSink struct {
	ctx    *oto.Context
	player *oto.Player

	mu     sync.Mutex
	ring   []byte
	paused bool
	closed bool
}

// NewOtoSink opens an oto context at sampleRate, mono or stereo per
// channels, and starts pulling from an initially empty queue.
func NewOtoSink(sampleRate, channels int) (*OtoSink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   0,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	s := &OtoSink{ctx: ctx}
	s.player = ctx.NewPlayer(s)
	s.player.Play()
	return s, nil
}

// Read implements io.Reader for oto's pull model: it drains queued bytes,
// zero-filling whatever the queue can't yet supply (silence, never an
// underrun error).
func (s *OtoSink) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := copy(p, s.ring)
	s.ring = s.ring[n:]
	for i := n; i < len(p); i++ {
		p[i] = 0
	}
	return len(p), nil
}

// Queue appends interleaved float32 samples to the ring buffer and
// reports how many float32 values were accepted (always all of them;
// the ring grows to accommodate, there is no fixed high-water mark at
// this layer).
func (s *OtoSink) Queue(samples []float32) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}
	s.ring = append(s.ring, float32SliceToBytes(samples)...)
	return len(samples), nil
}

// BytesQueued reports how many bytes remain undrained.
func (s *OtoSink) BytesQueued() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ring)
}

// Pause starts or stops the oto player without discarding the queue.
func (s *OtoSink) Pause(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paused == paused {
		return
	}
	s.paused = paused
	if paused {
		s.player.Pause()
	} else {
		s.player.Play()
	}
}

// Close stops and releases the oto player.
func (s *OtoSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.player.Close()
}
