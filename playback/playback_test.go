package playback

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqrew/siren"
)

// fakeSink is a minimal audiosink.Sink stand-in with a controllable,
// goroutine-safe BytesQueued, used to drive Loop's throttling decisions
// without depending on a real audio device.
type fakeSink struct {
	mu          sync.Mutex
	bytesQueued int
	queueCalls  int
}

func (s *fakeSink) Queue(samples []float32) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queueCalls++
	return len(samples), nil
}

func (s *fakeSink) BytesQueued() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bytesQueued
}

func (s *fakeSink) setBytesQueued(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bytesQueued = n
}

func (s *fakeSink) queueCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queueCalls
}

func (s *fakeSink) Pause(bool) {}

func (s *fakeSink) Close() error { return nil }

func TestLoopNeverTicksAboveHighWaterMark(t *testing.T) {
	mix, err := siren.NewMixer(0, 0)
	require.NoError(t, err)

	sink := &fakeSink{}
	sink.setBytesQueued(HighWaterBytes + 1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	Loop(ctx, mix, sink, nil)

	assert.Equal(t, 0, sink.queueCount(), "Loop must not tick the mixer while the sink is above the high-water mark")
}

func TestLoopQueuesRepeatedlyBelowHighWaterMark(t *testing.T) {
	mix, err := siren.NewMixer(0, 0)
	require.NoError(t, err)

	sink := &fakeSink{}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	Loop(ctx, mix, sink, nil)

	assert.Greater(t, sink.queueCount(), 0, "Loop should tick and queue repeatedly while the sink has headroom")
}

func TestLoopStopsOnContextCancel(t *testing.T) {
	mix, err := siren.NewMixer(0, 0)
	require.NoError(t, err)

	sink := &fakeSink{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		Loop(ctx, mix, sink, nil)
		close(done)
	}()

	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Loop did not return promptly after context cancellation")
	}
}
