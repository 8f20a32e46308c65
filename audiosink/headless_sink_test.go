//go:build headless

package audiosink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadlessSinkAcceptsAndDiscardsAudio(t *testing.T) {
	s, err := NewHeadlessSink(44100, 2)
	require.NoError(t, err)

	n, err := s.Queue(make([]float32, 1024))
	require.NoError(t, err)
	assert.Equal(t, 1024, n)
	assert.Equal(t, 0, s.BytesQueued())
}

func TestHeadlessSinkPauseRecordsState(t *testing.T) {
	s, err := NewHeadlessSink(44100, 2)
	require.NoError(t, err)

	s.Pause(true)
	assert.True(t, s.paused)
	s.Pause(false)
	assert.False(t, s.paused)
}

func TestHeadlessSinkQueueAfterCloseReturnsErrClosed(t *testing.T) {
	s, err := NewHeadlessSink(44100, 2)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	n, err := s.Queue(make([]float32, 4))
	assert.Equal(t, 0, n)
	require.ErrorIs(t, err, ErrClosed)
}

func TestHeadlessSinkCloseIsIdempotent(t *testing.T) {
	s, err := NewHeadlessSink(44100, 2)
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}
