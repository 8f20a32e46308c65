// Package playback drives a siren.Mixer against an audiosink.Sink: tick
// the mixer, queue its output, and keep the sink's queue near a target
// depth rather than letting it run dry or grow unbounded. Grounded in the
// teacher's player start/stop/queue-depth control flow, restructured
// around push-queue semantics instead of a pull callback.
package playback

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sqrew/siren"
	"github.com/sqrew/siren/audiosink"
)

// HighWaterBytes is the default queue depth, in bytes, above which the
// loop sleeps instead of ticking the mixer further: four buffers' worth
// of stereo float32 frames, giving headroom against scheduling jitter
// without building unbounded latency.
const HighWaterBytes = 4 * siren.BufSize * 4

// Loop repeatedly ticks mix and queues the result into sink until ctx is
// canceled. It never ticks ahead of HighWaterBytes of unconsumed audio,
// and logs (at debug level) whenever it has to wait for the sink to
// drain.
func Loop(ctx context.Context, mix *siren.Mixer, sink audiosink.Sink, logger *log.Logger) {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if sink.BytesQueued() > HighWaterBytes {
			logger.Debug("sink queue above high-water mark, waiting", "bytes", sink.BytesQueued())
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Millisecond):
			}
			continue
		}

		buf := mix.Tick()
		if _, err := sink.Queue(buf); err != nil {
			logger.Error("queue audio", "err", err)
			return
		}
	}
}
