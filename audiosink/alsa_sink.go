//go:build alsa

package audiosink

/*
#cgo LDFLAGS: -lasound
#include <alsa/asoundlib.h>
#include <stdlib.h>

static snd_pcm_t* openPCM(const char* device, int* err) {
    snd_pcm_t* handle;
    *err = snd_pcm_open(&handle, device, SND_PCM_STREAM_PLAYBACK, 0);
    return handle;
}

static int setupPCM(snd_pcm_t* handle, unsigned int rate, unsigned int channels) {
    snd_pcm_hw_params_t* params;
    int err;

    snd_pcm_hw_params_alloca(&params);
    err = snd_pcm_hw_params_any(handle, params);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_access(handle, params, SND_PCM_ACCESS_RW_INTERLEAVED);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_format(handle, params, SND_PCM_FORMAT_FLOAT);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_channels(handle, params, channels);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_rate(handle, params, rate, 0);
    if (err < 0) return err;

    err = snd_pcm_hw_params(handle, params);
    if (err < 0) return err;

    return snd_pcm_prepare(handle);
}

static int writePCM(snd_pcm_t* handle, float* buffer, int frames) {
    return snd_pcm_writei(handle, buffer, frames);
}

static void closePCM(snd_pcm_t* handle) {
    if (handle != NULL) {
        snd_pcm_drain(handle);
        snd_pcm_close(handle);
    }
}
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"
)

// ALSASink writes directly to an ALSA PCM device in blocking mode,
// adapted from the teacher's ALSAPlayer: push-based writes map onto
// Queue directly, with no ring buffer needed since ALSA does its own
// internal queueing (spec.md §6).
type ALSASink struct {
	handle   *C.snd_pcm_t
	channels int

	mu     sync.Mutex
	paused bool
	closed bool
}

// NewALSASink opens the default ALSA device at sampleRate/channels.
func NewALSASink(sampleRate, channels int) (*ALSASink, error) {
	var cerr C.int
	handle := C.openPCM(C.CString("default"), &cerr)
	if cerr < 0 {
		return nil, fmt.Errorf("audiosink: open PCM device: %s", C.GoString(C.snd_strerror(cerr)))
	}
	if cerr = C.setupPCM(handle, C.uint(sampleRate), C.uint(channels)); cerr < 0 {
		C.closePCM(handle)
		return nil, fmt.Errorf("audiosink: setup PCM: %s", C.GoString(C.snd_strerror(cerr)))
	}
	return &ALSASink{handle: handle, channels: channels}, nil
}

// Queue writes samples to the device, blocking until ALSA accepts them.
// An EPIPE (underrun) is recovered once via snd_pcm_prepare and retried.
func (s *ALSASink) Queue(samples []float32) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}
	if len(samples) == 0 {
		return 0, nil
	}
	frames := C.int(len(samples) / s.channels)
	n := C.writePCM(s.handle, (*C.float)(unsafe.Pointer(&samples[0])), frames)
	if n < 0 {
		if n == -C.EPIPE {
			C.snd_pcm_prepare(s.handle)
			n = C.writePCM(s.handle, (*C.float)(unsafe.Pointer(&samples[0])), frames)
		}
		if n < 0 {
			return 0, fmt.Errorf("audiosink: write: %s", C.GoString(C.snd_strerror(C.int(n))))
		}
	}
	return int(n) * s.channels, nil
}

// BytesQueued always reports 0: ALSA owns its own internal ring and
// exposes no portable "bytes pending" query through this binding.
func (s *ALSASink) BytesQueued() int { return 0 }

// Pause only records the requested state. ALSA's pause isn't wired
// through this minimal binding: the device keeps playing and Queue keeps
// writing while paused.
func (s *ALSASink) Pause(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = paused
}

// Close drains and releases the PCM handle.
func (s *ALSASink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	C.closePCM(s.handle)
	s.handle = nil
	return nil
}
