package playback

import (
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/sqrew/siren"
)

// pianoKeys maps a row of the keyboard to a chromatic run of notes, the
// classic "ZXCVBNM," tracker-style live-play layout.
var pianoKeys = map[byte]float32{
	'z': siren.C4, 'x': siren.D4, 'c': siren.E4, 'v': siren.F4,
	'b': siren.G4, 'n': siren.A4, 'm': siren.B4, ',': siren.C5,
	's': siren.CS4, 'd': siren.DS4, 'g': siren.FS4, 'h': siren.GS4, 'j': siren.AS4,
}

// KeyboardHost reads raw stdin and fires the mixer's SFX slots live, one
// note per keypress, using inst as the voice template. Grounded in the
// teacher's TerminalHost (terminal_host.go): same raw-mode-plus-
// nonblocking-read-loop shape via golang.org/x/term and syscall, adapted
// from routing bytes into an emulated MMIO device to routing them into
// Mixer.SFX calls instead.
type KeyboardHost struct {
	mix  *siren.Mixer
	inst *siren.Channel

	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once

	fd          int
	nonblockSet bool
	oldState    *term.State
}

// NewKeyboardHost builds a host that plays inst on mix's SFX pool whenever
// a mapped key is pressed on stdin.
func NewKeyboardHost(mix *siren.Mixer, inst *siren.Channel) *KeyboardHost {
	return &KeyboardHost{
		mix:    mix,
		inst:   inst,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start puts stdin into raw, non-blocking mode and begins reading
// keystrokes in a background goroutine. Returns an error (and leaves
// stdin untouched) if raw mode can't be entered, e.g. stdin isn't a TTY.
func (h *KeyboardHost) Start() error {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		close(h.done)
		return err
	}
	h.oldState = oldState

	if err := syscall.SetNonblock(h.fd, true); err != nil {
		_ = term.Restore(h.fd, h.oldState)
		h.oldState = nil
		close(h.done)
		return err
	}
	h.nonblockSet = true

	go h.readLoop()
	return nil
}

func (h *KeyboardHost) readLoop() {
	defer close(h.done)
	buf := make([]byte, 1)

	for {
		select {
		case <-h.stopCh:
			return
		default:
		}

		n, err := syscall.Read(h.fd, buf)
		if n > 0 {
			if freq, ok := pianoKeys[buf[0]]; ok {
				h.mix.SFX(freq, 0, h.inst)
			}
		}
		switch {
		case err == syscall.EAGAIN || err == syscall.EWOULDBLOCK:
			time.Sleep(5 * time.Millisecond)
		case err != nil:
			return
		case n == 0:
			time.Sleep(5 * time.Millisecond)
		}
	}
}

// Stop terminates the read goroutine and restores stdin to its prior
// (cooked, blocking) state.
func (h *KeyboardHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	<-h.done
	if h.nonblockSet {
		_ = syscall.SetNonblock(h.fd, false)
		h.nonblockSet = false
	}
	if h.oldState != nil {
		_ = term.Restore(h.fd, h.oldState)
		h.oldState = nil
	}
}
