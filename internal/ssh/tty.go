// Package ssh puts a tcell screen on top of a gliderlabs SSH session.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty over an SSH channel. The initial window comes
// from the PTY request; winCh delivers later resizes.
type Tty struct {
	rw     io.ReadWriteCloser
	winCh  <-chan gossh.Window
	watch  sync.Once
	mu     sync.Mutex
	window gossh.Window
	cb     func()
}

// NewTty wraps rw, normally a gossh.Session, as a tcell Tty.
func NewTty(rw io.ReadWriteCloser, window gossh.Window, winCh <-chan gossh.Window) *Tty {
	return &Tty{rw: rw, window: window, winCh: winCh}
}

func (t *Tty) Read(b []byte) (int, error) { return t.rw.Read(b) }

func (t *Tty) Write(b []byte) (int, error) { return t.rw.Write(b) }

func (t *Tty) Close() error { return t.rw.Close() }

// Start, Stop and Drain have nothing to do: the channel is opened and
// closed by the server handler, and writes are not buffered here.
func (t *Tty) Start() error { return nil }

func (t *Tty) Stop() error { return nil }

func (t *Tty) Drain() error { return nil }

// WindowSize returns the latest terminal dimensions.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize sets the callback run after every window change. tcell may
// call it more than once; the window channel is watched by one goroutine
// for the life of the session.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	t.watch.Do(func() {
		go func() {
			for win := range t.winCh {
				t.mu.Lock()
				t.window = win
				notify := t.cb
				t.mu.Unlock()
				if notify != nil {
					notify()
				}
			}
		}()
	})
}

var _ tcell.Tty = (*Tty)(nil)
