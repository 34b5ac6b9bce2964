// Package ssh adapts gliderlabs/ssh sessions to tcell screens so every
// connected client gets its own terminal.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty is a tcell.Tty over one SSH channel. Keyboard bytes come from
// the channel, rendered frames go back to it, and the pty window-change
// requests drive tcell's resize handling.
type SessionTty struct {
	gossh.Session

	changes <-chan gossh.Window
	once    sync.Once

	mu       sync.Mutex
	cols     int
	rows     int
	onResize func()
}

// NewSessionTty wraps s. The initial size comes from pty; later sizes
// arrive on changes.
func NewSessionTty(s gossh.Session, pty gossh.Pty, changes <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		Session: s,
		changes: changes,
		cols:    pty.Window.Width,
		rows:    pty.Window.Height,
	}
}

// The channel is opened and flushed by the SSH server, so the terminal
// lifecycle hooks have nothing to do.

func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize reports the last size the client announced.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.cols, Height: t.rows}, nil
}

// NotifyResize sets the callback tcell wants on every size change and
// starts following the client's window changes on first use.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()
	t.once.Do(func() { go t.follow() })
}

// follow runs until the session closes the window-change channel.
func (t *SessionTty) follow() {
	for win := range t.changes {
		t.mu.Lock()
		t.cols, t.rows = win.Width, win.Height
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
