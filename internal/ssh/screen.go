package ssh

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPty is returned for sessions opened without a terminal.
var ErrNoPty = errors.New("session has no pty")

const (
	defaultTerm   = "xterm-256color"
	maxPlayerName = 16
)

// allowedTerms lists the TERM values a client may select. Anything else
// falls back to defaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// termMu serializes the TERM swap around screen creation; terminfo lookup
// reads it from the process environment.
var termMu sync.Mutex

// Term picks the session's terminal type.
func Term(environ []string) string {
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[v] {
			return v
		}
	}
	return defaultTerm
}

// NewScreen creates and initializes a tcell screen for s. The caller must
// Fini it.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPty
	}
	tty := NewTty(s, pty.Window, winCh)

	termMu.Lock()
	prev, had := os.LookupEnv("TERM")
	_ = os.Setenv("TERM", Term(s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	if had {
		_ = os.Setenv("TERM", prev)
	} else {
		_ = os.Unsetenv("TERM")
	}
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}

// PlayerName strips control characters from an SSH user name and caps it
// at maxPlayerName bytes without splitting a rune.
func PlayerName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		if b.Len()+len(string(r)) > maxPlayerName {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}
