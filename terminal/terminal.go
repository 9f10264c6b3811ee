package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ft-shmup/input"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// keyBufferSize bounds pending keys between poller and game loop
const keyBufferSize = 64

// ErrNotTerminal is returned when stdin is not attached to a tty
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Terminal wraps a tcell screen and its event poller
type Terminal struct {
	screen tcell.Screen
	keys   chan input.KeyCode
	stopCh chan struct{}
	done   chan struct{}

	finiOnce sync.Once
}

// New creates a terminal on the process tty
func New() (*Terminal, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	return NewWithScreen(screen)
}

// NewWithScreen initializes screen and starts polling its events
func NewWithScreen(screen tcell.Screen) (*Terminal, error) {
	if screen == nil {
		return nil, errors.New("nil screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		keys:   make(chan input.KeyCode, keyBufferSize),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
	go t.pollLoop()
	return t, nil
}

// Screen returns the underlying tcell screen
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// PollKey returns the oldest pending key or input.KeyNone without blocking
func (t *Terminal) PollKey() input.KeyCode {
	select {
	case k := <-t.keys:
		return k
	default:
		return input.KeyNone
	}
}

// Fini stops the poller and restores the terminal. Safe to call multiple times
func (t *Terminal) Fini() {
	t.finiOnce.Do(func() {
		close(t.stopCh)
		// Wake the poller, a full queue means it is not blocked
		t.screen.PostEvent(tcell.NewEventInterrupt(nil))
		<-t.done
		t.screen.Fini()
	})
}

func (t *Terminal) pollLoop() {
	defer close(t.done)
	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case <-t.stopCh:
			return
		default:
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			select {
			case t.keys <- input.FromEvent(ev):
			case <-t.stopCh:
				return
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// ApplyColorMode forwards a color mode choice to tcell through its environment
// Must run before the screen is created
func ApplyColorMode(mode string) error {
	switch mode {
	case "", "auto":
		return nil
	case "truecolor", "true", "24bit":
		return os.Setenv("COLORTERM", "truecolor")
	case "256":
		return os.Setenv("TCELL_TRUECOLOR", "disable")
	default:
		return errors.Errorf("unknown color mode %q", mode)
	}
}

// EmergencyReset restores terminal state without the screen, for crash paths
func EmergencyReset(w io.Writer) {
	// Disable mouse tracking
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
