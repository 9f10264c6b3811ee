// @focus: #input { keys }
package input

import "github.com/gdamore/tcell/v2"

// KeyCode is the integer key value forwarded to entity updates and shown in the debug readout
// Printable keys carry their code point, special keys follow curses numbering
type KeyCode int

const (
	// KeyNone is returned when no key is pending
	KeyNone KeyCode = -1

	KeyDown  KeyCode = 258
	KeyUp    KeyCode = 259
	KeyLeft  KeyCode = 260
	KeyRight KeyCode = 261

	KeyEnter KeyCode = '\n'
	KeyFire  KeyCode = ' '
	KeyQuit  KeyCode = 'q'
)

// specialKeyBase shifts unmapped tcell special keys out of the rune range
const specialKeyBase KeyCode = 1 << 16

// FromEvent converts a tcell key event to a KeyCode
func FromEvent(ev *tcell.EventKey) KeyCode {
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		if k, ok := ctrlLetter(ev); ok {
			return k
		}
	}

	switch ev.Key() {
	case tcell.KeyRune:
		return KeyCode(ev.Rune())
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEnter:
		return KeyEnter
	}

	// Control keys share their ASCII value
	if ev.Key() < tcell.KeyRune {
		return KeyCode(ev.Key())
	}
	return specialKeyBase + KeyCode(ev.Key())
}

// ctrlLetter folds Ctrl+letter into its ASCII control code (Ctrl+A = 1 ... Ctrl+Z = 26)
// tcell reports these as the uppercase letter key with ModCtrl, or as a rune with ModCtrl
func ctrlLetter(ev *tcell.EventKey) (KeyCode, bool) {
	letter := rune(ev.Key())
	if ev.Key() == tcell.KeyRune {
		letter = ev.Rune()
	}
	switch {
	case letter >= 'A' && letter <= 'Z':
		return KeyCode(letter-'A') + 1, true
	case letter >= 'a' && letter <= 'z':
		return KeyCode(letter-'a') + 1, true
	}
	return 0, false
}
