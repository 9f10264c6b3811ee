package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Movement
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight

	// Actions
	IntentFire // Space
	IntentQuit // q, Ctrl+C
)

// ctrlC is the raw value tcell reports for Ctrl+C
const ctrlC KeyCode = 3

// keyTable maps key codes to intents, anything absent is a no-op
var keyTable = map[KeyCode]IntentType{
	KeyUp:    IntentMoveUp,
	'w':      IntentMoveUp,
	KeyDown:  IntentMoveDown,
	's':      IntentMoveDown,
	KeyLeft:  IntentMoveLeft,
	'a':      IntentMoveLeft,
	KeyRight: IntentMoveRight,
	'd':      IntentMoveRight,
	KeyFire:  IntentFire,
	KeyQuit:  IntentQuit,
	ctrlC:    IntentQuit,
}

// Lookup returns the intent bound to key
func Lookup(key KeyCode) IntentType {
	return keyTable[key]
}

// Direction returns the unit step of a movement intent
func (i IntentType) Direction() (dx, dy int) {
	switch i {
	case IntentMoveUp:
		return 0, -1
	case IntentMoveDown:
		return 0, 1
	case IntentMoveLeft:
		return -1, 0
	case IntentMoveRight:
		return 1, 0
	}
	return 0, 0
}
