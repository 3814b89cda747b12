package core

// EventKind identifies one of the discrete external events the host delivers.
type EventKind int

const (
	EventTick         EventKind = iota // Fixed-interval simulation step
	EventPointerMove                   // Pointer moved to (X, Y)
	EventPointerPress                  // Primary pointer button pressed
	EventKeyPress                      // Key typed, carried in Key
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventTick:
		return "Tick"
	case EventPointerMove:
		return "PointerMove"
	case EventPointerPress:
		return "PointerPress"
	case EventKeyPress:
		return "KeyPress"
	default:
		return "Unknown"
	}
}

// Event is a single input delivered to the simulation. Platform code builds
// events from terminal input; the game never sees raw key or mouse messages.
type Event struct {
	Kind EventKind
	X, Y int  // Pointer coordinates in play-area pixels (PointerMove)
	Key  rune // Typed character (KeyPress)
}

// Tick returns a tick event.
func Tick() Event {
	return Event{Kind: EventTick}
}

// PointerMove returns a pointer-move event at (x, y).
func PointerMove(x, y int) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y}
}

// PointerPress returns a pointer-press event.
func PointerPress() Event {
	return Event{Kind: EventPointerPress}
}

// KeyPress returns a key-press event for the given character.
func KeyPress(key rune) Event {
	return Event{Kind: EventKeyPress, Key: key}
}
