package core

// EventKind classifies a raw input event. Front-ends translate their native
// events into one of these before handing them to the engine.
type EventKind int

const (
	EventNone      EventKind = iota
	EventQuit                // Window closed, q, Ctrl+C
	EventMouseDown           // Pointer button pressed at (X, Y)
	EventKey                 // Key pressed; Key holds its name
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventMouseDown:
		return "MouseDown"
	case EventKey:
		return "Key"
	default:
		return "Unknown"
	}
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
)

// InputEvent is an already-classified input event.
type InputEvent struct {
	Kind   EventKind
	X, Y   int // Position in surface units (MouseDown)
	Button MouseButton
	Key    string // Key name (Key), e.g. "5", "enter"
}

// QuitEvent returns a quit signal.
func QuitEvent() InputEvent {
	return InputEvent{Kind: EventQuit}
}

// ClickEvent returns a left-button press at (x, y).
func ClickEvent(x, y int) InputEvent {
	return InputEvent{Kind: EventMouseDown, X: x, Y: y, Button: MouseButtonLeft}
}

// KeyEvent returns a key press.
func KeyEvent(key string) InputEvent {
	return InputEvent{Kind: EventKey, Key: key}
}

// EventQueue buffers input events between frames.
// Not safe for concurrent use; front-ends push and poll from their own loop.
type EventQueue struct {
	events []InputEvent
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event.
func (q *EventQueue) Push(ev InputEvent) {
	q.events = append(q.events, ev)
}

// Poll returns all pending events in arrival order and empties the queue.
func (q *EventQueue) Poll() []InputEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
