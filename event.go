package canopy

import "github.com/hajimehoshi/ebiten/v2"

// EventKind identifies the payload carried by an Event.
type EventKind uint8

const (
	EventNone                EventKind = iota // zero value; ignored by the document
	EventMouseMoved                           // cursor moved (MouseMove)
	EventMouseButtonPressed                   // mouse button went down (MouseButton)
	EventMouseButtonReleased                  // mouse button went up (MouseButton)
	EventMouseWheelScrolled                   // wheel moved (Wheel)
	EventTouchPressed                         // finger touched down (Touch)
	EventTouchReleased                        // finger lifted (Touch)
	EventTouchMoved                           // finger moved (Touch)
	EventKeyPressed                           // key went down (Key)
	EventKeyReleased                          // key went up (Key)
	EventTextEntered                          // a character was typed (Text)
	EventResized                              // the window changed size (Size)
)

var eventKindNames = [...]string{
	EventNone:                "None",
	EventMouseMoved:          "MouseMoved",
	EventMouseButtonPressed:  "MouseButtonPressed",
	EventMouseButtonReleased: "MouseButtonReleased",
	EventMouseWheelScrolled:  "MouseWheelScrolled",
	EventTouchPressed:        "TouchPressed",
	EventTouchReleased:       "TouchReleased",
	EventTouchMoved:          "TouchMoved",
	EventKeyPressed:          "KeyPressed",
	EventKeyReleased:         "KeyReleased",
	EventTextEntered:         "TextEntered",
	EventResized:             "Resized",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "Unknown"
}

// MouseButtonEvent is the payload of button press/release events.
type MouseButtonEvent struct {
	X, Y   int
	Button MouseButton
}

// MouseMoveEvent is the payload of EventMouseMoved.
type MouseMoveEvent struct {
	X, Y int
}

// MouseWheelEvent is the payload of EventMouseWheelScrolled.
type MouseWheelEvent struct {
	DeltaX, DeltaY float64
	X, Y           int
}

// TouchEvent is the payload of touch events. Coordinates are fractional.
type TouchEvent struct {
	ID   int
	X, Y float64
}

// KeyEvent is the payload of key events.
type KeyEvent struct {
	Key       ebiten.Key
	Modifiers KeyModifiers
}

// TextEvent is the payload of EventTextEntered.
type TextEvent struct {
	Unicode rune
}

// SizeEvent is the payload of EventResized.
type SizeEvent struct {
	Width, Height int
}

// Event is a tagged input event. Only the payload matching Kind is meaningful.
type Event struct {
	Kind        EventKind
	MouseButton MouseButtonEvent
	MouseMove   MouseMoveEvent
	Wheel       MouseWheelEvent
	Touch       TouchEvent
	Key         KeyEvent
	Text        TextEvent
	Size        SizeEvent
}

// IsPointer reports whether the event is a mouse or touch press, release or move.
func (e Event) IsPointer() bool {
	switch e.Kind {
	case EventMouseButtonPressed, EventMouseButtonReleased, EventMouseMoved,
		EventTouchPressed, EventTouchReleased, EventTouchMoved:
		return true
	}
	return false
}

// IsPointerPressed reports whether a pointer went down: a mouse button or a touch.
func (e Event) IsPointerPressed() bool {
	return e.Kind == EventMouseButtonPressed || e.Kind == EventTouchPressed
}

// IsPointerReleased reports whether a pointer went up.
func (e Event) IsPointerReleased() bool {
	return e.Kind == EventMouseButtonReleased || e.Kind == EventTouchReleased
}

// IsPointerMoved reports whether a pointer moved.
func (e Event) IsPointerMoved() bool {
	return e.Kind == EventMouseMoved || e.Kind == EventTouchMoved
}

// PointerPosition returns the pointer coordinates of a pointer event.
// Touch coordinates are truncated. Non-pointer events return (0, 0).
func (e Event) PointerPosition() (x, y int) {
	switch e.Kind {
	case EventMouseButtonPressed, EventMouseButtonReleased:
		return e.MouseButton.X, e.MouseButton.Y
	case EventMouseMoved:
		return e.MouseMove.X, e.MouseMove.Y
	case EventTouchPressed, EventTouchReleased, EventTouchMoved:
		return int(e.Touch.X), int(e.Touch.Y)
	}
	return 0, 0
}

// pointerButton returns the button for mouse events and MouseButtonLeft for touches.
func (e Event) pointerButton() MouseButton {
	if e.Kind == EventMouseButtonPressed || e.Kind == EventMouseButtonReleased {
		return e.MouseButton.Button
	}
	return MouseButtonLeft
}

// --- Constructors ---

// MouseMoved returns an EventMouseMoved at (x, y).
func MouseMoved(x, y int) Event {
	return Event{Kind: EventMouseMoved, MouseMove: MouseMoveEvent{X: x, Y: y}}
}

// MousePressed returns an EventMouseButtonPressed at (x, y).
func MousePressed(x, y int, button MouseButton) Event {
	return Event{Kind: EventMouseButtonPressed, MouseButton: MouseButtonEvent{X: x, Y: y, Button: button}}
}

// MouseReleased returns an EventMouseButtonReleased at (x, y).
func MouseReleased(x, y int, button MouseButton) Event {
	return Event{Kind: EventMouseButtonReleased, MouseButton: MouseButtonEvent{X: x, Y: y, Button: button}}
}

// WheelScrolled returns an EventMouseWheelScrolled.
func WheelScrolled(x, y int, dx, dy float64) Event {
	return Event{Kind: EventMouseWheelScrolled, Wheel: MouseWheelEvent{DeltaX: dx, DeltaY: dy, X: x, Y: y}}
}

// TouchPressed returns an EventTouchPressed for touch id at (x, y).
func TouchPressed(id int, x, y float64) Event {
	return Event{Kind: EventTouchPressed, Touch: TouchEvent{ID: id, X: x, Y: y}}
}

// TouchReleased returns an EventTouchReleased for touch id at (x, y).
func TouchReleased(id int, x, y float64) Event {
	return Event{Kind: EventTouchReleased, Touch: TouchEvent{ID: id, X: x, Y: y}}
}

// TouchMoved returns an EventTouchMoved for touch id at (x, y).
func TouchMoved(id int, x, y float64) Event {
	return Event{Kind: EventTouchMoved, Touch: TouchEvent{ID: id, X: x, Y: y}}
}

// KeyPressed returns an EventKeyPressed.
func KeyPressed(key ebiten.Key, mods KeyModifiers) Event {
	return Event{Kind: EventKeyPressed, Key: KeyEvent{Key: key, Modifiers: mods}}
}

// KeyReleased returns an EventKeyReleased.
func KeyReleased(key ebiten.Key, mods KeyModifiers) Event {
	return Event{Kind: EventKeyReleased, Key: KeyEvent{Key: key, Modifiers: mods}}
}

// TextEntered returns an EventTextEntered carrying r.
func TextEntered(r rune) Event {
	return Event{Kind: EventTextEntered, Text: TextEvent{Unicode: r}}
}

// Resized returns an EventResized.
func Resized(width, height int) Event {
	return Event{Kind: EventResized, Size: SizeEvent{Width: width, Height: height}}
}
