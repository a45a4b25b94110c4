package canopy

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const maxTouches = 10 // touch slots; slot ids are reported as TouchEvent.ID

// EventSource supplies input events to a document, one at a time.
type EventSource interface {
	PollEvent() (Event, bool)
}

// InputPoller turns Ebitengine's per-tick input state into a queue of
// discrete events. Call Poll once per tick from ebiten.Game.Update, then
// drain it with PollEvent.
type InputPoller struct {
	queue       []Event
	injectQueue []Event

	hasCursor    bool
	lastX, lastY int

	touchIDs  []ebiten.TouchID
	touchMap  [maxTouches]ebiten.TouchID
	touchUsed [maxTouches]bool
	touchPos  [maxTouches]Vec2

	keyBuf  []ebiten.Key
	charBuf []rune
}

// NewInputPoller returns an empty poller.
func NewInputPoller() *InputPoller {
	return &InputPoller{}
}

// PollEvent pops the oldest queued event.
func (p *InputPoller) PollEvent() (Event, bool) {
	if len(p.queue) == 0 {
		return Event{}, false
	}
	ev := p.queue[0]
	copy(p.queue, p.queue[1:])
	p.queue = p.queue[:len(p.queue)-1]
	return ev, true
}

// Push appends an event to the output queue directly.
func (p *InputPoller) Push(ev Event) {
	p.queue = append(p.queue, ev)
}

// Len returns the number of events waiting in the output queue.
func (p *InputPoller) Len() int {
	return len(p.queue)
}

// Poll reads the current input state and queues the events that happened
// since the previous tick. While injected events are waiting, one of them is
// queued instead and real input is ignored for that tick.
func (p *InputPoller) Poll() {
	if p.pollInjected() {
		return
	}
	mods := readModifiers()
	p.pollMouse()
	p.pollWheel()
	p.pollTouches()
	p.pollKeys(mods)
	p.pollText()
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

var mouseButtons = [...]struct {
	eb  ebiten.MouseButton
	btn MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

func (p *InputPoller) pollMouse() {
	mx, my := ebiten.CursorPosition()
	if !p.hasCursor || mx != p.lastX || my != p.lastY {
		p.hasCursor = true
		p.lastX, p.lastY = mx, my
		p.Push(MouseMoved(mx, my))
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			p.Push(MousePressed(mx, my, b.btn))
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			p.Push(MouseReleased(mx, my, b.btn))
		}
	}
}

func (p *InputPoller) pollWheel() {
	dx, dy := ebiten.Wheel()
	if dx != 0 || dy != 0 {
		p.Push(WheelScrolled(p.lastX, p.lastY, dx, dy))
	}
}

func (p *InputPoller) pollTouches() {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])

	var active [maxTouches]bool
	for _, tid := range p.touchIDs {
		slot := p.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		pos := Vec2{float64(tx), float64(ty)}
		switch {
		case inpututil.TouchPressDuration(tid) == 1:
			p.Push(TouchPressed(slot, pos.X, pos.Y))
		case p.touchPos[slot] != pos:
			p.Push(TouchMoved(slot, pos.X, pos.Y))
		}
		p.touchPos[slot] = pos
	}

	// Release slots whose touch ended.
	for i := 0; i < maxTouches; i++ {
		if p.touchUsed[i] && !active[i] {
			p.Push(TouchReleased(i, p.touchPos[i].X, p.touchPos[i].Y))
			p.touchUsed[i] = false
			p.touchMap[i] = 0
			p.touchPos[i] = Vec2{}
		}
	}
}

// touchSlot maps an ebiten.TouchID to a slot. Returns the existing slot or
// allocates a new one. Returns -1 if full.
func (p *InputPoller) touchSlot(tid ebiten.TouchID) int {
	for i := 0; i < maxTouches; i++ {
		if p.touchUsed[i] && p.touchMap[i] == tid {
			return i
		}
	}
	for i := 0; i < maxTouches; i++ {
		if !p.touchUsed[i] {
			p.touchUsed[i] = true
			p.touchMap[i] = tid
			return i
		}
	}
	return -1
}

func (p *InputPoller) pollKeys(mods KeyModifiers) {
	p.keyBuf = inpututil.AppendJustPressedKeys(p.keyBuf[:0])
	for _, k := range p.keyBuf {
		p.Push(KeyPressed(k, mods))
	}
	p.keyBuf = inpututil.AppendJustReleasedKeys(p.keyBuf[:0])
	for _, k := range p.keyBuf {
		p.Push(KeyReleased(k, mods))
	}
}

func (p *InputPoller) pollText() {
	p.charBuf = ebiten.AppendInputChars(p.charBuf[:0])
	for _, r := range p.charBuf {
		p.Push(TextEntered(r))
	}
}
