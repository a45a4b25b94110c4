package canopy

import "github.com/hajimehoshi/ebiten/v2"

// InjectPress queues a left-button press at the given document coordinates.
// Injected events are released one per Poll call, ahead of real input.
func (p *InputPoller) InjectPress(x, y int) {
	p.injectQueue = append(p.injectQueue, MousePressed(x, y, MouseButtonLeft))
}

// InjectMove queues a pointer move to the given coordinates.
func (p *InputPoller) InjectMove(x, y int) {
	p.injectQueue = append(p.injectQueue, MouseMoved(x, y))
}

// InjectRelease queues a left-button release at the given coordinates.
func (p *InputPoller) InjectRelease(x, y int) {
	p.injectQueue = append(p.injectQueue, MouseReleased(x, y, MouseButtonLeft))
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two polls.
func (p *InputPoller) InjectClick(x, y int) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate polls, and release at
// (toX, toY). The total sequence consumes `frames` polls. Minimum frames is
// 2 (press + release).
func (p *InputPoller) InjectDrag(fromX, fromY, toX, toY, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := float64(fromX) + float64(toX-fromX)*t
		y := float64(fromY) + float64(toY-fromY)*t
		p.InjectMove(int(x), int(y))
	}
	p.InjectRelease(toX, toY)
}

// InjectText queues one EventTextEntered per rune of s.
func (p *InputPoller) InjectText(s string) {
	for _, r := range s {
		p.injectQueue = append(p.injectQueue, TextEntered(r))
	}
}

// InjectKey queues a key press followed by its release.
func (p *InputPoller) InjectKey(key ebiten.Key) {
	p.injectQueue = append(p.injectQueue, KeyPressed(key, 0), KeyReleased(key, 0))
}

// Injecting reports whether injected events are still waiting.
func (p *InputPoller) Injecting() bool {
	return len(p.injectQueue) > 0
}

// pollInjected moves one injected event to the output queue.
// Returns true if an event was moved (real input should be skipped).
func (p *InputPoller) pollInjected() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	ev := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]
	p.Push(ev)
	return true
}
