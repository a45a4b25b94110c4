package canopy

// EventResult describes what the document did with an event. Callers use it
// to decide whether to pass the event on, e.g. to the game world.
type EventResult struct {
	// Consumed is set when the UI used the event: a modal surface received
	// it, the pointer was over a control, or a focused control took text.
	Consumed bool
	// HitControls is set when a press landed on a control and did not also
	// clear focus from another control.
	HitControls bool
	// Handled is set when a control acted on the event (a click, text input
	// or a key press).
	Handled bool
	// FocusCleared is set when a press outside the focused control blurred it.
	FocusCleared bool
	// Control is the control that handled the event, if any.
	Control *Control
}

// PushEvent delivers ev to the document:
//
//  1. every enabled surface with controls receives the raw event through
//     DispatchEvent, topmost first, stopping after the first modal one;
//  2. built-in handling runs for pointer, text, key and resize events, on
//     the surfaces step 1 could reach; a focused control under a modal
//     surface gets no text or keys;
//  3. surface additions and removals requested along the way are committed.
//
// A surface destroyed by a handler during step 1 or 2 still completes the
// current event and is gone from the next one.
func (d *Document) PushEvent(ev Event) EventResult {
	var res EventResult
	reach := d.dispatchRaw(ev, &res)
	d.handleBuiltin(ev, reach, &res)
	if d.debug {
		d.stats.eventCount++
	}
	d.registry.apply()
	return res
}

// dispatchRaw walks the stack from the top. It returns the index of the
// lowest surface that can still see the event.
func (d *Document) dispatchRaw(ev Event, res *EventResult) int {
	d.registry.acquire()
	defer d.registry.release()

	surfaces := d.registry.surfaces
	for i := len(surfaces) - 1; i >= 0; i-- {
		s := surfaces[i]
		if !s.Enabled || s.ChildCount() == 0 {
			continue
		}
		s.DispatchEvent(ev)
		if s.IsModal() {
			res.Consumed = true
			return i
		}
	}
	return 0
}

func (d *Document) handleBuiltin(ev Event, reach int, res *EventResult) {
	d.registry.acquire()
	defer d.registry.release()

	surfaces := d.registry.surfaces[reach:]
	switch {
	case ev.IsPointerMoved():
		x, y := pointerXY(ev)
		d.processMouseMove(surfaces, x, y, res)

	case ev.IsPointerPressed():
		x, y := pointerXY(ev)
		// A press outside the focused control takes its focus away.
		if f := d.ctx.focus; f != nil && !f.Bounds().Contains(x, y) {
			d.ctx.clearFocus()
			res.FocusCleared = true
		}
		hit := d.processMouseButtonPressed(surfaces, x, y, ev.pointerButton())
		if hit {
			res.Consumed = true
		}
		res.HitControls = hit && !res.FocusCleared

	case ev.IsPointerReleased():
		x, y := pointerXY(ev)
		d.processMouseButtonReleased(surfaces, x, y, ev.pointerButton(), res)

	case ev.Kind == EventTextEntered:
		if f := d.ctx.focus; f != nil && !d.belowReach(f, reach) {
			f.handleText(ev.Text.Unicode)
			d.ctx.emitText(f, ev.Text.Unicode)
			res.Consumed = true
			res.Handled = true
			res.Control = f
		}

	case ev.Kind == EventKeyPressed:
		if f := d.ctx.focus; f != nil && !d.belowReach(f, reach) {
			f.handleKey(ev.Key)
			res.Consumed = true
			res.Handled = true
			res.Control = f
		}

	case ev.Kind == EventResized:
		b := d.bounds
		d.SetRect(Rect{b.X, b.Y, float64(ev.Size.Width), float64(ev.Size.Height)})
	}
}

// belowReach reports whether c sits on a committed surface under the modal
// surface that stopped raw dispatch.
func (d *Document) belowReach(c *Control, reach int) bool {
	s := c.Surface()
	for _, below := range d.registry.surfaces[:reach] {
		if below == s {
			return true
		}
	}
	return false
}

func pointerXY(ev Event) (float64, float64) {
	x, y := ev.PointerPosition()
	return float64(x), float64(y)
}

// processMouseMove forwards a move to every surface, bottom to top.
func (d *Document) processMouseMove(surfaces []*Surface, x, y float64, res *EventResult) {
	for _, s := range surfaces {
		if !s.Enabled {
			continue
		}
		if s.processMouseMove(x, y) != nil {
			res.Consumed = true
		}
	}
}

// processMouseButtonPressed lets every surface hit-test a press, bottom to
// top. Reports whether any control was hit.
func (d *Document) processMouseButtonPressed(surfaces []*Surface, x, y float64, button MouseButton) bool {
	hit := false
	for _, s := range surfaces {
		if !s.Enabled {
			continue
		}
		if s.processMouseButtonPressed(x, y, button) != nil {
			hit = true
		}
	}
	return hit
}

// processMouseButtonReleased forwards a release to every surface, bottom to
// top, accumulating the outcome in res.
func (d *Document) processMouseButtonReleased(surfaces []*Surface, x, y float64, button MouseButton, res *EventResult) {
	for _, s := range surfaces {
		if !s.Enabled {
			continue
		}
		s.processMouseButtonReleased(x, y, button, res)
	}
}
