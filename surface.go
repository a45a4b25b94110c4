package canopy

// Surface is a named, positioned root of a control subtree within a
// Document, analogous to a window or panel. Surfaces are created by
// Document.AddSurface and owned by the document until destroyed.
type Surface struct {
	name string
	rect Rect

	// Enabled surfaces receive events. Visible surfaces are drawn.
	Enabled bool
	Visible bool

	// Modal surfaces consume every event they receive; surfaces below them
	// in the stack never see it.
	Modal bool

	// Optional hooks, nil by default. Each may add or destroy surfaces of the
	// owning document; such changes are deferred until the current
	// traversal ends.
	OnEvent  func(s *Surface, ev Event)
	OnUpdate func(s *Surface, dt float64)
	OnDraw   func(s *Surface, r Renderer)

	root      *Control
	ctx       *Context
	doc       *Document
	hover     *Control
	pressed   *Control
	tweens    []*TweenGroup
	hitBuf    []*Control
	destroyed bool
}

func newSurface(name string) *Surface {
	s := &Surface{
		name:    name,
		Enabled: true,
		Visible: true,
	}
	s.root = NewPanel(name)
	s.root.surface = s
	return s
}

// Name returns the surface name.
func (s *Surface) Name() string {
	return s.name
}

// SetName renames the surface.
func (s *Surface) SetName(name string) {
	s.name = name
}

// SetPosition moves the surface's top-left corner to (x, y).
func (s *Surface) SetPosition(x, y float64) {
	s.rect.X, s.rect.Y = x, y
	s.root.X, s.root.Y = x, y
}

// SetSize resizes the surface.
func (s *Surface) SetSize(w, h float64) {
	s.rect.Width, s.rect.Height = w, h
	s.root.Width, s.root.Height = w, h
}

// Rect returns the surface rectangle in document coordinates.
func (s *Surface) Rect() Rect {
	return s.rect
}

// Context returns the shared UI context the surface is bound to, or nil once
// destroyed.
func (s *Surface) Context() *Context {
	return s.ctx
}

func (s *Surface) setContext(ctx *Context) {
	s.ctx = ctx
}

// Document returns the owning document, or nil once destroyed.
func (s *Surface) Document() *Document {
	return s.doc
}

// Root returns the panel every control of this surface descends from.
// It spans the whole surface.
func (s *Surface) Root() *Control {
	return s.root
}

// Attach adds a control at the top level of the surface.
func (s *Surface) Attach(c *Control) {
	s.root.Attach(c)
}

// Detach removes a top-level control.
func (s *Surface) Detach(c *Control) {
	s.root.Detach(c)
}

// ChildCount returns the number of top-level controls. Surfaces without
// controls receive no raw events.
func (s *Surface) ChildCount() int {
	return s.root.NumChildren()
}

// IsModal reports whether the surface blocks events from reaching surfaces
// below it.
func (s *Surface) IsModal() bool {
	return s.Modal
}

// IsDestroyed reports whether the surface has left its document.
func (s *Surface) IsDestroyed() bool {
	return s.destroyed
}

// FindByName returns the first control called name in this surface, or nil.
// The root panel is not considered.
func (s *Surface) FindByName(name string) *Control {
	for _, c := range s.root.children {
		if found := c.FindByName(name); found != nil {
			return found
		}
	}
	return nil
}

// AddTween registers a tween advanced by the surface's Update. Finished
// tweens are dropped automatically.
func (s *Surface) AddTween(g *TweenGroup) {
	s.tweens = append(s.tweens, g)
}

// --- Per-frame ---

// Update advances the surface hook, tweens and control OnUpdate callbacks.
func (s *Surface) Update(dt float64) {
	if s.OnUpdate != nil {
		s.OnUpdate(s, dt)
	}
	n := 0
	for _, g := range s.tweens {
		g.Update(float32(dt))
		if !g.Done {
			s.tweens[n] = g
			n++
		}
	}
	for i := n; i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = s.tweens[:n]
	s.root.update(dt)
}

// Draw renders the surface's controls in tree order.
func (s *Surface) Draw(r Renderer) {
	if !s.Visible {
		return
	}
	drawControl(r, s.root, 1)
	if s.OnDraw != nil {
		s.OnDraw(s, r)
	}
}

// DispatchEvent delivers a raw event to the surface hook.
func (s *Surface) DispatchEvent(ev Event) {
	if s.OnEvent != nil {
		s.OnEvent(s, ev)
	}
}

// SwitchLanguage refreshes language-dependent content of every control.
func (s *Surface) SwitchLanguage() {
	lang := ""
	if s.ctx != nil {
		lang = s.ctx.Language()
	}
	s.root.switchLanguage(lang)
}

// --- Hit testing ---

// collectHittable walks the subtree in painter order, appending visible,
// enabled, hit-testable controls to buf.
func collectHittable(c *Control, buf []*Control) []*Control {
	if !c.Visible || !c.Enabled {
		return buf
	}
	if c.Parent != nil && (c.HitShape != nil || c.Width != 0 || c.Height != 0) {
		buf = append(buf, c)
	}
	for _, child := range c.children {
		buf = collectHittable(child, buf)
	}
	return buf
}

// hitTest returns the topmost control at (x, y), or nil.
func (s *Surface) hitTest(x, y float64) *Control {
	s.hitBuf = collectHittable(s.root, s.hitBuf[:0])
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		if controlContains(s.hitBuf[i], x, y) {
			return s.hitBuf[i]
		}
	}
	return nil
}

func (s *Surface) pointerContext(c *Control, x, y float64, button MouseButton) PointerContext {
	b := c.Bounds()
	return PointerContext{
		Control: c, Surface: s, EntityID: c.EntityID, UserData: c.UserData,
		X: x, Y: y, LocalX: x - b.X, LocalY: y - b.Y, Button: button,
	}
}

// processMouseButtonPressed hit-tests a press, fires OnPointerDown and
// focuses focusable controls. Returns the control that was hit, or nil.
func (s *Surface) processMouseButtonPressed(x, y float64, button MouseButton) *Control {
	target := s.hitTest(x, y)
	s.pressed = target
	if target == nil {
		return nil
	}
	if target.OnPointerDown != nil {
		target.OnPointerDown(s.pointerContext(target, x, y, button))
	}
	if s.ctx != nil {
		s.ctx.emit(InteractionPointerDown, target, x, y, button)
	}
	if target.Focusable && !target.disposed {
		target.Focus()
	}
	return target
}

// processMouseButtonReleased fires OnClick when the release lands on the
// control that was pressed, then OnPointerUp, recording the outcome in res.
func (s *Surface) processMouseButtonReleased(x, y float64, button MouseButton, res *EventResult) {
	target := s.hitTest(x, y)
	pressed := s.pressed
	s.pressed = nil
	if target == nil {
		return
	}
	res.Consumed = true
	if pressed == target {
		ctx := s.pointerContext(target, x, y, button)
		if target.OnClick != nil {
			target.OnClick(ClickContext(ctx))
		}
		if s.ctx != nil {
			s.ctx.emit(InteractionClick, target, x, y, button)
		}
		res.Handled = true
		res.Control = target
	}
	if target.disposed {
		return
	}
	if target.OnPointerUp != nil {
		target.OnPointerUp(s.pointerContext(target, x, y, button))
	}
	if s.ctx != nil {
		s.ctx.emit(InteractionPointerUp, target, x, y, button)
	}
}

// processMouseMove fires enter/leave callbacks when the hovered control
// changes. Repeating a move at the same position fires nothing.
func (s *Surface) processMouseMove(x, y float64) *Control {
	target := s.hitTest(x, y)
	if target == s.hover {
		return target
	}
	if prev := s.hover; prev != nil && !prev.disposed {
		if prev.OnPointerLeave != nil {
			prev.OnPointerLeave(s.pointerContext(prev, x, y, MouseButtonLeft))
		}
		if s.ctx != nil {
			s.ctx.emit(InteractionPointerLeave, prev, x, y, MouseButtonLeft)
		}
	}
	s.hover = target
	if target != nil {
		if target.OnPointerEnter != nil {
			target.OnPointerEnter(s.pointerContext(target, x, y, MouseButtonLeft))
		}
		if s.ctx != nil {
			s.ctx.emit(InteractionPointerEnter, target, x, y, MouseButtonLeft)
		}
	}
	return target
}

// detach runs when the surface leaves its document's stack.
func (s *Surface) detach() {
	s.root.releaseFocus()
	s.hover = nil
	s.pressed = nil
	s.destroyed = true
	s.doc = nil
	s.ctx = nil
}
