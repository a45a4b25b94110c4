package canopy

import "time"

// Document owns an ordered stack of surfaces plus the UI state shared by
// them for one screen. Each frame the owner calls PushEvent for every input
// event, then Update, then Draw. All calls must come from the same goroutine.
type Document struct {
	bounds   Rect
	registry surfaceRegistry
	ctx      *Context

	// Colors of the document background quad and its four border lines.
	// All default to transparent.
	BackgroundColor   Color
	TopBorderColor    Color
	BottomBorderColor Color
	LeftBorderColor   Color
	RightBorderColor  Color

	// CommitOnUpdate applies surface additions and removals requested during
	// Update at the end of that Update. When false (the default) they become
	// visible at the next PushEvent or unlocked mutation.
	CommitOnUpdate bool

	debug bool
	stats debugStats
}

// NewDocument creates an empty document covering bounds, in DefaultLanguage.
func NewDocument(bounds Rect) *Document {
	d := &Document{
		bounds: bounds,
		ctx:    newContext(NewLocalization(DefaultLanguage)),
	}
	d.registry.onRemove = (*Surface).detach
	return d
}

// Bounds returns the document rectangle.
func (d *Document) Bounds() Rect {
	return d.bounds
}

// SetRect sets new bounds and moves and resizes every committed surface to
// match.
func (d *Document) SetRect(r Rect) {
	d.bounds = r
	for _, s := range d.registry.surfaces {
		s.SetPosition(r.X, r.Y)
		s.SetSize(r.Width, r.Height)
	}
}

// Middle returns the center of the document.
func (d *Document) Middle() Vec2 {
	return d.bounds.Center()
}

// Context returns the state shared by the document's surfaces.
func (d *Document) Context() *Context {
	return d.ctx
}

// Language returns the active language code.
func (d *Document) Language() string {
	return d.ctx.Language()
}

// SetEventSink sets the optional ECS bridge. Pass nil to disable it.
func (d *Document) SetEventSink(sink EventSink) {
	d.ctx.sink = sink
}

// --- Surface stack ---

// AddSurface creates a surface sized to the document and pushes it on top of
// the stack. During a traversal (event dispatch, update, draw) the insert is
// deferred: the surface is returned immediately and can be found with
// SurfaceByName, but is not drawn, updated or sent events until committed.
func (d *Document) AddSurface(name string) *Surface {
	s := newSurface(name)
	s.SetPosition(d.bounds.X, d.bounds.Y)
	s.SetSize(d.bounds.Width, d.bounds.Height)
	s.setContext(d.ctx)
	s.doc = d
	d.registry.add(s)
	return s
}

// DestroySurface removes s from the stack, deferring the removal during a
// traversal. Destroying a surface this document does not hold is a no-op,
// as is destroying the same surface twice.
func (d *Document) DestroySurface(s *Surface) {
	if s == nil || s.doc != d {
		return
	}
	d.registry.remove(s)
}

// ApplyPendingChanges commits deferred additions and removals in the order
// they were requested. It does nothing while a traversal is running; the
// outermost traversal commits instead.
func (d *Document) ApplyPendingChanges() {
	d.registry.apply()
}

// PendingChanges returns the number of deferred additions and removals.
func (d *Document) PendingChanges() int {
	return len(d.registry.pending)
}

// Locked reports whether a traversal is running.
func (d *Document) Locked() bool {
	return d.registry.locked()
}

// SurfaceByName returns the last committed surface called name. If there is
// none, a surface added during the current traversal is returned instead.
// Returns nil when nothing matches.
func (d *Document) SurfaceByName(name string) *Surface {
	return d.registry.byName(name)
}

// Surface returns the surface called name, creating it if it does not exist.
func (d *Document) Surface(name string) *Surface {
	if s := d.SurfaceByName(name); s != nil {
		return s
	}
	return d.AddSurface(name)
}

// SurfaceAt returns the committed surface at index, or nil if out of range.
func (d *Document) SurfaceAt(index int) *Surface {
	if index < 0 || index >= len(d.registry.surfaces) {
		return nil
	}
	return d.registry.surfaces[index]
}

// TopSurface returns the surface at index 0, or nil if there is none.
func (d *Document) TopSurface() *Surface {
	return d.SurfaceAt(0)
}

// SurfaceCount returns the number of committed surfaces.
func (d *Document) SurfaceCount() int {
	return len(d.registry.surfaces)
}

// Surfaces returns the committed surfaces in draw order. The returned slice
// MUST NOT be mutated.
func (d *Document) Surfaces() []*Surface {
	return d.registry.surfaces
}

// ControlByName searches committed surfaces in draw order and returns the
// first control called name, or nil.
func (d *Document) ControlByName(name string) *Control {
	for _, s := range d.registry.surfaces {
		if c := s.FindByName(name); c != nil {
			return c
		}
	}
	return nil
}

// ClearUnusedSurfaces destroys committed surfaces that hold no controls.
// Modal surfaces are kept.
func (d *Document) ClearUnusedSurfaces() {
	d.registry.acquire()
	for _, s := range d.registry.surfaces {
		if s.ChildCount() == 0 && !s.Modal {
			d.DestroySurface(s)
		}
	}
	d.registry.release()
	d.registry.apply()
}

// --- Language ---

// SetLanguage switches the active language and asks every committed surface
// to refresh its language-dependent content. Surfaces still pending pick the
// language up from the shared context when they draw. Surfaces added or
// destroyed by language handlers wait for the next commit point.
func (d *Document) SetLanguage(code string) {
	d.ctx.loc.SetLanguage(code)
	d.switchLanguage()
}

func (d *Document) switchLanguage() {
	d.registry.acquire()
	defer d.registry.release()
	for _, s := range d.registry.surfaces {
		s.SwitchLanguage()
	}
}

// --- Per-frame traversal ---

// Update advances every committed surface, topmost first.
func (d *Document) Update(dt float64) {
	var t0 time.Time
	if d.debug {
		t0 = time.Now()
	}

	d.updateSurfaces(dt)
	if d.CommitOnUpdate {
		d.registry.apply()
	}

	if d.debug {
		d.stats.updateTime = time.Since(t0)
	}
}

func (d *Document) updateSurfaces(dt float64) {
	d.registry.acquire()
	defer d.registry.release()
	surfaces := d.registry.surfaces
	for i := len(surfaces) - 1; i >= 0; i-- {
		surfaces[i].Update(dt)
	}
}

// Draw renders the document background and borders, then every committed
// surface bottom to top. Surfaces must not mutate the stack while drawing;
// if one does, the change is deferred like any other.
func (d *Document) Draw(r Renderer) {
	var t0 time.Time
	if d.debug {
		t0 = time.Now()
	}

	b := d.bounds
	r.DrawDebugQuad(b.X+b.Width/2, b.Y+b.Height/2, 0, b.Width, b.Height, d.BackgroundColor)
	drawRectOutline(r, b, d.TopBorderColor, d.BottomBorderColor, d.LeftBorderColor, d.RightBorderColor)
	d.drawSurfaces(r)

	if d.debug {
		d.stats.drawTime = time.Since(t0)
		d.stats.surfaceCount = len(d.registry.surfaces)
		d.stats.pendingCount = len(d.registry.pending)
		d.debugLog(d.stats)
		d.stats = debugStats{}
	}
}

func (d *Document) drawSurfaces(r Renderer) {
	d.registry.acquire()
	defer d.registry.release()
	for _, s := range d.registry.surfaces {
		s.Draw(r)
	}
}

// --- Dialogs ---

// messageBoxDim is the translucent backdrop behind a message box.
var messageBoxDim = RGBA8(0, 0, 0, 80)

// ShowMessageBox adds a modal surface called "modal" showing message over a
// dimmed backdrop, with an OK button that destroys the surface.
func (d *Document) ShowMessageBox(message string) *Surface {
	s := d.AddSurface("modal")
	s.Modal = true

	backdrop := NewPanel("modal.backdrop")
	backdrop.Color = messageBoxDim
	backdrop.SetSize(s.rect.Width, s.rect.Height)
	s.Attach(backdrop)

	label := NewLabel("modal.message", message)
	label.SetSize(700, 50)
	label.Color = ColorBlack
	label.TextColor = ColorWhite
	label.Align = TextAlignCenter
	backdrop.Attach(label)
	label.SetCenter(backdrop.Middle())

	ok := NewButton("modal.ok", "canopy.ok")
	ok.SetSize(120, 32)
	backdrop.Attach(ok)
	ok.SetCenter(Vec2{label.Middle().X, label.Bounds().Y + label.Height + 28})
	ok.OnClick = func(ClickContext) {
		d.DestroySurface(s)
	}
	return s
}
