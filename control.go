package canopy

import (
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// PointerContext carries pointer event data for a control callback.
type PointerContext struct {
	Control  *Control
	Surface  *Surface
	EntityID uint32
	UserData any
	X, Y     float64 // document coordinates
	LocalX   float64
	LocalY   float64
	Button   MouseButton
}

// ClickContext carries click event data.
type ClickContext struct {
	Control  *Control
	Surface  *Surface
	EntityID uint32
	UserData any
	X, Y     float64
	LocalX   float64
	LocalY   float64
	Button   MouseButton
}

// --- ID counter ---

// controlIDCounter is a plain counter (no atomic; canopy is single-threaded).
var controlIDCounter uint32

func nextControlID() uint32 {
	controlIDCounter++
	return controlIDCounter
}

// --- Control ---

// Control is an element of a surface's subtree. A single flat struct is used
// for all control kinds; Kind selects the built-in behavior.
type Control struct {
	// Identity
	ID   uint32
	Name string
	Kind ControlKind

	// Hierarchy
	Parent   *Control
	children []*Control
	surface  *Surface

	// Geometry, relative to the parent's top-left corner.
	X, Y          float64
	Width, Height float64

	// Visibility & interaction
	Alpha     float64
	Visible   bool
	Enabled   bool
	Focusable bool

	// Appearance
	Color       Color // background; transparent draws nothing
	BorderColor Color // outline; transparent draws nothing
	TextColor   Color
	Align       TextAlign

	// Text is shown as-is unless TextKey is set, in which case the message
	// with that id is looked up in the active language at draw time.
	Text      string
	TextKey   string
	MaxLength int // text inputs only; 0 = unlimited

	// Metadata
	UserData any
	EntityID uint32

	// Hit testing
	HitShape HitShape

	// Per-control callbacks (nil by default)
	OnPointerDown     func(PointerContext)
	OnPointerUp       func(PointerContext)
	OnPointerEnter    func(PointerContext)
	OnPointerLeave    func(PointerContext)
	OnClick           func(ClickContext)
	OnFocus           func()
	OnBlur            func()
	OnText            func(r rune)
	OnKey             func(KeyEvent)
	OnLanguageChanged func(lang string)
	OnUpdate          func(dt float64)

	// Internal
	focused        bool
	disposed       bool
	translated     string
	translatedLang string
	translatedKey  string
}

// controlDefaults sets the common default field values shared by all constructors.
func controlDefaults(c *Control) {
	c.ID = nextControlID()
	c.Alpha = 1
	c.Visible = true
	c.Enabled = true
	c.TextColor = ColorWhite
}

// NewPanel creates a panel control: a group with an optional background.
func NewPanel(name string) *Control {
	c := &Control{Name: name, Kind: ControlPanel}
	controlDefaults(c)
	return c
}

// NewLabel creates a label showing text.
func NewLabel(name, text string) *Control {
	c := &Control{Name: name, Kind: ControlLabel, Text: text}
	controlDefaults(c)
	return c
}

// NewButton creates a button whose caption is the localized message textKey.
// If no message with that id exists, the id itself is shown.
func NewButton(name, textKey string) *Control {
	c := &Control{Name: name, Kind: ControlButton, TextKey: textKey}
	controlDefaults(c)
	c.Color = Color{0.25, 0.25, 0.3, 1}
	c.Align = TextAlignCenter
	return c
}

// NewTextInput creates a focusable control that accumulates entered text.
func NewTextInput(name string) *Control {
	c := &Control{Name: name, Kind: ControlTextInput, Focusable: true}
	controlDefaults(c)
	c.Color = Color{0.1, 0.1, 0.12, 1}
	c.BorderColor = Color{0.5, 0.5, 0.55, 1}
	return c
}

// --- Geometry ---

// SetRect sets the control's position (relative to its parent) and size.
func (c *Control) SetRect(x, y, w, h float64) {
	c.X, c.Y, c.Width, c.Height = x, y, w, h
}

// SetSize sets the control's size.
func (c *Control) SetSize(w, h float64) {
	c.Width, c.Height = w, h
}

// SetCenter positions the control so that its middle lies at the document
// point p.
func (c *Control) SetCenter(p Vec2) {
	ox, oy := c.parentOrigin()
	c.X = p.X - c.Width/2 - ox
	c.Y = p.Y - c.Height/2 - oy
}

// Bounds returns the control's rectangle in document coordinates.
func (c *Control) Bounds() Rect {
	ox, oy := c.parentOrigin()
	return Rect{X: ox + c.X, Y: oy + c.Y, Width: c.Width, Height: c.Height}
}

// Middle returns the center of the control in document coordinates.
func (c *Control) Middle() Vec2 {
	return c.Bounds().Center()
}

func (c *Control) parentOrigin() (float64, float64) {
	var x, y float64
	for p := c.Parent; p != nil; p = p.Parent {
		x += p.X
		y += p.Y
	}
	return x, y
}

// --- Tree manipulation ---

// Attach appends child to this control's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this control (cycle).
func (c *Control) Attach(child *Control) {
	c.AttachAt(child, -1)
}

// AttachAt inserts child at the given index; -1 appends.
// Same reparenting and cycle-check behavior as Attach.
func (c *Control) AttachAt(child *Control, index int) {
	if child == nil {
		panic("canopy: cannot attach nil control")
	}
	if globalDebug {
		debugCheckDisposed(c, "Attach (parent)")
		debugCheckDisposed(child, "Attach (child)")
	}
	if isAncestor(child, c) {
		panic("canopy: attaching control would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.Detach(child)
	}
	if index < 0 {
		index = len(c.children)
	}
	if index > len(c.children) {
		panic("canopy: child index out of range")
	}
	child.Parent = c
	c.children = append(c.children, nil)
	copy(c.children[index+1:], c.children[index:])
	c.children[index] = child
	child.setSurface(c.surface)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(c)
	}
}

// Detach removes child from this control. A focused control inside the
// detached subtree loses focus first.
// Panics if child.Parent != c.
func (c *Control) Detach(child *Control) {
	if child.Parent != c {
		panic("canopy: control's parent is not this control")
	}
	child.releaseFocus()
	for i, ch := range c.children {
		if ch == child {
			copy(c.children[i:], c.children[i+1:])
			c.children[len(c.children)-1] = nil
			c.children = c.children[:len(c.children)-1]
			break
		}
	}
	child.Parent = nil
	child.setSurface(nil)
}

// RemoveFromParent detaches this control from its parent.
// No-op if this control has no parent.
func (c *Control) RemoveFromParent() {
	if c.Parent == nil {
		return
	}
	c.Parent.Detach(c)
}

// RemoveChildren detaches all children. Children are NOT disposed.
func (c *Control) RemoveChildren() {
	for len(c.children) > 0 {
		c.Detach(c.children[len(c.children)-1])
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (c *Control) Children() []*Control {
	return c.children
}

// NumChildren returns the number of children.
func (c *Control) NumChildren() int {
	return len(c.children)
}

// ChildAt returns the child at the given index.
func (c *Control) ChildAt(index int) *Control {
	return c.children[index]
}

// FindByName returns the first control named name in this subtree
// (depth-first, this control included), or nil.
func (c *Control) FindByName(name string) *Control {
	if c.Name == name {
		return c
	}
	for _, child := range c.children {
		if found := child.FindByName(name); found != nil {
			return found
		}
	}
	return nil
}

// Surface returns the surface this control is attached to, or nil.
func (c *Control) Surface() *Surface {
	return c.surface
}

func (c *Control) setSurface(s *Surface) {
	c.surface = s
	for _, child := range c.children {
		child.setSurface(s)
	}
}

func (c *Control) context() *Context {
	if c.surface == nil {
		return nil
	}
	return c.surface.ctx
}

// --- Focus ---

// Focus makes this control the focused control of its document, blurring the
// previous one. Returns false if the control cannot take focus, including
// when its surface has been destroyed.
func (c *Control) Focus() bool {
	if !c.Focusable || !c.Enabled || c.disposed {
		return false
	}
	if c.surface != nil && c.surface.destroyed {
		return false
	}
	ctx := c.context()
	if ctx == nil {
		return false
	}
	return ctx.setFocus(c)
}

// Blur removes focus from this control. No-op if it is not focused.
func (c *Control) Blur() {
	if ctx := c.context(); ctx != nil && ctx.focus == c {
		ctx.clearFocus()
	}
}

// IsFocused reports whether this control holds focus.
func (c *Control) IsFocused() bool {
	return c.focused
}

// releaseFocus blurs the focused control if it lies in this subtree.
func (c *Control) releaseFocus() {
	ctx := c.context()
	if ctx == nil || ctx.focus == nil {
		return
	}
	if isAncestor(c, ctx.focus) {
		ctx.clearFocus()
	}
}

// --- Text ---

// DisplayText returns the text to render: the translation of TextKey in the
// active language when TextKey is set, otherwise Text.
func (c *Control) DisplayText() string {
	if c.TextKey == "" {
		return c.Text
	}
	ctx := c.context()
	if ctx == nil {
		return c.TextKey
	}
	lang := ctx.Language()
	if c.translatedLang != lang || c.translatedKey != c.TextKey {
		c.translated = ctx.Translate(c.TextKey)
		c.translatedLang = lang
		c.translatedKey = c.TextKey
	}
	return c.translated
}

// switchLanguage drops cached translations in this subtree and notifies
// OnLanguageChanged callbacks.
func (c *Control) switchLanguage(lang string) {
	c.translatedLang = ""
	if c.OnLanguageChanged != nil {
		c.OnLanguageChanged(lang)
	}
	for _, child := range c.children {
		child.switchLanguage(lang)
	}
}

func (c *Control) handleText(r rune) {
	if c.OnText != nil {
		c.OnText(r)
	}
	if c.Kind != ControlTextInput || !unicode.IsPrint(r) {
		return
	}
	if c.MaxLength > 0 && utf8.RuneCountInString(c.Text) >= c.MaxLength {
		return
	}
	c.Text += string(r)
}

func (c *Control) handleKey(k KeyEvent) {
	if c.OnKey != nil {
		c.OnKey(k)
	}
	if c.Kind == ControlTextInput && k.Key == ebiten.KeyBackspace && c.Text != "" {
		_, size := utf8.DecodeLastRuneInString(c.Text)
		c.Text = c.Text[:len(c.Text)-size]
	}
}

// --- Per-frame ---

func (c *Control) update(dt float64) {
	if c.OnUpdate != nil {
		c.OnUpdate(dt)
	}
	for _, child := range c.children {
		child.update(dt)
	}
}

// --- Disposal ---

// Dispose removes this control from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (c *Control) Dispose() {
	if c.disposed {
		return
	}
	c.RemoveFromParent()
	c.dispose()
}

func (c *Control) dispose() {
	c.disposed = true
	c.ID = 0
	for _, child := range c.children {
		child.Parent = nil
		child.dispose()
	}
	c.children = nil
	c.Parent = nil
	c.surface = nil
	c.HitShape = nil
	c.UserData = nil
	c.OnPointerDown = nil
	c.OnPointerUp = nil
	c.OnPointerEnter = nil
	c.OnPointerLeave = nil
	c.OnClick = nil
	c.OnFocus = nil
	c.OnBlur = nil
	c.OnText = nil
	c.OnKey = nil
	c.OnLanguageChanged = nil
	c.OnUpdate = nil
}

// IsDisposed returns true if this control has been disposed.
func (c *Control) IsDisposed() bool {
	return c.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or an ancestor of node.
func isAncestor(candidate, node *Control) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}
