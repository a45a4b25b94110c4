package canopy

// Context is the state shared by every surface of one document: the focused
// control, the active language and the localization bundle. It is owned by
// the Document and lent to its surfaces.
type Context struct {
	focus    *Control
	blurring *Control
	loc      *Localization
	sink     EventSink
}

func newContext(loc *Localization) *Context {
	return &Context{loc: loc}
}

// FocusControl returns the control holding focus, or nil.
func (c *Context) FocusControl() *Control {
	return c.focus
}

// Language returns the active language code.
func (c *Context) Language() string {
	return c.loc.Language()
}

// Localization returns the document's message bundle.
func (c *Context) Localization() *Localization {
	return c.loc
}

// Translate looks up a message in the active language, returning id when
// no translation exists.
func (c *Context) Translate(id string) string {
	return c.loc.Translate(id)
}

// setFocus moves focus to ctrl. The previous holder is blurred first. If its
// OnBlur hands focus to another control, that control keeps it and setFocus
// reports false.
func (c *Context) setFocus(ctrl *Control) bool {
	if c.focus == ctrl {
		return true
	}
	if c.focus != nil {
		c.clearFocus()
		if c.focus != nil {
			return c.focus == ctrl
		}
	}
	c.focus = ctrl
	ctrl.focused = true
	if ctrl.OnFocus != nil {
		ctrl.OnFocus()
	}
	c.emit(InteractionFocus, ctrl, 0, 0, MouseButtonLeft)
	return true
}

// clearFocus notifies the focused control exactly once, then drops the
// reference. OnBlur still sees the control as focused. Returns false if
// nothing was focused.
func (c *Context) clearFocus() bool {
	ctrl := c.focus
	if ctrl == nil {
		return false
	}
	if c.blurring == ctrl {
		// Focus moved from inside OnBlur; the notification is already running.
		c.focus = nil
		ctrl.focused = false
		return false
	}
	prev := c.blurring
	c.blurring = ctrl
	if ctrl.OnBlur != nil {
		ctrl.OnBlur()
	}
	c.emit(InteractionBlur, ctrl, 0, 0, MouseButtonLeft)
	c.blurring = prev
	if c.focus == ctrl {
		c.focus = nil
	}
	ctrl.focused = false
	return true
}
