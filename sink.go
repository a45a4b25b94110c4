package canopy

// EventSink is the interface for optional ECS integration.
// When set on a Document, control interactions are forwarded to it.
type EventSink interface {
	EmitEvent(event ControlEvent)
}

// ControlEvent carries interaction data for the ECS bridge.
type ControlEvent struct {
	Type        InteractionType
	EntityID    uint32
	ControlName string
	SurfaceName string
	X, Y        float64
	Button      MouseButton
	Rune        rune // InteractionText only
}

// emit forwards an interaction to the sink. Controls without an EntityID are
// not reported.
func (c *Context) emit(t InteractionType, ctrl *Control, x, y float64, button MouseButton) {
	if c.sink == nil || ctrl == nil || ctrl.EntityID == 0 {
		return
	}
	ev := ControlEvent{
		Type:        t,
		EntityID:    ctrl.EntityID,
		ControlName: ctrl.Name,
		X:           x,
		Y:           y,
		Button:      button,
	}
	if ctrl.surface != nil {
		ev.SurfaceName = ctrl.surface.name
	}
	c.sink.EmitEvent(ev)
}

func (c *Context) emitText(ctrl *Control, r rune) {
	if c.sink == nil || ctrl.EntityID == 0 {
		return
	}
	ev := ControlEvent{
		Type:        InteractionText,
		EntityID:    ctrl.EntityID,
		ControlName: ctrl.Name,
		Rune:        r,
	}
	if ctrl.surface != nil {
		ev.SurfaceName = ctrl.surface.name
	}
	c.sink.EmitEvent(ev)
}
