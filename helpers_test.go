package canopy

import "testing"

// drawCall is one call recorded by recordingRenderer.
type drawCall struct {
	op    string // "quad", "line" or "draw"
	cx    float64
	cy    float64
	w, h  float64
	p0    Vec2
	p1    Vec2
	color Color
	text  string
}

// recordingRenderer records draw calls instead of rasterizing them.
type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) Draw(d Drawable) {
	call := drawCall{op: "draw"}
	if td, ok := d.(*TextDrawable); ok {
		call.text = td.Text
		call.color = td.Color
	}
	r.calls = append(r.calls, call)
}

func (r *recordingRenderer) DrawDebugQuad(cx, cy, _, w, h float64, c Color) {
	r.calls = append(r.calls, drawCall{op: "quad", cx: cx, cy: cy, w: w, h: h, color: c})
}

func (r *recordingRenderer) DrawDebugLine(p0, p1 Vec2, c Color) {
	r.calls = append(r.calls, drawCall{op: "line", p0: p0, p1: p1, color: c})
}

func (r *recordingRenderer) texts() []string {
	var out []string
	for _, c := range r.calls {
		if c.op == "draw" {
			out = append(out, c.text)
		}
	}
	return out
}

// newTestDocument returns an 800x600 document.
func newTestDocument() *Document {
	return NewDocument(Rect{Width: 800, Height: 600})
}

// addSurfaceWithButton adds a surface holding one 100x50 button at (x, y),
// so that the surface takes part in event dispatch.
func addSurfaceWithButton(d *Document, name string, x, y float64) (*Surface, *Control) {
	s := d.AddSurface(name)
	btn := NewButton(name+".btn", name)
	btn.SetRect(x, y, 100, 50)
	s.Attach(btn)
	return s, btn
}

// surfaceNames lists committed surface names bottom to top.
func surfaceNames(d *Document) []string {
	out := make([]string, 0, d.SurfaceCount())
	for _, s := range d.Surfaces() {
		out = append(out, s.Name())
	}
	return out
}

func assertNames(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("names = %v, want %v", got, want)
		}
	}
}

// recordingSink collects emitted control events.
type recordingSink struct {
	events []ControlEvent
}

func (s *recordingSink) EmitEvent(ev ControlEvent) {
	s.events = append(s.events, ev)
}
