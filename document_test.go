package canopy

import "testing"

func TestNewDocumentDefaults(t *testing.T) {
	d := newTestDocument()
	if d.Bounds() != (Rect{Width: 800, Height: 600}) {
		t.Errorf("Bounds = %v", d.Bounds())
	}
	if d.SurfaceCount() != 0 {
		t.Errorf("SurfaceCount = %d, want 0", d.SurfaceCount())
	}
	if d.TopSurface() != nil {
		t.Error("TopSurface should be nil for an empty document")
	}
	if d.Language() != DefaultLanguage {
		t.Errorf("Language = %q, want %q", d.Language(), DefaultLanguage)
	}
	if d.CommitOnUpdate {
		t.Error("CommitOnUpdate should default to false")
	}
	if d.Middle() != (Vec2{400, 300}) {
		t.Errorf("Middle = %v", d.Middle())
	}
}

func TestAddSurfaceLookupByName(t *testing.T) {
	d := newTestDocument()
	a := d.AddSurface("A")
	b := d.AddSurface("B")

	if got := d.SurfaceByName("B"); got != b {
		t.Error("SurfaceByName(B) should return B")
	}
	if got := d.SurfaceByName("A"); got != a {
		t.Error("SurfaceByName(A) should return A")
	}
	if got := d.TopSurface(); got != a {
		t.Error("TopSurface should return the surface at index 0")
	}
	assertNames(t, surfaceNames(d), []string{"A", "B"})
}

func TestAddSurfaceSizedToDocument(t *testing.T) {
	d := NewDocument(Rect{X: 10, Y: 20, Width: 300, Height: 200})
	s := d.AddSurface("s")
	if s.Rect() != d.Bounds() {
		t.Errorf("surface rect = %v, want %v", s.Rect(), d.Bounds())
	}
	if s.Context() != d.Context() {
		t.Error("surface should share the document context")
	}
	if s.Document() != d {
		t.Error("surface should know its document")
	}
}

func TestSetRectResizesSurfaces(t *testing.T) {
	d := newTestDocument()
	s := d.AddSurface("s")
	btn := NewButton("b", "b")
	btn.SetRect(10, 10, 20, 20)
	s.Attach(btn)

	r := Rect{X: 5, Y: 5, Width: 1024, Height: 768}
	d.SetRect(r)
	if s.Rect() != r {
		t.Errorf("surface rect = %v, want %v", s.Rect(), r)
	}
	// Controls are positioned relative to the surface origin.
	if got := btn.Bounds(); got.X != 15 || got.Y != 15 {
		t.Errorf("button bounds = %v, want origin (15, 15)", got)
	}
}

func TestSurfaceGetOrCreate(t *testing.T) {
	d := newTestDocument()
	s1 := d.Surface("hud")
	s2 := d.Surface("hud")
	if s1 != s2 {
		t.Error("Surface should return the existing surface")
	}
	if d.SurfaceCount() != 1 {
		t.Errorf("SurfaceCount = %d, want 1", d.SurfaceCount())
	}
}

func TestSurfaceAtOutOfRange(t *testing.T) {
	d := newTestDocument()
	d.AddSurface("a")
	for _, i := range []int{-1, 1, 5} {
		if d.SurfaceAt(i) != nil {
			t.Errorf("SurfaceAt(%d) should be nil", i)
		}
	}
}

func TestDestroySurface(t *testing.T) {
	d := newTestDocument()
	a := d.AddSurface("a")
	d.AddSurface("b")

	d.DestroySurface(a)
	assertNames(t, surfaceNames(d), []string{"b"})
	if !a.IsDestroyed() {
		t.Error("destroyed surface should report IsDestroyed")
	}
	if a.Document() != nil {
		t.Error("destroyed surface should drop its document")
	}

	// Destroying again, or destroying nil, is a no-op.
	d.DestroySurface(a)
	d.DestroySurface(nil)
	assertNames(t, surfaceNames(d), []string{"b"})
}

func TestDestroySurfaceFromOtherDocumentIsNoOp(t *testing.T) {
	d1, d2 := newTestDocument(), newTestDocument()
	s := d1.AddSurface("s")
	d2.AddSurface("other")

	d2.DestroySurface(s)
	if d1.SurfaceCount() != 1 || d2.SurfaceCount() != 1 {
		t.Error("destroying a foreign surface must not change either document")
	}
}

func TestDestroySurfaceReleasesFocus(t *testing.T) {
	d := newTestDocument()
	s := d.AddSurface("s")
	in := NewTextInput("in")
	in.SetRect(0, 0, 100, 20)
	s.Attach(in)

	blurs := 0
	in.OnBlur = func() { blurs++ }
	in.Focus()

	d.DestroySurface(s)
	if d.Context().FocusControl() != nil {
		t.Error("focus should be cleared when its surface is destroyed")
	}
	if blurs != 1 {
		t.Errorf("OnBlur called %d times, want 1", blurs)
	}
}

func TestFocusOnDestroyedSurfaceIsRejected(t *testing.T) {
	d := newTestDocument()
	s := d.AddSurface("s")
	in := NewTextInput("in")
	in.SetRect(0, 0, 100, 20)
	s.Attach(in)

	d.DestroySurface(s)
	if s.Context() != nil {
		t.Error("destroyed surface should drop the shared context")
	}
	if in.Focus() {
		t.Error("control on a destroyed surface cannot take focus")
	}
	d.PushEvent(TextEntered('x'))
	if d.Context().FocusControl() != nil || in.Text != "" {
		t.Error("control on a destroyed surface must not receive text")
	}
}

func TestControlByName(t *testing.T) {
	d := newTestDocument()
	_, btn := addSurfaceWithButton(d, "menu", 0, 0)
	if got := d.ControlByName("menu.btn"); got != btn {
		t.Error("ControlByName should find the button")
	}
	// The surface root is not a named control of the document.
	if got := d.ControlByName("menu"); got != nil {
		t.Error("ControlByName should not return surface roots")
	}
	if got := d.ControlByName("missing"); got != nil {
		t.Error("ControlByName should return nil for unknown names")
	}
}

func TestClearUnusedSurfaces(t *testing.T) {
	d := newTestDocument()
	d.AddSurface("empty")
	addSurfaceWithButton(d, "full", 0, 0)
	modal := d.AddSurface("modal-empty")
	modal.Modal = true

	d.ClearUnusedSurfaces()
	assertNames(t, surfaceNames(d), []string{"full", "modal-empty"})
	if d.PendingChanges() != 0 {
		t.Errorf("PendingChanges = %d, want 0", d.PendingChanges())
	}
}

func TestShowMessageBox(t *testing.T) {
	d := newTestDocument()
	addSurfaceWithButton(d, "menu", 0, 0)

	box := d.ShowMessageBox("Saved")
	if !box.IsModal() {
		t.Fatal("message box should be modal")
	}
	if d.SurfaceByName("modal") != box {
		t.Fatal("message box should be named modal")
	}
	label := box.FindByName("modal.message")
	if label == nil || label.Text != "Saved" {
		t.Fatalf("message label = %+v", label)
	}
	if label.Middle() != d.Middle() {
		t.Errorf("message should be centered, middle = %v", label.Middle())
	}

	ok := box.FindByName("modal.ok")
	if ok == nil {
		t.Fatal("missing OK button")
	}
	if got := ok.DisplayText(); got != "OK" {
		t.Errorf("OK caption = %q", got)
	}

	m := ok.Middle()
	d.PushEvent(MousePressed(int(m.X), int(m.Y), MouseButtonLeft))
	res := d.PushEvent(MouseReleased(int(m.X), int(m.Y), MouseButtonLeft))
	if !res.Handled || res.Control != ok {
		t.Errorf("click on OK not handled: %+v", res)
	}
	if d.SurfaceByName("modal") != nil {
		t.Error("message box should be gone after OK")
	}
	assertNames(t, surfaceNames(d), []string{"menu"})
}

func TestMessageBoxBlocksLowerSurfaces(t *testing.T) {
	d := newTestDocument()
	_, btn := addSurfaceWithButton(d, "menu", 0, 0)
	clicks := 0
	btn.OnClick = func(ClickContext) { clicks++ }

	d.ShowMessageBox("Busy")
	d.PushEvent(MousePressed(10, 10, MouseButtonLeft))
	d.PushEvent(MouseReleased(10, 10, MouseButtonLeft))
	if clicks != 0 {
		t.Errorf("button under a modal surface clicked %d times", clicks)
	}
}
