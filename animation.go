package canopy

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Control simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenSize,
// TweenColor, TweenAlpha) and either call Update(dt) each frame or hand it to
// Surface.AddTween. If the target control is disposed, the group stops
// immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Control
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target control has been disposed, Done is set to true and
// no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition animates c.X and c.Y to the given coordinates.
func TweenPosition(c *Control, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: c}
	g.tweens[0] = gween.New(float32(c.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(c.Y), float32(toY), duration, fn)
	g.fields[0] = &c.X
	g.fields[1] = &c.Y
	return g
}

// TweenSize animates c.Width and c.Height to the given size.
func TweenSize(c *Control, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: c}
	g.tweens[0] = gween.New(float32(c.Width), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(c.Height), float32(toH), duration, fn)
	g.fields[0] = &c.Width
	g.fields[1] = &c.Height
	return g
}

// TweenColor animates all four components of c.Color to the target color.
func TweenColor(c *Control, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: c}
	g.tweens[0] = gween.New(float32(c.Color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(c.Color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(c.Color.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(c.Color.A), float32(to.A), duration, fn)
	g.fields[0] = &c.Color.R
	g.fields[1] = &c.Color.G
	g.fields[2] = &c.Color.B
	g.fields[3] = &c.Color.A
	return g
}

// TweenAlpha animates c.Alpha to the target value.
func TweenAlpha(c *Control, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: c}
	g.tweens[0] = gween.New(float32(c.Alpha), float32(to), duration, fn)
	g.fields[0] = &c.Alpha
	return g
}
