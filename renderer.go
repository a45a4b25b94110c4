package canopy

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Drawable is anything a Renderer can submit to the screen.
type Drawable interface {
	Draw(target *ebiten.Image)
}

// Renderer is the narrow drawing surface a Document needs.
type Renderer interface {
	// Draw submits an arbitrary drawable.
	Draw(d Drawable)
	// DrawDebugQuad fills a w*h rectangle centered on (cx, cy). z is a depth
	// hint that 2D backends may ignore.
	DrawDebugQuad(cx, cy, z, w, h float64, c Color)
	// DrawDebugLine strokes a line from p0 to p1.
	DrawDebugLine(p0, p1 Vec2, c Color)
}

// TextAlign controls horizontal text alignment within a control.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)

// textPadding is the horizontal inset applied to left/right aligned text.
const textPadding = 4

var defaultFace text.Face

func fontFace() text.Face {
	if defaultFace == nil {
		defaultFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return defaultFace
}

// TextDrawable renders a single line of text inside Bounds, vertically
// centered.
type TextDrawable struct {
	Text   string
	Bounds Rect
	Color  Color
	Align  TextAlign
}

// Draw implements Drawable.
func (d *TextDrawable) Draw(target *ebiten.Image) {
	face := fontFace()
	m := face.Metrics()
	w, h := text.Measure(d.Text, face, m.HAscent+m.HDescent+m.HLineGap)

	x := d.Bounds.X + textPadding
	switch d.Align {
	case TextAlignCenter:
		x = d.Bounds.X + (d.Bounds.Width-w)/2
	case TextAlignRight:
		x = d.Bounds.X + d.Bounds.Width - w - textPadding
	}
	y := d.Bounds.Y + (d.Bounds.Height-h)/2

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(d.Color.toRGBA())
	text.Draw(target, d.Text, face, op)
}

// EbitenRenderer draws onto an ebiten image using the vector package.
type EbitenRenderer struct {
	Target    *ebiten.Image
	LineWidth float32
	AntiAlias bool
}

// NewEbitenRenderer returns a renderer targeting img with 1px lines.
func NewEbitenRenderer(img *ebiten.Image) *EbitenRenderer {
	return &EbitenRenderer{Target: img, LineWidth: 1}
}

// Draw implements Renderer.
func (r *EbitenRenderer) Draw(d Drawable) {
	d.Draw(r.Target)
}

// DrawDebugQuad implements Renderer. Fully transparent quads are skipped.
func (r *EbitenRenderer) DrawDebugQuad(cx, cy, _, w, h float64, c Color) {
	if c.A <= 0 || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(r.Target,
		float32(cx-w/2), float32(cy-h/2), float32(w), float32(h),
		c.toRGBA(), r.AntiAlias)
}

// DrawDebugLine implements Renderer. Fully transparent lines are skipped.
func (r *EbitenRenderer) DrawDebugLine(p0, p1 Vec2, c Color) {
	if c.A <= 0 {
		return
	}
	vector.StrokeLine(r.Target,
		float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y),
		r.LineWidth, c.toRGBA(), r.AntiAlias)
}

// focusColor outlines the focused control.
var focusColor = Color{0.35, 0.65, 1, 1}

// drawControl renders c and its subtree. alpha is the inherited opacity.
func drawControl(r Renderer, c *Control, alpha float64) {
	if !c.Visible {
		return
	}
	alpha *= c.Alpha
	b := c.Bounds()
	if c.Color.A > 0 {
		r.DrawDebugQuad(b.X+b.Width/2, b.Y+b.Height/2, 0, b.Width, b.Height, c.Color.WithAlpha(alpha))
	}
	border := c.BorderColor
	if c.focused {
		border = focusColor
	}
	if border.A > 0 {
		bc := border.WithAlpha(alpha)
		drawRectOutline(r, b, bc, bc, bc, bc)
	}
	if s := c.DisplayText(); s != "" {
		r.Draw(&TextDrawable{Text: s, Bounds: b, Color: c.TextColor.WithAlpha(alpha), Align: c.Align})
	}
	for _, child := range c.children {
		drawControl(r, child, alpha)
	}
}

// drawRectOutline draws the four edges of b: top, bottom, left, right.
func drawRectOutline(r Renderer, b Rect, top, bottom, left, right Color) {
	r.DrawDebugLine(Vec2{b.X, b.Y}, Vec2{b.X + b.Width, b.Y}, top)
	r.DrawDebugLine(Vec2{b.X, b.Y + b.Height}, Vec2{b.X + b.Width, b.Y + b.Height}, bottom)
	r.DrawDebugLine(Vec2{b.X, b.Y}, Vec2{b.X, b.Y + b.Height}, left)
	r.DrawDebugLine(Vec2{b.X + b.Width, b.Y}, Vec2{b.X + b.Width, b.Y + b.Height}, right)
}
