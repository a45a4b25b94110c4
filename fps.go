package canopy

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// NewFPSLabel creates a label that displays the current FPS and TPS.
// The text is refreshed every ~0.5 seconds by its OnUpdate callback.
func NewFPSLabel() *Control {
	label := NewLabel("fps", "")
	// 160x20 fits "FPS: 60.0 TPS: 60.0" in the 7x13 face.
	label.SetRect(4, 4, 160, 20)
	label.Color = Color{0, 0, 0, 0.5}

	var lastUpdate float64
	label.OnUpdate = func(dt float64) {
		lastUpdate += dt
		if lastUpdate < 0.5 && label.Text != "" {
			return
		}
		lastUpdate = 0
		label.Text = fmt.Sprintf("FPS: %.1f TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	return label
}
