// Package framing fits an orthographic camera around the grid.
package framing

import "math"

// Padding leaves a margin around the grid.
const Padding = 1.2

// View is an orthographic camera: Center in world units and Size, the
// half-height of the visible area.
type View struct {
	CenterX, CenterY float64
	Size             float64
}

// Fit frames a grid of worldW x worldH starting at (originX, originY) on a
// screen of screenW x screenH pixels.
func Fit(originX, originY, worldW, worldH, screenW, screenH float64) View {
	v := View{
		CenterX: originX + worldW*0.5,
		CenterY: originY + worldH*0.5,
	}
	if worldW <= 0 || worldH <= 0 || screenW <= 0 || screenH <= 0 {
		return v
	}

	screenRatio := screenW / screenH
	targetRatio := worldW / worldH
	if screenRatio >= targetRatio {
		v.Size = worldH * 0.5 * Padding
	} else {
		v.Size = worldW * 0.5 / screenRatio * Padding
	}

	minSize := math.Max(worldW, worldH) * 0.5 * Padding
	v.Size = math.Max(v.Size, minSize)
	return v
}

// Zoom converts the view size to pixels per world unit for a screen height.
func (v View) Zoom(screenH float64) float64 {
	if v.Size <= 0 {
		return 1
	}
	return screenH / (2 * v.Size)
}
