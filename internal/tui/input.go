package tui

// Input controller: pointer drags become incremental rotations. The
// conversion is kept as pure functions so the drag behavior tests
// without a terminal.

// DragRotation converts a pointer delta in micro-pixels into an angular
// delta in degrees, scaled linearly by anglePerPixel. Dragging right
// rotates azimuth east-to-west across the view; dragging down tips the
// north pole toward the viewer.
func DragRotation(dx, dy, anglePerPixel float64) (dAzimuthDeg, dElevationDeg float64) {
	return dx * anglePerPixel, dy * anglePerPixel
}

// anglePerPixel derives the degrees-per-micro-pixel drag factor:
// proportional to the sensitivity constant and inverse to the globe
// radius, so a drag across one radius always covers a quarter turn at
// sensitivity 1 regardless of canvas size.
func anglePerPixel(sensitivity, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return sensitivity * 90 / radius
}
