package render

import "goglobe/internal/sphere"

// Viewport places the globe on the drawing surface, in micro-pixels.
// Set once from the canvas size; constant until a resize.
type Viewport struct {
	Radius  float64
	CenterX float64
	CenterY float64
}

// ScreenPoint is a projected coordinate plus its hemisphere flag.
// Derived per frame, never persisted.
type ScreenPoint struct {
	X, Y  float64
	Front bool
}

// Project maps a rotated unit vector to the screen under an orthographic
// projection: the silhouette is the circle of Viewport.Radius around the
// center, matching the sphere's horizon exactly. A point is front-facing
// iff its viewer-axis component is >= 0; the boundary always counts as
// front so horizon points classify the same on every evaluation. All
// math stays in floats; rounding happens only at rasterization.
func Project(v sphere.Vec3, vp Viewport) ScreenPoint {
	return ScreenPoint{
		X:     vp.CenterX + vp.Radius*v.X,
		Y:     vp.CenterY - vp.Radius*v.Y,
		Front: v.Z >= 0,
	}
}
