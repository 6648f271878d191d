// Package sphere maps geographic coordinates onto the unit sphere and
// tracks the globe's attitude relative to the viewer.
package sphere

import "math"

// MaxElevationDeg bounds the viewer elevation. The angle-pair
// orientation hits gimbal lock at the poles, so elevation never
// reaches them.
const MaxElevationDeg = 89

// Orientation is the globe's attitude as a (azimuth, elevation) angle
// pair in degrees. The zero value faces latitude 0, longitude 0. It is
// a plain value: Rotate returns a new Orientation, so rotation math is
// testable without any rendering surface. Angles are summed, wrapped,
// and clamped, never integrated through a matrix, so repeated small
// rotations cannot drift.
type Orientation struct {
	AzimuthDeg   float64
	ElevationDeg float64
}

// Rotate composes an incremental rotation with the current attitude.
func (o Orientation) Rotate(dAzimuthDeg, dElevationDeg float64) Orientation {
	return Orientation{
		AzimuthDeg:   wrapDeg(o.AzimuthDeg + dAzimuthDeg),
		ElevationDeg: clamp(o.ElevationDeg+dElevationDeg, -MaxElevationDeg, MaxElevationDeg),
	}
}

// Apply rotates a unit vector from the identity frame into the viewer
// frame: azimuth about the vertical axis first, then elevation about
// the screen-horizontal axis. Positive elevation tips the north pole
// toward the viewer.
func (o Orientation) Apply(v Vec3) Vec3 {
	return v.RotateY(o.AzimuthDeg * math.Pi / 180).RotateX(o.ElevationDeg * math.Pi / 180)
}

// ToUnitVector maps a geographic coordinate to the unit sphere in the
// identity frame: (0°, 0°) faces the viewer at (0, 0, 1), north is +Y.
func ToUnitVector(latDeg, lonDeg float64) Vec3 {
	sinLat, cosLat := math.Sincos(latDeg * math.Pi / 180)
	sinLon, cosLon := math.Sincos(lonDeg * math.Pi / 180)
	return Vec3{
		X: cosLat * sinLon,
		Y: sinLat,
		Z: cosLat * cosLon,
	}
}

// ToLatLon inverts ToUnitVector for a unit vector in the identity frame.
func ToLatLon(v Vec3) (latDeg, lonDeg float64) {
	latDeg = math.Asin(clamp(v.Y, -1, 1)) * 180 / math.Pi
	lonDeg = math.Atan2(v.X, v.Z) * 180 / math.Pi
	return latDeg, lonDeg
}

// wrapDeg wraps an angle into [-180, 180).
func wrapDeg(deg float64) float64 {
	deg = math.Mod(deg+180, 360)
	if deg < 0 {
		deg += 360
	}
	return deg - 180
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
