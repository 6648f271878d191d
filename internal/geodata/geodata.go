// Package geodata turns raw geographic line work into the compact ring
// table the renderer walks every frame, and decodes it back at startup.
// Coordinates are quantized to int32 milli-degrees: worst-case error is
// 0.0005 degrees, well under one micro-pixel at any terminal size the
// braille canvas can reach (one micro-pixel at radius 500 spans about
// 0.11 degrees at the equator).
package geodata

// GeoRing is one compiled coastline or border segment as an ordered
// (lat, lon) degree sequence. Read-only after compilation.
type GeoRing [][2]float64

// Lat returns the latitude of vertex i in degrees.
func (r GeoRing) Lat(i int) float64 { return r[i][0] }

// Lon returns the longitude of vertex i in degrees.
func (r GeoRing) Lon(i int) float64 { return r[i][1] }

// Dataset is the compiled, immutable collection of rings.
type Dataset struct {
	Rings []GeoRing
}

// Points returns the total vertex count across all rings.
func (d Dataset) Points() int {
	n := 0
	for _, r := range d.Rings {
		n += len(r)
	}
	return n
}

const (
	// quantScale converts degrees to the stored milli-degree integers.
	quantScale = 1000

	latMinQ = -90 * quantScale
	latMaxQ = 90 * quantScale
	lonMinQ = -180 * quantScale
	lonMaxQ = 180 * quantScale
)

func quantize(deg float64) int32 {
	if deg >= 0 {
		return int32(deg*quantScale + 0.5)
	}
	return int32(deg*quantScale - 0.5)
}

func dequantize(q int32) float64 {
	return float64(q) / quantScale
}
