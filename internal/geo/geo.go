package geo

import "fmt"

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Ring is one coastline or border segment as an ordered (lon, lat) sequence.
type Ring [][2]float64

// Data is a minimal geometry container for compilation
type Data struct {
	Rings []Ring
	BBox  BBox
}

func (d *Data) addRing(r Ring) {
	for _, p := range r {
		if len(d.Rings) == 0 && d.BBox == (BBox{}) {
			d.BBox = BBox{MinX: p[0], MinY: p[1], MaxX: p[0], MaxY: p[1]}
		} else {
			if p[0] < d.BBox.MinX {
				d.BBox.MinX = p[0]
			}
			if p[1] < d.BBox.MinY {
				d.BBox.MinY = p[1]
			}
			if p[0] > d.BBox.MaxX {
				d.BBox.MaxX = p[0]
			}
			if p[1] > d.BBox.MaxY {
				d.BBox.MaxY = p[1]
			}
		}
	}
	d.Rings = append(d.Rings, r)
}

// Validate checks every ring for emptiness and coordinate range.
// Bad geodata must never ship, so callers abort the build on error.
func (d Data) Validate() error {
	if len(d.Rings) == 0 {
		return fmt.Errorf("geo: no rings")
	}
	for i, r := range d.Rings {
		if len(r) == 0 {
			return fmt.Errorf("geo: ring %d is empty", i)
		}
		for j, p := range r {
			lon, lat := p[0], p[1]
			if lon < -180 || lon > 180 {
				return fmt.Errorf("geo: ring %d vertex %d: longitude %g out of range [-180,180]", i, j, lon)
			}
			if lat < -90 || lat > 90 {
				return fmt.Errorf("geo: ring %d vertex %d: latitude %g out of range [-90,90]", i, j, lat)
			}
		}
	}
	return nil
}
