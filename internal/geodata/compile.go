package geodata

import (
	"fmt"
	"math"

	"goglobe/internal/geo"
)

// DefaultMinSpacingDeg is the build-time decimation threshold: consecutive
// vertices closer than this (great-circle degrees, approximated on the
// lat/lon plane) collapse into one. 0.1 degrees keeps Natural Earth 110m
// data effectively untouched while bounding denser sources.
const DefaultMinSpacingDeg = 0.1

// Options configures compilation.
type Options struct {
	// MinSpacingDeg is the vertex decimation threshold in degrees.
	// Zero means DefaultMinSpacingDeg; negative disables decimation.
	MinSpacingDeg float64
}

func (o Options) spacing() float64 {
	if o.MinSpacingDeg == 0 {
		return DefaultMinSpacingDeg
	}
	if o.MinSpacingDeg < 0 {
		return 0
	}
	return o.MinSpacingDeg
}

// Compile validates, decimates, and quantizes raw line work into a
// Dataset. Output is deterministic for a given input and options. Any
// malformed record aborts with an error so bad geodata never ships.
func Compile(src geo.Data, opts Options) (Dataset, error) {
	if err := src.Validate(); err != nil {
		return Dataset{}, err
	}
	minSp := opts.spacing()
	var ds Dataset
	for i, ring := range src.Rings {
		out := make(GeoRing, 0, len(ring))
		for j, p := range ring {
			lon, lat := p[0], p[1]
			if j > 0 && j < len(ring)-1 && minSp > 0 {
				// First and last vertices always survive so ring
				// endpoints stay put.
				prev := out[len(out)-1]
				if angularDist(prev[0], prev[1], lat, lon) < minSp {
					continue
				}
			}
			out = append(out, [2]float64{dequantize(quantize(lat)), dequantize(quantize(lon))})
		}
		if len(out) == 0 {
			return Dataset{}, fmt.Errorf("geodata: ring %d decimated to nothing", i)
		}
		ds.Rings = append(ds.Rings, out)
	}
	return ds, nil
}

// angularDist approximates the separation of two geographic points in
// degrees, shrinking longitude by cos(lat). Good enough for decimation.
func angularDist(lat0, lon0, lat1, lon1 float64) float64 {
	dLat := lat1 - lat0
	dLon := (lon1 - lon0) * math.Cos((lat0+lat1)/2*math.Pi/180)
	return math.Hypot(dLat, dLon)
}
