package geodata

// Graticule builds meridian and parallel rings at the given spacing in
// degrees, sampled every stepDeg along each line. Generated once at
// startup and rendered through the same pipeline as the coastlines.
func Graticule(spacingDeg, stepDeg float64) Dataset {
	if spacingDeg <= 0 {
		spacingDeg = 30
	}
	if stepDeg <= 0 {
		stepDeg = 5
	}
	var ds Dataset
	// Meridians, pole to pole.
	for lon := -180.0; lon < 180; lon += spacingDeg {
		var r GeoRing
		for lat := -90.0; lat <= 90; lat += stepDeg {
			r = append(r, [2]float64{lat, lon})
		}
		ds.Rings = append(ds.Rings, r)
	}
	// Parallels, closed around the globe. The poles are single points
	// and are skipped.
	for lat := -90.0 + spacingDeg; lat < 90; lat += spacingDeg {
		var r GeoRing
		for lon := -180.0; lon <= 180; lon += stepDeg {
			r = append(r, [2]float64{lat, lon})
		}
		ds.Rings = append(ds.Rings, r)
	}
	return ds
}
