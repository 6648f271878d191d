package geo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadGeoJSON reads a GeoJSON file and returns its line work as Data.
// Supported: LineString, MultiLineString, Polygon, MultiPolygon, plus
// Feature/FeatureCollection/GeometryCollection wrappers. Point geometries
// cannot form rings and are rejected; so is any malformed coordinate,
// because silently dropping source data would ship an incomplete globe.
func LoadGeoJSON(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return ParseGeoJSON(f)
}

// ParseGeoJSON parses GeoJSON from r. See LoadGeoJSON for the supported subset.
func ParseGeoJSON(r io.Reader) (Data, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Data{}, err
	}
	var root map[string]any
	if err := json.Unmarshal(raw, &root); err != nil {
		return Data{}, fmt.Errorf("geojson: %w", err)
	}

	var d Data
	parsePoint := func(v any) ([2]float64, error) {
		a, ok := v.([]any)
		if !ok || len(a) < 2 {
			return [2]float64{}, errors.New("coordinate is not a [lon, lat] pair")
		}
		lon, lonOK := a[0].(float64)
		lat, latOK := a[1].(float64)
		if !lonOK || !latOK {
			return [2]float64{}, errors.New("coordinate components are not numbers")
		}
		return [2]float64{lon, lat}, nil
	}
	parseRing := func(v any) (Ring, error) {
		arr, ok := v.([]any)
		if !ok {
			return nil, errors.New("ring is not an array")
		}
		ring := make(Ring, 0, len(arr))
		for _, el := range arr {
			pt, err := parsePoint(el)
			if err != nil {
				return nil, err
			}
			ring = append(ring, pt)
		}
		return ring, nil
	}
	parseRings := func(v any) ([]Ring, error) {
		arr, ok := v.([]any)
		if !ok {
			return nil, errors.New("geometry coordinates are not an array")
		}
		rings := make([]Ring, 0, len(arr))
		for _, el := range arr {
			ring, err := parseRing(el)
			if err != nil {
				return nil, err
			}
			rings = append(rings, ring)
		}
		return rings, nil
	}

	var walkGeom func(g map[string]any) error
	walkGeom = func(g map[string]any) error {
		gt, _ := g["type"].(string)
		switch gt {
		case "LineString":
			ring, err := parseRing(g["coordinates"])
			if err != nil {
				return fmt.Errorf("geojson: LineString: %w", err)
			}
			d.addRing(ring)
		case "MultiLineString":
			rings, err := parseRings(g["coordinates"])
			if err != nil {
				return fmt.Errorf("geojson: MultiLineString: %w", err)
			}
			for _, ring := range rings {
				d.addRing(ring)
			}
		case "Polygon":
			rings, err := parseRings(g["coordinates"])
			if err != nil {
				return fmt.Errorf("geojson: Polygon: %w", err)
			}
			for _, ring := range rings {
				d.addRing(ring)
			}
		case "MultiPolygon":
			polys, ok := g["coordinates"].([]any)
			if !ok {
				return errors.New("geojson: MultiPolygon coordinates are not an array")
			}
			for _, poly := range polys {
				rings, err := parseRings(poly)
				if err != nil {
					return fmt.Errorf("geojson: MultiPolygon: %w", err)
				}
				for _, ring := range rings {
					d.addRing(ring)
				}
			}
		case "GeometryCollection":
			geoms, ok := g["geometries"].([]any)
			if !ok {
				return errors.New("geojson: GeometryCollection without geometries")
			}
			for _, el := range geoms {
				gm, ok := el.(map[string]any)
				if !ok {
					return errors.New("geojson: geometry is not an object")
				}
				if err := walkGeom(gm); err != nil {
					return err
				}
			}
		case "Point", "MultiPoint":
			return fmt.Errorf("geojson: %s geometries cannot form coastline rings", gt)
		default:
			return fmt.Errorf("geojson: unsupported geometry type %q", gt)
		}
		return nil
	}

	t, _ := root["type"].(string)
	switch t {
	case "Feature":
		g, ok := root["geometry"].(map[string]any)
		if !ok {
			return Data{}, errors.New("geojson: feature without geometry")
		}
		if err := walkGeom(g); err != nil {
			return Data{}, err
		}
	case "FeatureCollection":
		fs, ok := root["features"].([]any)
		if !ok {
			return Data{}, errors.New("geojson: feature collection without features")
		}
		for i, f := range fs {
			fm, ok := f.(map[string]any)
			if !ok {
				return Data{}, fmt.Errorf("geojson: feature %d is not an object", i)
			}
			g, ok := fm["geometry"].(map[string]any)
			if !ok {
				return Data{}, fmt.Errorf("geojson: feature %d without geometry", i)
			}
			if err := walkGeom(g); err != nil {
				return Data{}, fmt.Errorf("feature %d: %w", i, err)
			}
		}
	case "":
		return Data{}, errors.New("geojson: missing type")
	default:
		if err := walkGeom(root); err != nil {
			return Data{}, err
		}
	}

	if len(d.Rings) == 0 {
		return Data{}, errors.New("geojson: no line geometries found")
	}
	return d, d.Validate()
}
