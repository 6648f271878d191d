package geo

import (
	"strings"
	"testing"
)

func TestParseGeoJSONLineString(t *testing.T) {
	src := `{"type":"LineString","coordinates":[[0,0],[10,5],[20,10]]}`
	d, err := ParseGeoJSON(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(d.Rings) != 1 {
		t.Fatalf("expected 1 ring, got %d", len(d.Rings))
	}
	if len(d.Rings[0]) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(d.Rings[0]))
	}
	if d.Rings[0][1] != [2]float64{10, 5} {
		t.Errorf("vertex 1: got %v", d.Rings[0][1])
	}
	want := BBox{MinX: 0, MinY: 0, MaxX: 20, MaxY: 10}
	if d.BBox != want {
		t.Errorf("bbox: got %+v want %+v", d.BBox, want)
	}
}

func TestParseGeoJSONFeatureCollection(t *testing.T) {
	src := `{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{},"geometry":{"type":"MultiLineString","coordinates":[[[0,0],[1,1]],[[2,2],[3,3]]]}},
		{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[0,0],[4,0],[4,4],[0,4],[0,0]]]}}
	]}`
	d, err := ParseGeoJSON(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(d.Rings) != 3 {
		t.Fatalf("expected 3 rings, got %d", len(d.Rings))
	}
	if len(d.Rings[2]) != 5 {
		t.Errorf("polygon ring: expected 5 vertices, got %d", len(d.Rings[2]))
	}
}

func TestParseGeoJSONRejectsPoints(t *testing.T) {
	src := `{"type":"Point","coordinates":[1,2]}`
	if _, err := ParseGeoJSON(strings.NewReader(src)); err == nil {
		t.Fatal("expected error for Point geometry")
	}
}

func TestParseGeoJSONRejectsMalformedCoordinate(t *testing.T) {
	src := `{"type":"LineString","coordinates":[[0,0],["x",1]]}`
	if _, err := ParseGeoJSON(strings.NewReader(src)); err == nil {
		t.Fatal("expected error for non-numeric coordinate")
	}
}

func TestValidateRange(t *testing.T) {
	cases := []struct {
		name string
		ring Ring
		ok   bool
	}{
		{"valid", Ring{{0, 0}, {179.9, 89.9}}, true},
		{"lon high", Ring{{180.1, 0}}, false},
		{"lon low", Ring{{-180.5, 0}}, false},
		{"lat high", Ring{{0, 90.01}}, false},
		{"lat low", Ring{{0, -91}}, false},
		{"empty", Ring{}, false},
	}
	for _, tc := range cases {
		d := Data{Rings: []Ring{tc.ring}}
		err := d.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestValidateOutOfRangeFailsParse(t *testing.T) {
	src := `{"type":"LineString","coordinates":[[0,0],[200,10]]}`
	if _, err := ParseGeoJSON(strings.NewReader(src)); err == nil {
		t.Fatal("expected out-of-range longitude to fail the parse")
	}
}
