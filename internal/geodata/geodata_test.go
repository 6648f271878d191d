package geodata

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"goglobe/internal/geo"
)

func testData() geo.Data {
	return geo.Data{Rings: []geo.Ring{
		{{0, 0}, {10.1234, 5.5678}, {20, 10}},
		{{-179.999, -89.5}, {179.999, 89.5}},
	}}
}

func TestCompileRoundTrip(t *testing.T) {
	ds, err := Compile(testData(), Options{MinSpacingDeg: -1})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, ds); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Rings) != len(ds.Rings) {
		t.Fatalf("ring count: got %d want %d", len(got.Rings), len(ds.Rings))
	}
	for i, ring := range ds.Rings {
		for j := range ring {
			if math.Abs(got.Rings[i].Lat(j)-ring.Lat(j)) > 0.0005 {
				t.Errorf("ring %d vertex %d lat: got %g want %g", i, j, got.Rings[i].Lat(j), ring.Lat(j))
			}
			if math.Abs(got.Rings[i].Lon(j)-ring.Lon(j)) > 0.0005 {
				t.Errorf("ring %d vertex %d lon: got %g want %g", i, j, got.Rings[i].Lon(j), ring.Lon(j))
			}
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	ds, err := Compile(testData(), Options{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	var a, b bytes.Buffer
	if err := Encode(&a, ds); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := Encode(&b, ds); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatal("encoding the same dataset twice produced different bytes")
	}
}

func TestCompileDecimates(t *testing.T) {
	// Vertices 0.01 degrees apart collapse under a 0.5 degree threshold.
	ring := geo.Ring{}
	for i := 0; i < 101; i++ {
		ring = append(ring, [2]float64{float64(i) * 0.01, 0})
	}
	ds, err := Compile(geo.Data{Rings: []geo.Ring{ring}}, Options{MinSpacingDeg: 0.5})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	got := len(ds.Rings[0])
	if got >= 101 {
		t.Fatalf("expected decimation, kept all %d vertices", got)
	}
	// Endpoints always survive.
	first, last := ds.Rings[0][0], ds.Rings[0][got-1]
	if first[1] != 0 || last[1] != 1.0 {
		t.Errorf("endpoints not preserved: first=%v last=%v", first, last)
	}
}

func TestCompileRejectsInvalid(t *testing.T) {
	bad := geo.Data{Rings: []geo.Ring{{{200, 10}}}}
	if _, err := Compile(bad, Options{}); err == nil {
		t.Fatal("expected out-of-range longitude to fail compilation")
	}
	empty := geo.Data{Rings: []geo.Ring{{}}}
	if _, err := Compile(empty, Options{}); err == nil {
		t.Fatal("expected empty ring to fail compilation")
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	_, err := Decode(strings.NewReader("XXXX\x01\x00\x00\x00\x00\x00\x00\x00"))
	if err != ErrInvalidMagic {
		t.Fatalf("expected ErrInvalidMagic, got %v", err)
	}
}

func TestDecodeRejectsTruncated(t *testing.T) {
	ds, _ := Compile(testData(), Options{})
	var buf bytes.Buffer
	if err := Encode(&buf, ds); err != nil {
		t.Fatalf("encode: %v", err)
	}
	raw := buf.Bytes()
	if _, err := Decode(bytes.NewReader(raw[:len(raw)-3])); err == nil {
		t.Fatal("expected truncated data to fail decoding")
	}
}

func TestWorldDataset(t *testing.T) {
	ds := World()
	if len(ds.Rings) == 0 {
		t.Fatal("embedded dataset has no rings")
	}
	if ds.Points() < len(ds.Rings) {
		t.Fatal("embedded dataset has fewer points than rings")
	}
	for i, r := range ds.Rings {
		for j := range r {
			if r.Lat(j) < -90 || r.Lat(j) > 90 || r.Lon(j) < -180 || r.Lon(j) > 180 {
				t.Fatalf("ring %d vertex %d out of range: (%g, %g)", i, j, r.Lat(j), r.Lon(j))
			}
		}
	}
}
