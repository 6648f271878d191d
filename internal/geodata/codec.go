package geodata

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Binary layout, little-endian throughout:
//
//	magic    [4]byte  "GLBD"
//	version  uint16
//	reserved uint16
//	rings    uint32
//	per ring:
//	  points uint32
//	  per point: lat int32, lon int32 (milli-degrees)
//
// The encoding carries no floats and no maps, so identical input always
// produces byte-identical output (reproducible builds).

var (
	magic = [4]byte{'G', 'L', 'B', 'D'}

	ErrInvalidMagic       = errors.New("geodata: invalid magic: expected 'GLBD'")
	ErrUnsupportedVersion = errors.New("geodata: unsupported version")
)

const codecVersion = 1

// Encode writes the dataset in its compiled binary form.
func Encode(w io.Writer, ds Dataset) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(magic[:]); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint16(codecVersion)); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint16(0)); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(ds.Rings))); err != nil {
		return err
	}
	for i, ring := range ds.Rings {
		if err := binary.Write(bw, binary.LittleEndian, uint32(len(ring))); err != nil {
			return err
		}
		for _, p := range ring {
			lat, lon := quantize(p[0]), quantize(p[1])
			if lat < latMinQ || lat > latMaxQ || lon < lonMinQ || lon > lonMaxQ {
				return fmt.Errorf("geodata: ring %d: coordinate (%g, %g) out of range", i, p[0], p[1])
			}
			if err := binary.Write(bw, binary.LittleEndian, lat); err != nil {
				return err
			}
			if err := binary.Write(bw, binary.LittleEndian, lon); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Decode reads a dataset in its compiled binary form.
func Decode(r io.Reader) (Dataset, error) {
	br := bufio.NewReader(r)
	var m [4]byte
	if _, err := io.ReadFull(br, m[:]); err != nil {
		return Dataset{}, fmt.Errorf("geodata: reading magic: %w", err)
	}
	if m != magic {
		return Dataset{}, ErrInvalidMagic
	}
	var version, reserved uint16
	if err := binary.Read(br, binary.LittleEndian, &version); err != nil {
		return Dataset{}, err
	}
	if version != codecVersion {
		return Dataset{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	if err := binary.Read(br, binary.LittleEndian, &reserved); err != nil {
		return Dataset{}, err
	}
	var ringCount uint32
	if err := binary.Read(br, binary.LittleEndian, &ringCount); err != nil {
		return Dataset{}, err
	}
	ds := Dataset{Rings: make([]GeoRing, 0, ringCount)}
	for i := uint32(0); i < ringCount; i++ {
		var pointCount uint32
		if err := binary.Read(br, binary.LittleEndian, &pointCount); err != nil {
			return Dataset{}, fmt.Errorf("geodata: ring %d header: %w", i, err)
		}
		if pointCount == 0 {
			return Dataset{}, fmt.Errorf("geodata: ring %d is empty", i)
		}
		ring := make(GeoRing, pointCount)
		for j := range ring {
			var lat, lon int32
			if err := binary.Read(br, binary.LittleEndian, &lat); err != nil {
				return Dataset{}, fmt.Errorf("geodata: ring %d vertex %d: %w", i, j, err)
			}
			if err := binary.Read(br, binary.LittleEndian, &lon); err != nil {
				return Dataset{}, fmt.Errorf("geodata: ring %d vertex %d: %w", i, j, err)
			}
			if lat < latMinQ || lat > latMaxQ || lon < lonMinQ || lon > lonMaxQ {
				return Dataset{}, fmt.Errorf("geodata: ring %d vertex %d out of range", i, j)
			}
			ring[j] = [2]float64{dequantize(lat), dequantize(lon)}
		}
		ds.Rings = append(ds.Rings, ring)
	}
	return ds, nil
}
