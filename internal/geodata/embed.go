package geodata

import (
	"bytes"
	"sync"

	_ "embed"
)

//go:generate go run goglobe/cmd/globegen -in ../../data/world-coastline.geojson -out world.bin

//go:embed world.bin
var worldBin []byte

var worldOnce = sync.OnceValue(func() Dataset {
	ds, err := Decode(bytes.NewReader(worldBin))
	if err != nil {
		// The blob is produced by globegen and checked in; failing to
		// decode it means the build itself is broken.
		panic("geodata: embedded world dataset is corrupt: " + err.Error())
	}
	return ds
})

// World returns the embedded compiled coastline dataset. It is decoded
// once and never mutated; callers share the same backing slices.
func World() Dataset {
	return worldOnce()
}
