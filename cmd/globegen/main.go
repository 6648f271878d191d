// Command globegen compiles raw geographic vector data into the compact
// binary dataset embedded in the viewer. It runs at build time only:
//
//	globegen -in data/world-coastline.geojson -out internal/geodata/world.bin
//
// Malformed input aborts the build with a descriptive error; bad
// geodata never ships silently.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"goglobe/internal/geo"
	"goglobe/internal/geodata"
	"goglobe/internal/logger"
)

func main() {
	var in, out string
	var spacing float64
	var level string
	flag.StringVar(&in, "in", "", "Input GeoJSON file (required).")
	flag.StringVar(&out, "out", "world.bin", "Output compiled dataset file.")
	flag.Float64Var(&spacing, "spacing", geodata.DefaultMinSpacingDeg,
		"Vertex decimation threshold in degrees (negative disables).")
	flag.StringVar(&level, "log-level", "info", "Log level: debug, info, warn, error.")
	flag.Parse()

	logger.InitConsole(level)
	defer logger.Sync()

	if in == "" {
		fmt.Fprintln(os.Stderr, "globegen: -in is required")
		flag.Usage()
		os.Exit(2)
	}

	src, err := geo.LoadGeoJSON(in)
	if err != nil {
		logger.Log.Fatal("parsing input", zap.String("path", in), zap.Error(err))
	}
	logger.Log.Info("parsed source",
		zap.String("path", in),
		zap.Int("rings", len(src.Rings)))

	ds, err := geodata.Compile(src, geodata.Options{MinSpacingDeg: spacing})
	if err != nil {
		logger.Log.Fatal("compiling dataset", zap.Error(err))
	}

	f, err := os.Create(out)
	if err != nil {
		logger.Log.Fatal("creating output", zap.String("path", out), zap.Error(err))
	}
	if err := geodata.Encode(f, ds); err != nil {
		f.Close()
		logger.Log.Fatal("encoding dataset", zap.Error(err))
	}
	if err := f.Close(); err != nil {
		logger.Log.Fatal("closing output", zap.Error(err))
	}

	var size int64
	if info, err := os.Stat(out); err == nil {
		size = info.Size()
	}
	logger.Log.Info("compiled dataset written",
		zap.String("path", out),
		zap.Int("rings", len(ds.Rings)),
		zap.Int("points", ds.Points()),
		zap.Int64("bytes", size))
}
