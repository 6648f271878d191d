package tui

import "math"

// brailleBuf rasterizes line work into braille cells, 2x4 micro-pixels
// per cell. It keeps two layers: bright for front-hemisphere strokes
// and dim for back-hemisphere strokes and chrome like the horizon
// circle. Bright wins when both land in the same cell.
type brailleBuf struct {
	w, h   int       // in cells
	bright [][]uint8 // per-cell 8-bit mask
	dim    [][]uint8
}

func newBrailleBuf(w, h int) *brailleBuf {
	mk := func() [][]uint8 {
		m := make([][]uint8, h)
		for i := range m {
			m[i] = make([]uint8, w)
		}
		return m
	}
	return &brailleBuf{w: w, h: h, bright: mk(), dim: mk()}
}

// brailleBit maps a micro position within a cell to its mask bit.
func brailleBit(rx, ry int) uint8 {
	if rx == 0 {
		switch ry {
		case 0:
			return 0x01
		case 1:
			return 0x02
		case 2:
			return 0x04
		case 3:
			return 0x40
		}
	} else {
		switch ry {
		case 0:
			return 0x08
		case 1:
			return 0x10
		case 2:
			return 0x20
		case 3:
			return 0x80
		}
	}
	return 0
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, dim bool) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	if dim {
		b.dim[cy][cx] |= brailleBit(rx, ry)
	} else {
		b.bright[cy][cx] |= brailleBit(rx, ry)
	}
}

// drawSegment draws a line between two float endpoints, rounding to the
// microgrid only here, then rasterizing with Bresenham.
func (b *brailleBuf) drawSegment(x0, y0, x1, y1 float64, dim bool) {
	b.drawLineMicro(round(x0), round(y0), round(x1), round(y1), dim)
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, dim bool) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, dim)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawCircle traces a circle outline on the microgrid.
func (b *brailleBuf) drawCircle(cx, cy, r float64, dim bool) {
	if r <= 0 {
		return
	}
	// Enough samples that neighbors touch adjacent micro-pixels.
	steps := int(2 * math.Pi * r)
	if steps < 8 {
		steps = 8
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		b.setPixel(round(cx+r*math.Cos(a)), round(cy+r*math.Sin(a)), dim)
	}
}

// cell returns the rune and dimness of a cell; empty cells come back as
// a space. A cell holding both layers renders the union of the masks in
// the bright style.
func (b *brailleBuf) cell(x, y int) (rune, bool) {
	if mask := b.bright[y][x]; mask != 0 {
		return rune(0x2800 + int(mask|b.dim[y][x])), false
	}
	if mask := b.dim[y][x]; mask != 0 {
		return rune(0x2800 + int(mask)), true
	}
	return ' ', false
}

func round(v float64) int {
	return int(math.Round(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
