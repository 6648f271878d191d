package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"goglobe/internal/render"
)

// canvasSize returns the map area in cells, matching the View layout
// (one header row, two footer rows).
func (m Model) canvasSize() (w, h int) {
	w = max(10, m.width)
	h = max(4, m.height-headerHeight-footerHeight)
	return w, h
}

// viewport fits the globe into the braille microgrid for a canvas of
// w x h cells. Micro-pixels are close to square (half a cell wide,
// a quarter cell tall), so a circle on the microgrid reads as a circle.
func (m Model) viewport(w, h int) render.Viewport {
	microW, microH := w*2, h*4
	r := float64(min(microW, microH)) / 2 * m.radiusScale
	return render.Viewport{
		Radius:  r,
		CenterX: float64(microW) / 2,
		CenterY: float64(microH) / 2,
	}
}

// renderGlobe draws one frame into a braille buffer and returns the
// styled cell rows.
func (m Model) renderGlobe(w, h int) string {
	br := newBrailleBuf(w, h)
	vp := m.viewport(w, h)

	// Horizon circle, always visible, dim.
	br.drawCircle(vp.CenterX, vp.CenterY, vp.Radius, true)

	if m.showGrat {
		for _, s := range render.Frame(m.grat, m.orient, vp, render.Options{}) {
			br.drawSegment(s.X1, s.Y1, s.X2, s.Y2, true)
		}
	}
	for _, s := range render.Frame(m.world, m.orient, vp, render.Options{Backside: m.showBack}) {
		br.drawSegment(s.X1, s.Y1, s.X2, s.Y2, s.Back)
	}

	// Compose rows, styling runs of equal layer together to keep the
	// ANSI overhead down.
	var out strings.Builder
	for y := 0; y < h; y++ {
		var run strings.Builder
		runDim := false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			s := run.String()
			if strings.TrimSpace(s) == "" {
				out.WriteString(s)
			} else if runDim {
				out.WriteString(backStyle.Render(s))
			} else {
				out.WriteString(coastStyle.Render(s))
			}
			run.Reset()
		}
		for x := 0; x < w; x++ {
			r, dim := br.cell(x, y)
			if run.Len() > 0 && dim != runDim {
				flush()
			}
			runDim = dim
			run.WriteRune(r)
		}
		flush()
		if y < h-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// refreshStats rebuilds the info overlay table from the current state.
func (m *Model) refreshStats() {
	w, h := m.canvasSize()
	vp := m.viewport(w, h)
	rows := []table.Row{
		{"coast rings", fmt.Sprintf("%d", len(m.world.Rings))},
		{"coast vertices", fmt.Sprintf("%d", m.world.Points())},
		{"graticule rings", fmt.Sprintf("%d", len(m.grat.Rings))},
		{"azimuth", fmt.Sprintf("%.2f°", m.orient.AzimuthDeg)},
		{"elevation", fmt.Sprintf("%.2f°", m.orient.ElevationDeg)},
		{"radius", fmt.Sprintf("%.0f micro-px", vp.Radius)},
		{"spin", fmt.Sprintf("%.1f°/s", m.cfg.Input.SpinDegPerSec)},
		{"sensitivity", fmt.Sprintf("%.2f", m.cfg.Input.Sensitivity)},
	}
	m.tbl.SetRows(rows)
	m.tbl.SetHeight(len(rows) + 1)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
