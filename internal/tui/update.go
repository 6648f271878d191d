package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"goglobe/internal/sphere"
)

// rotateStepDeg is the per-keypress rotation for the arrow keys.
const rotateStepDeg = 5

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Rotate):
			switch msg.String() {
			case "left":
				m.orient = m.orient.Rotate(-rotateStepDeg, 0)
			case "right":
				m.orient = m.orient.Rotate(rotateStepDeg, 0)
			case "up":
				m.orient = m.orient.Rotate(0, -rotateStepDeg)
			case "down":
				m.orient = m.orient.Rotate(0, rotateStepDeg)
			}
			m.status = m.orientStatus()
		case key.Matches(msg, m.keys.Zoom):
			switch msg.String() {
			case "+", "=":
				if m.radiusScale < 1.0 {
					m.radiusScale = minf(1.0, m.radiusScale*1.1)
				}
			case "-", "_":
				if m.radiusScale > 0.2 {
					m.radiusScale /= 1.1
				}
			}
			m.status = fmt.Sprintf("radius: %.0f%%", m.radiusScale*100)
		case key.Matches(msg, m.keys.Backside):
			m.showBack = !m.showBack
			m.status = fmt.Sprintf("backside: %v", m.showBack)
		case key.Matches(msg, m.keys.Graticule):
			m.showGrat = !m.showGrat
			m.status = fmt.Sprintf("graticule: %v", m.showGrat)
		case key.Matches(msg, m.keys.Spin):
			m.spinning = !m.spinning
			m.status = fmt.Sprintf("spin: %v", m.spinning)
			if m.spinning && !m.ticking {
				m.ticking = true
				return m, tick()
			}
		case key.Matches(msg, m.keys.Stats):
			m.showStats = !m.showStats
			if m.showStats {
				m.refreshStats()
			}
		case key.Matches(msg, m.keys.Reset):
			m.orient = sphere.Orientation{}
			m.radiusScale = m.cfg.View.RadiusScale
			m.status = "view reset"
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
			m.help.ShowAll = false
		}

	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.dragging = true
				m.dragX, m.dragY = msg.X, msg.Y
			}
		case tea.MouseActionMotion:
			if m.dragging {
				m = m.dragTo(msg.X, msg.Y)
			}
		case tea.MouseActionRelease:
			if m.dragging {
				m = m.dragTo(msg.X, msg.Y)
				m.dragging = false
			}
		}

	case tickMsg:
		if !m.spinning {
			// Spin was switched off; let the loop die here.
			m.ticking = false
			return m, nil
		}
		if !m.dragging {
			m.orient = m.orient.Rotate(m.cfg.Input.SpinDegPerSec/frameRate, 0)
		}
		return m, tick()
	}
	return m, nil
}

// dragTo applies the rotation for a pointer move to (x, y) in cell
// coordinates and advances the drag reference position.
func (m Model) dragTo(x, y int) Model {
	vp := m.viewport(m.canvasSize())
	// Cells are 2x4 micro-pixels; deltas scale accordingly.
	dxMic := float64((x - m.dragX) * 2)
	dyMic := float64((y - m.dragY) * 4)
	dAz, dEl := DragRotation(dxMic, dyMic, anglePerPixel(m.cfg.Input.Sensitivity, vp.Radius))
	m.orient = m.orient.Rotate(dAz, dEl)
	m.dragX, m.dragY = x, y
	m.status = m.orientStatus()
	return m
}

func (m Model) orientStatus() string {
	return fmt.Sprintf("az=%.1f° el=%.1f°", m.orient.AzimuthDeg, m.orient.ElevationDeg)
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
