package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight = 1
	footerHeight = 2
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	contentWidth := max(10, m.width)
	mapWidth, mapHeight := m.canvasSize()

	// Header
	header := titleStyle.Render(" goglobe ─ terminal globe viewer ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	// Globe viewport
	var mapView string
	if m.showStats {
		statsBox := boxStyle.Render(m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, statsBox)
	} else {
		globe := m.renderGlobe(mapWidth, mapHeight)
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(globe)
	}

	// Footer: status + help on the left, orientation readout bottom-right
	status := dimStyle.Render(" " + m.status + " ")
	helpView := ""
	if m.helpVisible {
		helpView = m.help.View(m.keys)
	}
	coords := dimStyle.Render(fmt.Sprintf("  az=%.1f° el=%.1f°  ", m.orient.AzimuthDeg, m.orient.ElevationDeg))
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, helpView)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, mapView, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}
