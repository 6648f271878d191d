package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"goglobe/internal/config"
	"goglobe/internal/geodata"
	"goglobe/internal/sphere"
)

// frameRate drives the idle-spin redraw loop.
const frameRate = 30

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type Model struct {
	width  int
	height int

	cfg *config.Config

	// Compiled data, immutable for the life of the process.
	world geodata.Dataset
	grat  geodata.Dataset

	// The only mutable rendering state.
	orient      sphere.Orientation
	radiusScale float64

	// Drag state: reference cell position while the button is down.
	dragging bool
	dragX    int
	dragY    int

	// Idle spin.
	spinning bool
	ticking  bool

	showBack  bool
	showGrat  bool
	showStats bool

	status      string
	helpVisible bool
	keys        keyMap
	help        help.Model
	tbl         table.Model
}

func New(cfg *config.Config) Model {
	m := Model{
		cfg:         cfg,
		world:       geodata.World(),
		grat:        geodata.Graticule(cfg.View.GraticuleSpacingDeg, 5),
		radiusScale: cfg.View.RadiusScale,
		spinning:    cfg.Input.SpinDegPerSec != 0,
		ticking:     cfg.Input.SpinDegPerSec != 0,
		showBack:    cfg.View.Backside,
		showGrat:    cfg.View.Graticule,
		status:      "goglobe ready ─ drag to rotate",
		helpVisible: true,
		keys:        defaultKeyMap(),
		help:        help.New(),
	}
	m.tbl = table.New(
		table.WithColumns([]table.Column{
			{Title: "field", Width: 16},
			{Title: "value", Width: 22},
		}),
		table.WithFocused(false),
	)
	return m
}

func (m Model) Init() tea.Cmd {
	if m.spinning {
		return tick()
	}
	return nil
}
