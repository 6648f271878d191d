package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"goglobe/internal/config"
	"goglobe/internal/geodata"
	"goglobe/internal/logger"
	"goglobe/internal/tui"
)

func main() {
	var configPath, logPath string
	flag.StringVar(&configPath, "config", "", "Path to a goglobe.yaml config file.")
	flag.StringVar(&logPath, "log", "", "Log file path (overrides config; stdout belongs to the TUI).")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logPath == "" {
		logPath = cfg.Logging.File
	}
	logger.InitFile(cfg.Logging.Level, logPath)
	defer logger.Sync()

	world := geodata.World()
	logger.Log.Info("dataset loaded",
		zap.Int("rings", len(world.Rings)),
		zap.Int("points", world.Points()))

	p := tea.NewProgram(tui.New(cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		logger.Log.Error("tui terminated", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
