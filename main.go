package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/studycycle/internal/config"
	"github.com/sadopc/studycycle/internal/logger"
	"github.com/sadopc/studycycle/internal/store"
	"github.com/sadopc/studycycle/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log, closer, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	s, err := store.New(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	profile, err := s.GetProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading profile: %v\n", err)
		os.Exit(1)
	}

	engine, err := tui.LoadEngine(s, profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log.WithField("db", cfg.DBPath).Info("starting studycycle")

	app := tui.NewApp(s, engine, profile, log)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("program exited")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
