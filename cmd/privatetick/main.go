package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/privatetick/privatetick/internal/app"
	"github.com/privatetick/privatetick/internal/config"
	"github.com/privatetick/privatetick/internal/state"
	"github.com/privatetick/privatetick/internal/store"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	s, err := store.NewSQLiteStore(cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	st, err := state.Load(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading data: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		app.New(st, s, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
