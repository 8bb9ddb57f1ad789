package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/joho/godotenv"

	"github.com/mgolovko/tsekh/internal/board"
	"github.com/mgolovko/tsekh/internal/config"
	"github.com/mgolovko/tsekh/internal/localstore"
	"github.com/mgolovko/tsekh/internal/logging"
	"github.com/mgolovko/tsekh/internal/orders"
	"github.com/mgolovko/tsekh/internal/stages"
	"github.com/mgolovko/tsekh/internal/tui"
)

func main() {
	// A .env file is optional; it carries the order service credentials
	// during development.
	_ = godotenv.Load()

	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// The local store is a cache; the board still works without it.
	local, err := localstore.Open(ctx)
	if err != nil {
		slog.Warn("local store unavailable", "error", err)
		local = nil
	} else {
		defer local.Close()
	}

	store := board.NewStore()
	registry := stages.NewRegistry(store.Board)
	client := orders.NewClient(cfg.OrderService.BaseURL, cfg.OrderService.Token)
	gateway := orders.NewGateway(client, registry)

	model := tui.InitialModel(store, gateway, local, cfg)

	p := tea.NewProgram(model,
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		slog.Error("program exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
