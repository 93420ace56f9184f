package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/SscSPs/mma_web/internal/adapters/backend"
	"github.com/SscSPs/mma_web/internal/adapters/localstore"
	"github.com/SscSPs/mma_web/internal/cli"
	portsrepo "github.com/SscSPs/mma_web/internal/core/ports/repositories"
	"github.com/SscSPs/mma_web/internal/core/services"
	"github.com/SscSPs/mma_web/internal/platform/config"
	"github.com/SscSPs/mma_web/internal/utils"
	"github.com/SscSPs/mma_web/internal/utils/accounting"
	"github.com/charmbracelet/lipgloss"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})

func main() {
	// services log through slog; keep the terminal quiet unless something goes wrong
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	store, err := localstore.Open(cfg.DraftDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	kinds, err := accounting.LoadKinds(cfg.EntryKindsFile)
	if err != nil {
		return err
	}
	cipher, err := utils.NewTokenCipher(cfg.SessionEncryptionKey)
	if err != nil {
		return err
	}
	backendClient, err := backend.NewClient(backend.Config{
		BaseURL:            cfg.BackendBaseURL,
		Timeout:            cfg.BackendTimeout,
		BreakerMaxFailures: cfg.BackendBreakerMaxFailures,
		BreakerTimeout:     cfg.BackendBreakerTimeout,
		Logger:             logger,
	})
	if err != nil {
		return err
	}

	repos := portsrepo.RepositoryProvider{SessionRepo: store, DraftRepo: store}
	app := &cli.App{
		Services: services.NewServiceContainer(cfg, repos, backendClient, cipher, kinds, nil),
		Current:  store,
		Out:      os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return cli.NewRootCommand(app).ExecuteContext(ctx)
}
