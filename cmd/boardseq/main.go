package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/boardseq/internal/adapters/driven/clipboard"
	"github.com/custodia-labs/boardseq/internal/adapters/driven/codec"
	"github.com/custodia-labs/boardseq/internal/adapters/driven/codec/tabular"
	"github.com/custodia-labs/boardseq/internal/adapters/driven/config/file"
	"github.com/custodia-labs/boardseq/internal/adapters/driving/cli"
	"github.com/custodia-labs/boardseq/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}

// buildServices wires the driven adapters into the core services.
func buildServices(configDir string) (*cli.Services, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	settings := services.NewSettingsService(store)
	boarding := services.NewBoardingService(
		tabular.NewDecoder(),
		codec.NewDefaultRegistry(),
		clipboard.New(),
	).WithSequenceReader(tabular.NewSequenceReader())

	return &cli.Services{
		Boarding: boarding,
		Intake:   services.NewIntakeService(settings),
		Settings: settings,
	}, nil
}
