// Package main boots the interactive Catalog Cart Simulator.
package main

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/fairyhunter13/catalog-cart-simulator/internal/config"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/obs"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/seed"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/session"
)

func main() {
	cfg, envErr := config.LoadWithDotenv()
	obs.InitLogger(cfg)
	defer obs.Sync()
	if envErr != nil {
		obs.Logger.Warn("dotenv_load_error", zap.Error(envErr))
	}
	obs.Logger.Info("simulator_starting", zap.String("seed", cfg.Seed))

	// The session blocks on stdin, so SIGINT keeps its default behaviour and
	// terminates the process.
	if err := run(context.Background(), cfg, os.Stdin, os.Stdout); err != nil {
		obs.Logger.Error("simulator_error", zap.Error(err))
		obs.Sync()
		os.Exit(1)
	}
	obs.Logger.Info("simulator_stopped")
}

func run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	cat, err := seed.Load(cfg)
	if err != nil {
		return err
	}
	obs.Logger.Info("catalog_seeded",
		zap.Int("basic", cat.Basic.Len()),
		zap.Int("electronic", cat.Electronic.Len()),
	)
	return session.New(cat, in, out, session.WithPricePlaces(cfg.PricePlaces)).Run(ctx)
}
