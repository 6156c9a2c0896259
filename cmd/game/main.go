package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/tatianab/zuul/internal/config"
	"github.com/tatianab/zuul/internal/console"
	"github.com/tatianab/zuul/internal/engine"
	"github.com/tatianab/zuul/internal/logger"
	"github.com/tatianab/zuul/internal/models"
	"github.com/tatianab/zuul/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	log, closer, err := logger.Setup(cfg)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := run(ctx, cfg, log); err != nil {
		logger.WithError(log, err).Error("game failed")
		fmt.Printf("Error: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	world, err := loadWorld(cfg)
	if err != nil {
		return fmt.Errorf("loading world: %w", err)
	}

	eng, err := engine.NewEngine(ctx, world, engine.Options{
		TimeLimit: cfg.TimeLimit,
		Logger:    log,
	})
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}
	defer eng.Close()

	switch cfg.UI {
	case config.UIPlain:
		return console.New(eng, os.Stdin, os.Stdout, cfg.WrapWidth, log).Run()
	default:
		return tui.Run(eng, log)
	}
}

func loadWorld(cfg *config.Config) (*models.World, error) {
	if cfg.WorldFile == "" {
		return models.DefaultWorld()
	}
	return models.LoadWorld(cfg.WorldFile)
}
