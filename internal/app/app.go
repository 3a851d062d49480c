// Package app assembles the components the roll CLI needs for one invocation.
package app

import (
	"io"

	"go.uber.org/zap"

	"github.com/cory-johannsen/roll/internal/config"
	"github.com/cory-johannsen/roll/internal/dice"
	"github.com/cory-johannsen/roll/internal/observability"
	"github.com/cory-johannsen/roll/internal/render"
)

// App bundles the logger, roller, and output format for the CLI.
type App struct {
	Logger *zap.Logger
	Roller *dice.Roller
	Format render.Format
}

// New constructs an App from its parts.
func New(logger *zap.Logger, roller *dice.Roller, format render.Format) *App {
	return &App{Logger: logger, Roller: roller, Format: format}
}

// Run rolls notation and writes the result to w. An invalid notation is
// reported on w as "Error: <message>" and is not returned; only write
// failures are.
func (a *App) Run(w io.Writer, notation string) error {
	result, err := a.Roller.RollExpr(notation)
	if err != nil {
		return render.WriteError(w, err)
	}
	return render.Write(w, a.Format, result)
}

func provideLoggingConfig(cfg config.Config) config.LoggingConfig {
	return cfg.Logging
}

func provideLogger(cfg config.LoggingConfig) (*zap.Logger, func(), error) {
	logger, err := observability.NewLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func provideSource(cfg config.Config) dice.Source {
	if cfg.Dice.Source == "seeded" {
		return dice.NewSeededSource(cfg.Dice.Seed)
	}
	return dice.NewCryptoSource()
}

func provideFormat(cfg config.Config) (render.Format, error) {
	return render.ParseFormat(cfg.Output.Format)
}
