//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/cory-johannsen/roll/internal/config"
	"github.com/cory-johannsen/roll/internal/dice"
)

// ProviderSet builds an App from a config.Config.
var ProviderSet = wire.NewSet(
	provideLoggingConfig,
	provideLogger,
	provideSource,
	provideFormat,
	dice.NewLoggedRoller,
	New,
)

// InitializeApp wires an App for cfg. The returned cleanup flushes the logger.
func InitializeApp(cfg config.Config) (*App, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}
