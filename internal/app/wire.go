//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/honeycarbs/ats-adapter/internal/config"
	"github.com/honeycarbs/ats-adapter/internal/domain/ats"
	"github.com/honeycarbs/ats-adapter/internal/handlers"
	"github.com/honeycarbs/ats-adapter/internal/mcp"
	"github.com/honeycarbs/ats-adapter/internal/server"
	"github.com/honeycarbs/ats-adapter/pkg/logging"
)

// InitializeApp creates the App with the adapter injected into every handler
func InitializeApp(cfg config.Config, logger *logging.Logger) (*App, error) {
	wire.Build(
		// Adapter
		provideMode,
		provideProvider,
		ats.NewAdapterWithDeps,

		// Handlers
		handlers.New,
		wire.Bind(new(handlers.JobBoard), new(*ats.Adapter)),

		// Transports
		mcp.NewServer,
		provideMCPHandler,
		server.NewServer,

		newApp,
	)

	return &App{}, nil
}
