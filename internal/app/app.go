package app

import (
	"fmt"
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/ats-adapter/internal/config"
	"github.com/honeycarbs/ats-adapter/internal/domain/ats"
	ghprovider "github.com/honeycarbs/ats-adapter/internal/domain/ats/providers/greenhouse"
	"github.com/honeycarbs/ats-adapter/internal/domain/ats/providers/mock"
	"github.com/honeycarbs/ats-adapter/internal/mcp"
	"github.com/honeycarbs/ats-adapter/internal/server"
	"github.com/honeycarbs/ats-adapter/pkg/greenhouse"
	"github.com/honeycarbs/ats-adapter/pkg/logging"
)

// App holds the process-wide singletons built once at startup
type App struct {
	Adapter *ats.Adapter
	Server  *server.Server
}

func newApp(adapter *ats.Adapter, srv *server.Server) *App {
	return &App{Adapter: adapter, Server: srv}
}

// provideMode decides Live vs Mock once, from configuration only
func provideMode(cfg config.Config) ats.Mode {
	return ats.ModeFor(cfg.ATS.APIKey)
}

// provideGreenhouseConfig extracts Harvest config from main config
func provideGreenhouseConfig(cfg config.Config) greenhouse.Config {
	return greenhouse.Config{
		APIKey:     cfg.ATS.APIKey,
		BaseURL:    cfg.ATS.BaseURL,
		OnBehalfOf: cfg.ATS.OnBehalfOf,
		Timeout:    cfg.ATS.Timeout,
	}
}

// provideProvider builds the live Harvest provider, or the mock one without touching the network
func provideProvider(cfg config.Config, mode ats.Mode, logger *logging.Logger) (ats.Provider, error) {
	switch mode {
	case ats.ModeMock:
		logger.Warn("no ATS_API_KEY configured, running in mock mode with canned data")
		return mock.NewProvider(), nil
	case ats.ModeLive:
		client, err := greenhouse.NewClient(provideGreenhouseConfig(cfg))
		if err != nil {
			return nil, err
		}
		p, err := ghprovider.NewProvider(client)
		if err != nil {
			return nil, err
		}
		logger.Info("Greenhouse provider initialized", "base_url", cfg.ATS.BaseURL, "impersonating", cfg.ATS.OnBehalfOf != "")
		return p, nil
	default:
		return nil, fmt.Errorf("unknown ATS mode %v", mode)
	}
}

// provideMCPHandler mounts the MCP server on the streamable HTTP transport
func provideMCPHandler(s *sdkmcp.Server) http.Handler {
	return mcp.NewHTTPHandler(s)
}
