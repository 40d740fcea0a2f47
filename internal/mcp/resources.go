package mcp

import (
	"context"

	"github.com/honeycarbs/hiring-mcp/internal/app"
	"github.com/honeycarbs/hiring-mcp/internal/config"
	"github.com/honeycarbs/hiring-mcp/internal/domain/profile"
	"github.com/honeycarbs/hiring-mcp/internal/mcp/tools"
	"github.com/honeycarbs/hiring-mcp/pkg/hiringapi"
	"github.com/honeycarbs/hiring-mcp/pkg/logging"
	sheetsclient "github.com/honeycarbs/hiring-mcp/pkg/sheets"
)

// Resources are the dependencies of the registered tools
type Resources struct {
	Profiles *profile.Store
	Backend  Backend
	Exporter tools.ShortlistExporter
}

// InitializeResources builds the backend selected by TOOLS_BACKEND; the local
// backend reuses the in-process services, the remote one calls the HTTP services
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, func(), error) {
	res := &Resources{}
	cleanup := func() {}

	switch cfg.Tools.Backend {
	case "remote":
		store, storeCleanup, err := app.InitializeProfiles(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		client, err := hiringapi.NewClient(hiringapi.Config{
			CandidateURL: cfg.CandidateServiceURL,
			TailorURL:    cfg.TailorServiceURL,
			EmailURL:     cfg.EmailServiceURL,
			LinkBase:     cfg.CandidateLinkBase,
		})
		if err != nil {
			storeCleanup()
			return nil, nil, err
		}
		res.Profiles = store
		res.Backend = NewRemoteBackend(client)
		cleanup = storeCleanup
		logger.Info("remote tool backend initialized", "candidate_service", cfg.CandidateServiceURL)
	default:
		svc, svcCleanup, err := app.InitializeServices(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		res.Profiles = svc.Profiles
		res.Backend = NewLocalBackend(svc.Finder, svc.Tailor, svc.Gateway)
		cleanup = svcCleanup
		logger.Info("local tool backend initialized", "profiles", svc.Profiles.Len())
	}

	exporter := &shortlistExporter{profiles: res.Profiles, linkBase: cfg.CandidateLinkBase}
	res.Exporter = exporter
	if cfg.SheetsCredentialsPath != "" {
		client, err := sheetsclient.NewClient(ctx, sheetsclient.Config{CredentialsPath: cfg.SheetsCredentialsPath})
		if err != nil {
			logger.Warn("failed to initialize Google Sheets client", "err", err)
		} else {
			exporter.client = client
			logger.Info("Google Sheets client initialized")
		}
	}

	return res, cleanup, nil
}
