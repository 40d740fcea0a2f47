//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/hiring-mcp/internal/config"
	"github.com/honeycarbs/hiring-mcp/internal/domain/outreach"
	"github.com/honeycarbs/hiring-mcp/internal/domain/profile"
	"github.com/honeycarbs/hiring-mcp/pkg/logging"
)

var profileSet = wire.NewSet(
	provideProfileSources,
	provideProfileStore,
)

// InitializeProfiles loads the profile store alone
func InitializeProfiles(ctx context.Context, cfg config.Config, logger *logging.Logger) (*profile.Store, func(), error) {
	wire.Build(profileSet)
	return nil, nil, nil
}

// InitializeServices creates Services with all resources wired up
func InitializeServices(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Services, func(), error) {
	wire.Build(
		profileSet,

		// Delegates
		provideGenerator,
		provideGateway,

		// Domain services
		provideMatcher,
		provideMatchService,
		provideComposer,
		outreach.NewService,

		wire.Struct(new(Services), "*"),
	)
	return nil, nil, nil
}
