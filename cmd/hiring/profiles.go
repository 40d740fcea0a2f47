package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/storage/file"
	"github.com/honeycarbs/hiring-mcp/internal/storage/postgres"
	"github.com/honeycarbs/hiring-mcp/pkg/logging"
)

var importProfilesCmd = &cobra.Command{
	Use:   "import-profiles",
	Short: "Copy profile documents into PostgreSQL",
	Long:  "Read every profile document in PROFILE_DIR and upsert it into the candidates table at DATABASE_URL, so the postgres profile source can serve it.",
	Args:  cobra.NoArgs,
	RunE:  runImportProfiles,
}

func init() {
	rootCmd.AddCommand(importProfilesCmd)
}

type profileWriter interface {
	UpsertCandidate(ctx context.Context, p domain.CandidateProfile) error
}

func runImportProfiles(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, logger, done, err := bootstrap(ctx, "import")
	if err != nil {
		return err
	}
	defer done()

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	src, err := file.NewSource(cfg.Profile.Dir, file.WithLogger(logger.Named("profiles")))
	if err != nil {
		return err
	}
	profiles, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	db, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}

	n, err := importProfiles(ctx, db, profiles, logger)
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d profiles\n", n, len(profiles))
	return err
}

// importProfiles writes valid profiles and stops at the first database error
func importProfiles(ctx context.Context, w profileWriter, profiles []domain.CandidateProfile, logger *logging.Logger) (int, error) {
	written := 0
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			logger.Warn("skipping invalid profile", "id", p.ID, "error", err)
			continue
		}
		if err := w.UpsertCandidate(ctx, p); err != nil {
			return written, err
		}
		written++
	}
	logger.Info("profiles imported", "count", written)
	return written, nil
}
