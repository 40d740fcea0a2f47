package app

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/hiring-mcp/internal/config"
	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/pkg/logging"
)

func offlineConfig() config.Config {
	var cfg config.Config
	cfg.Profile.Sources = []string{"seed"}
	cfg.Match.Strategy = "skills"
	cfg.Compose.Strategy = "template"
	cfg.LLM.Provider = "openai"
	cfg.CandidateLinkBase = "http://localhost:3000"
	cfg.Arcade.ToolName = "Google.SendEmail@1.2.1"
	cfg.Arcade.UserID = "recruiter@example.com"
	return cfg
}

func TestInitializeServicesOffline(t *testing.T) {
	svc, cleanup, err := InitializeServices(context.Background(), offlineConfig(), logging.NewNop())
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, 2, svc.Profiles.Len())

	res, err := svc.Finder.FindCandidate(context.Background(), domain.MatchQuery{
		Department:     "Engineering",
		RequiredSkills: []string{"Python", "React"},
	})
	require.NoError(t, err)
	assert.Equal(t, "success", res.Status)
	assert.Equal(t, "http://localhost:3000/candidate/john", res.CandidateLink)

	draft, err := svc.Tailor.Tailor(context.Background(), domain.NewComposeRequest(
		domain.JobDetails{Title: "Backend Engineer"},
		domain.Organization{Name: "Acme"},
		domain.CandidateRef{Name: "John"},
	))
	require.NoError(t, err)
	assert.Contains(t, draft.Subject, "Backend Engineer")

	_, err = svc.Gateway.Send(context.Background(), domain.OutreachMessage{
		Subject: "s", Body: "b", RecipientEmail: "john@example.com",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotConfigured))
}

func TestMissingGeneratorKeySurfacesOnUse(t *testing.T) {
	cfg := offlineConfig()
	cfg.Match.Strategy = "narrative"
	cfg.Profile.Sources = []string{"seed"}

	svc, cleanup, err := InitializeServices(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	defer cleanup()

	_, err = svc.Finder.FindCandidate(context.Background(), domain.MatchQuery{SearchQuery: "python developer"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotConfigured))
	assert.Contains(t, domain.Hints(err), "set OPENAI_API_KEY")
}

func TestUnknownProfileSource(t *testing.T) {
	cfg := offlineConfig()
	cfg.Profile.Sources = []string{"ftp"}

	_, _, err := InitializeProfiles(context.Background(), cfg, logging.NewNop())
	assert.Error(t, err)
}

func TestInitializeProfilesFromDirectory(t *testing.T) {
	cfg := offlineConfig()
	cfg.Profile.Sources = []string{"dir", "seed"}
	cfg.Profile.Dir = "../../db"

	store, cleanup, err := InitializeProfiles(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, 4, store.Len())
	_, err = store.FindByID("1")
	assert.NoError(t, err)
}
