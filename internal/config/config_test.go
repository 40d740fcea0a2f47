package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HIRING_ENV", "test")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "7624", cfg.CandidatePort)
	assert.Equal(t, "6773", cfg.TailorPort)
	assert.Equal(t, "7253", cfg.EmailPort)
	assert.Equal(t, []string{"dir"}, cfg.Profile.Sources)
	assert.Equal(t, "db", cfg.Profile.Dir)
	assert.Equal(t, "narrative", cfg.Match.Strategy)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.Model)
	assert.Equal(t, "llama3-70b-8192", cfg.Groq.Model)
	assert.Equal(t, "Google.SendEmail@1.2.1", cfg.Arcade.ToolName)
	assert.Equal(t, 30*time.Second, cfg.DelegateTimeout)
	assert.Equal(t, 2*time.Minute, cfg.AuthTimeout)
	assert.Equal(t, "http://localhost:3000", cfg.CandidateLinkBase)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HIRING_ENV", "test")
	t.Setenv("MATCH_STRATEGY", "skills")
	t.Setenv("MATCH_REQUIRE_QUALIFIED", "true")
	t.Setenv("PROFILE_SOURCES", "dir, Seed")
	t.Setenv("DELEGATE_TIMEOUT", "5s")
	t.Setenv("ARCADE_USER_ID", "recruiter@example.com")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "skills", cfg.Match.Strategy)
	assert.True(t, cfg.Match.RequireQualified)
	assert.Equal(t, []string{"dir", "seed"}, cfg.Profile.Sources)
	assert.True(t, cfg.ProfileSourceEnabled("seed"))
	assert.Equal(t, 5*time.Second, cfg.DelegateTimeout)
	assert.Equal(t, "recruiter@example.com", cfg.Arcade.UserID)
}

func TestLoadReportsMissingVarsTogether(t *testing.T) {
	t.Setenv("HIRING_ENV", "test")
	t.Setenv("PROFILE_SOURCES", "neo4j,postgres")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NEO4J_URI, NEO4J_USERNAME, NEO4J_PASSWORD, DATABASE_URL")
}

func TestLoadRejectsUnknownStrategy(t *testing.T) {
	t.Setenv("HIRING_ENV", "test")
	t.Setenv("COMPOSE_STRATEGY", "poetry")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COMPOSE_STRATEGY")
}

func TestLoadYAMLFile(t *testing.T) {
	t.Setenv("HIRING_ENV", "test")
	path := filepath.Join(t.TempDir(), "hiring.yaml")
	require.NoError(t, os.WriteFile(path, []byte("match:\n  strategy: skills\nprofile:\n  dir: /srv/profiles\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "skills", cfg.Match.Strategy)
	assert.Equal(t, "/srv/profiles", cfg.Profile.Dir)
}
