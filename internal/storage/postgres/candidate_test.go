package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
)

func TestRowToProfile(t *testing.T) {
	email := "anna@example.com"
	row := candidateRow{ID: "2", Name: "Anna", Department: "Marketing", Skills: []string{"SEO"}, ExperienceYears: 3, Email: &email}

	p := row.toProfile()
	assert.Equal(t, "anna@example.com", p.Email)
	assert.Equal(t, 3, p.ExperienceYears)

	row.Email = nil
	assert.Empty(t, row.toProfile().Email)
}

// Runs against a real database when TEST_DATABASE_URL is set
func TestCandidateSourceRoundTrip(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	src, err := Connect(ctx, url)
	require.NoError(t, err)
	defer src.Close()
	require.NoError(t, src.EnsureSchema(ctx))

	want := domain.CandidateProfile{ID: "it-1", Name: "Maya", Department: "Engineering", Skills: []string{"Go"}, ExperienceYears: 8}
	require.NoError(t, src.UpsertCandidate(ctx, want))

	got, err := src.Load(ctx)
	require.NoError(t, err)

	var found bool
	for _, p := range got {
		if p.ID == want.ID {
			found = true
			assert.Equal(t, want.Skills, p.Skills)
		}
	}
	assert.True(t, found)
}
