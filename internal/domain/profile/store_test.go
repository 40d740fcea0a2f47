package profile

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/pkg/logging"
)

type failingSource struct{}

func (failingSource) Name() string { return "broken" }

func (failingSource) Load(context.Context) ([]domain.CandidateProfile, error) {
	return nil, errors.New("disk on fire")
}

func john() domain.CandidateProfile {
	return domain.CandidateProfile{ID: "1", Name: "John", Title: "Software Developer", Department: "Engineering", Skills: []string{"Python"}}
}

func anna() domain.CandidateProfile {
	return domain.CandidateProfile{ID: "2", Name: "Anna", Title: "Marketing Specialist", Department: "Marketing", Skills: []string{"SEO"}}
}

func TestStoreKeepsLoadOrderAndSkipsBadRecords(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := logging.FromZap(zap.New(core))

	store := NewStore(context.Background(), logger,
		StaticSource{Profiles: []domain.CandidateProfile{john(), {ID: "", Name: "ghost"}}},
		failingSource{},
		StaticSource{Profiles: []domain.CandidateProfile{anna(), {ID: "1", Name: "John Duplicate"}}},
	)

	all := store.LoadAll()
	require.Len(t, all, 2)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "John", all[0].Name, "first id wins")
	assert.Equal(t, "2", all[1].ID)

	assert.Equal(t, 1, logs.FilterMessage("profile source failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("skipping invalid profile").Len())
	assert.Equal(t, 1, logs.FilterMessage("skipping duplicate profile").Len())
}

func TestStoreLookups(t *testing.T) {
	store := NewStore(context.Background(), nil, StaticSource{Profiles: []domain.CandidateProfile{john(), anna()}})

	p, err := store.FindByID("2")
	require.NoError(t, err)
	assert.Equal(t, "Anna", p.Name)

	p, err = store.FindByName("jOhN")
	require.NoError(t, err)
	assert.Equal(t, "1", p.ID)

	_, err = store.FindByID("42")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = store.FindByName("Nobody")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	assert.Equal(t, []string{"Engineering", "Marketing"}, store.Departments())
}

func TestLoadAllReturnsCopy(t *testing.T) {
	store := NewStore(context.Background(), nil, StaticSource{Profiles: []domain.CandidateProfile{john()}})

	all := store.LoadAll()
	all[0].Name = "Mallory"

	assert.Equal(t, "John", store.LoadAll()[0].Name)
}
