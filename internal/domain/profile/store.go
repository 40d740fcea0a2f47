package profile

import (
	"context"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/pkg/logging"
)

// Source produces candidate profiles from one backing store
type Source interface {
	Name() string
	Load(ctx context.Context) ([]domain.CandidateProfile, error)
}

// Store is the read-only in-memory profile set, loaded once at startup
type Store struct {
	profiles []domain.CandidateProfile
	byID     map[string]int
}

// NewStore loads every source in order. A failing source or an invalid record is
// logged and skipped; on duplicate ids the first profile seen wins.
func NewStore(ctx context.Context, logger *logging.Logger, sources ...Source) *Store {
	if logger == nil {
		logger = logging.NewNop()
	}

	s := &Store{byID: make(map[string]int)}

	for _, src := range sources {
		loaded, err := src.Load(ctx)
		if err != nil {
			logger.Warn("profile source failed", "source", src.Name(), "error", err)
			continue
		}

		added := 0
		for _, p := range loaded {
			if err := p.Validate(); err != nil {
				logger.Warn("skipping invalid profile", "source", src.Name(), "error", err)
				continue
			}
			if _, dup := s.byID[p.ID]; dup {
				logger.Warn("skipping duplicate profile", "source", src.Name(), "id", p.ID)
				continue
			}
			s.byID[p.ID] = len(s.profiles)
			s.profiles = append(s.profiles, p)
			added++
		}
		logger.Info("profiles loaded", "source", src.Name(), "count", added)
	}

	return s
}

// LoadAll returns the profiles in load order
func (s *Store) LoadAll() []domain.CandidateProfile {
	out := make([]domain.CandidateProfile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

func (s *Store) Len() int {
	return len(s.profiles)
}

func (s *Store) FindByID(id string) (domain.CandidateProfile, error) {
	i, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return domain.CandidateProfile{}, errors.Mark(errors.Newf("candidate %q", id), domain.ErrNotFound)
	}
	return s.profiles[i], nil
}

// FindByName looks a profile up by its display name, ignoring case
func (s *Store) FindByName(name string) (domain.CandidateProfile, error) {
	name = strings.TrimSpace(name)
	for _, p := range s.profiles {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return domain.CandidateProfile{}, errors.Mark(errors.Newf("candidate named %q", name), domain.ErrNotFound)
}

// Departments lists the distinct non-empty departments, sorted
func (s *Store) Departments() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range s.profiles {
		d := strings.TrimSpace(p.Department)
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// StaticSource serves a fixed slice; used for seeds and tests
type StaticSource struct {
	Label    string
	Profiles []domain.CandidateProfile
}

func (s StaticSource) Name() string {
	if s.Label == "" {
		return "static"
	}
	return s.Label
}

func (s StaticSource) Load(context.Context) ([]domain.CandidateProfile, error) {
	return s.Profiles, nil
}
