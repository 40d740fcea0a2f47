package file

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/domain/profile"
	"github.com/honeycarbs/hiring-mcp/pkg/logging"
)

//go:embed schema.json
var schemaJSON string

var _ profile.Source = (*Source)(nil)

// Source reads candidate documents from JSON files
type Source struct {
	dir    string
	files  []string
	schema *gojsonschema.Schema
	logger *logging.Logger
	now    func() time.Time
}

// Option configures a Source
type Option func(*Source)

// WithFiles adds explicit files, loaded after the directory
func WithFiles(paths ...string) Option {
	return func(s *Source) {
		s.files = append(s.files, paths...)
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(s *Source) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time used to derive experience years
func WithClock(now func() time.Time) Option {
	return func(s *Source) {
		s.now = now
	}
}

// NewSource builds a Source over every *.json file in dir (sorted by name); dir may be empty
func NewSource(dir string, opts ...Option) (*Source, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("compile profile schema: %w", err)
	}

	s := &Source{
		dir:    dir,
		schema: schema,
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Source) Name() string {
	return "dir"
}

// Load parses every document; unreadable or invalid files are logged and skipped
func (s *Source) Load(ctx context.Context) ([]domain.CandidateProfile, error) {
	paths, err := s.paths()
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.CandidateProfile, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p, err := s.loadFile(path)
		if err != nil {
			s.logger.Warn("skipping profile file", "file", path, "error", err)
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (s *Source) paths() ([]string, error) {
	var paths []string
	if s.dir != "" {
		info, err := os.Stat(s.dir)
		if err != nil {
			return nil, fmt.Errorf("profile dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("profile dir %s is not a directory", s.dir)
		}
		matches, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	return append(paths, s.files...), nil
}

func (s *Source) loadFile(path string) (domain.CandidateProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.CandidateProfile{}, err
	}

	res, err := s.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return domain.CandidateProfile{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return domain.CandidateProfile{}, fmt.Errorf("schema: %s", strings.Join(msgs, "; "))
	}

	p, err := Parse(raw, s.now())
	if err != nil {
		return domain.CandidateProfile{}, err
	}
	if p.ID == "" {
		p.ID = idFromPath(path)
	}
	return p, nil
}

// idFromPath maps db/p1.json to "1" and other names to their base name
func idFromPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if rest, ok := strings.CutPrefix(base, "p"); ok && rest != "" && isDigits(rest) {
		return rest
	}
	return base
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

type envelope struct {
	Data *struct {
		Person *person `json:"person"`
	} `json:"data"`
}

type person struct {
	ID             json.RawMessage `json:"id"`
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Email          string          `json:"email"`
	Headline       string          `json:"headline"`
	Location       string          `json:"location"`
	LinkedInURL    string          `json:"linkedInUrl"`
	Department     string          `json:"department"`
	Summary        string          `json:"summary"`
	ProfileSummary string          `json:"profile_summary"`
	Skills         []string        `json:"skills"`
	Positions      struct {
		PositionHistory []position `json:"positionHistory"`
	} `json:"positions"`
}

type position struct {
	Title        string `json:"title"`
	CompanyName  string `json:"companyName"`
	StartEndDate struct {
		Start *struct {
			Month int `json:"month"`
			Year  int `json:"year"`
		} `json:"start"`
	} `json:"startEndDate"`
}

// Parse decodes either the {"data":{"person":...}} envelope or a flat profile
func Parse(raw []byte, now time.Time) (domain.CandidateProfile, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return domain.CandidateProfile{}, fmt.Errorf("decode profile: %w", err)
	}
	if env.Data != nil && env.Data.Person != nil {
		return fromPerson(*env.Data.Person, now), nil
	}

	var p domain.CandidateProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.CandidateProfile{}, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}

func fromPerson(in person, now time.Time) domain.CandidateProfile {
	p := domain.CandidateProfile{
		ID:             rawID(in.ID),
		Name:           strings.TrimSpace(in.FirstName + " " + in.LastName),
		Department:     in.Department,
		Skills:         in.Skills,
		ProfileSummary: in.ProfileSummary,
		Email:          in.Email,
		Headline:       in.Headline,
		LinkedInURL:    in.LinkedInURL,
		Location:       in.Location,
	}
	if p.ProfileSummary == "" {
		p.ProfileSummary = in.Summary
	}

	history := in.Positions.PositionHistory
	if len(history) > 0 {
		p.Title = history[0].Title
	} else {
		p.Title = in.Headline
	}

	earliest := 0
	for _, pos := range history {
		if pos.StartEndDate.Start == nil || pos.StartEndDate.Start.Year == 0 {
			continue
		}
		if earliest == 0 || pos.StartEndDate.Start.Year < earliest {
			earliest = pos.StartEndDate.Start.Year
		}
	}
	if earliest > 0 && now.Year() > earliest {
		p.ExperienceYears = now.Year() - earliest
	}
	return p
}

func rawID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(raw))
}
