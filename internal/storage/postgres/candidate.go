// Package postgres loads candidate profiles from a PostgreSQL candidates table.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/domain/profile"
)

var _ profile.Source = (*CandidateSource)(nil)

// Schema creates the table the source reads from
const Schema = `
CREATE TABLE IF NOT EXISTS candidates (
	id               TEXT PRIMARY KEY,
	name             TEXT NOT NULL,
	title            TEXT NOT NULL DEFAULT '',
	department       TEXT NOT NULL DEFAULT '',
	skills           TEXT[] NOT NULL DEFAULT '{}',
	experience_years INTEGER NOT NULL DEFAULT 0 CHECK (experience_years >= 0),
	profile_summary  TEXT NOT NULL DEFAULT '',
	email            TEXT,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// CandidateSource wraps a PostgreSQL connection pool
type CandidateSource struct {
	pool *pgxpool.Pool
}

// Connect establishes a pool and verifies it with a ping
func Connect(ctx context.Context, databaseURL string) (*CandidateSource, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &CandidateSource{pool: pool}, nil
}

func (s *CandidateSource) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *CandidateSource) Name() string {
	return "postgres"
}

// EnsureSchema creates the candidates table when missing
func (s *CandidateSource) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create candidates table: %w", err)
	}
	return nil
}

type candidateRow struct {
	ID              string   `db:"id"`
	Name            string   `db:"name"`
	Title           string   `db:"title"`
	Department      string   `db:"department"`
	Skills          []string `db:"skills"`
	ExperienceYears int32    `db:"experience_years"`
	ProfileSummary  string   `db:"profile_summary"`
	Email           *string  `db:"email"`
}

func (r candidateRow) toProfile() domain.CandidateProfile {
	p := domain.CandidateProfile{
		ID:              r.ID,
		Name:            r.Name,
		Title:           r.Title,
		Department:      r.Department,
		Skills:          r.Skills,
		ExperienceYears: int(r.ExperienceYears),
		ProfileSummary:  r.ProfileSummary,
	}
	if r.Email != nil {
		p.Email = *r.Email
	}
	return p
}

// Load returns every candidate ordered by creation time, then id
func (s *CandidateSource) Load(ctx context.Context) ([]domain.CandidateProfile, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, title, department, skills, experience_years, profile_summary, email
		 FROM candidates
		 ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[candidateRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan candidates: %w", err)
	}

	profiles := make([]domain.CandidateProfile, 0, len(records))
	for _, r := range records {
		profiles = append(profiles, r.toProfile())
	}
	return profiles, nil
}

// UpsertCandidate inserts or replaces one profile
func (s *CandidateSource) UpsertCandidate(ctx context.Context, p domain.CandidateProfile) error {
	var email *string
	if p.Email != "" {
		email = &p.Email
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO candidates (id, name, title, department, skills, experience_years, profile_summary, email)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE SET
		   name = $2, title = $3, department = $4, skills = $5,
		   experience_years = $6, profile_summary = $7, email = $8`,
		p.ID, p.Name, p.Title, p.Department, p.Skills, p.ExperienceYears, p.ProfileSummary, email,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert candidate %s: %w", p.ID, err)
	}
	return nil
}
