package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/domain/profile"

	pkgneo4j "github.com/honeycarbs/hiring-mcp/pkg/neo4j"
)

var _ profile.Source = (*CandidateSource)(nil)

// CandidateSource loads (:Candidate)-[:HAS_SKILL]->(:Skill) subgraphs as profiles
type CandidateSource struct {
	client *pkgneo4j.Client
}

func NewCandidateSource(client *pkgneo4j.Client) *CandidateSource {
	return &CandidateSource{client: client}
}

func (s *CandidateSource) Name() string {
	return "neo4j"
}

const loadCandidatesQuery = `
	MATCH (c:Candidate)
	OPTIONAL MATCH (c)-[:HAS_SKILL]->(s:Skill)
	WITH c, collect(DISTINCT s.name) AS skills
	RETURN c, skills
	ORDER BY c.id
`

func (s *CandidateSource) Load(ctx context.Context) ([]domain.CandidateProfile, error) {
	session := s.client.ReadSession(ctx)
	defer session.Close(ctx)

	out, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, loadCandidatesQuery, nil)
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}

		profiles := make([]domain.CandidateProfile, 0, len(records))
		for _, rec := range records {
			node, _, err := neo4j.GetRecordValue[neo4j.Node](rec, "c")
			if err != nil {
				continue
			}
			skills, _, _ := neo4j.GetRecordValue[[]any](rec, "skills")
			profiles = append(profiles, nodeToProfile(node, skills))
		}
		return profiles, nil
	})
	if err != nil {
		return nil, fmt.Errorf("neo4j: load candidates: %w", err)
	}
	return out.([]domain.CandidateProfile), nil
}

// SaveCandidates upserts profiles and their skill edges
func (s *CandidateSource) SaveCandidates(ctx context.Context, profiles []domain.CandidateProfile) error {
	if len(profiles) == 0 {
		return nil
	}

	rows := make([]map[string]any, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, map[string]any{
			"id":              p.ID,
			"name":            p.Name,
			"title":           p.Title,
			"department":      p.Department,
			"experienceYears": int64(p.ExperienceYears),
			"profileSummary":  p.ProfileSummary,
			"email":           p.Email,
			"skills":          p.Skills,
		})
	}

	session := s.client.WriteSession(ctx)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
			UNWIND $rows AS row
			MERGE (c:Candidate {id: row.id})
			SET c.name = row.name,
			    c.title = row.title,
			    c.department = row.department,
			    c.experienceYears = row.experienceYears,
			    c.profileSummary = row.profileSummary,
			    c.email = row.email
			WITH c, row
			FOREACH (skill IN row.skills |
				MERGE (s:Skill {name: skill})
				MERGE (c)-[:HAS_SKILL]->(s)
			)
		`, map[string]any{"rows": rows})
		if err != nil {
			return nil, err
		}
		return res.Consume(ctx)
	})
	if err != nil {
		return fmt.Errorf("neo4j: save candidates: %w", err)
	}
	return nil
}

func nodeToProfile(node neo4j.Node, skills []any) domain.CandidateProfile {
	props := node.Props
	p := domain.CandidateProfile{
		ID:             stringProp(props, "id"),
		Name:           stringProp(props, "name"),
		Title:          stringProp(props, "title"),
		Department:     stringProp(props, "department"),
		ProfileSummary: stringProp(props, "profileSummary"),
		Email:          stringProp(props, "email"),
		Headline:       stringProp(props, "headline"),
		Location:       stringProp(props, "location"),
	}
	if v, ok := props["experienceYears"].(int64); ok {
		p.ExperienceYears = int(v)
	}
	for _, s := range skills {
		if name, ok := s.(string); ok && name != "" {
			p.Skills = append(p.Skills, name)
		}
	}
	return p
}

func stringProp(props map[string]any, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}
