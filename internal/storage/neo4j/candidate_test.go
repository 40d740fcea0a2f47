package neo4j

import (
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
)

func TestNodeToProfile(t *testing.T) {
	node := neo4j.Node{
		Labels: []string{"Candidate"},
		Props: map[string]any{
			"id":              "c-7",
			"name":            "Maya Okafor",
			"title":           "Backend Engineer",
			"department":      "Engineering",
			"experienceYears": int64(8),
			"profileSummary":  "Go services",
		},
	}

	p := nodeToProfile(node, []any{"Go", nil, "", "Kubernetes"})

	assert.Equal(t, "c-7", p.ID)
	assert.Equal(t, "Maya Okafor", p.Name)
	assert.Equal(t, 8, p.ExperienceYears)
	assert.Equal(t, []string{"Go", "Kubernetes"}, p.Skills)
	assert.Empty(t, p.Email)
}
