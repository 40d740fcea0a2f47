package tools

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
)

const (
	DepartmentsURI       = "departments://list"
	CandidateURITemplate = "candidate://{name}"
	candidateURIPrefix   = "candidate://"
)

// ProfileDirectory is the read side of the profile store the resources expose
type ProfileDirectory interface {
	Departments() []string
	FindByName(name string) (domain.CandidateProfile, error)
}

// CandidateDetails is the body of a candidate:// resource
type CandidateDetails struct {
	Name            string   `json:"name"`
	Title           string   `json:"title"`
	Department      string   `json:"department"`
	ExperienceYears int      `json:"experience_years"`
	Skills          []string `json:"skills"`
}

type profileResources struct {
	dir ProfileDirectory
}

// WithProfileResources registers departments://list and candidate://{name}
func WithProfileResources(dir ProfileDirectory) Option {
	return func(reg *registry) {
		r := profileResources{dir: dir}
		reg.server.AddResource(&sdkmcp.Resource{
			URI:         DepartmentsURI,
			Name:        "departments",
			Description: "Departments with at least one candidate",
			MIMEType:    "application/json",
		}, r.departments)
		reg.server.AddResourceTemplate(&sdkmcp.ResourceTemplate{
			URITemplate: CandidateURITemplate,
			Name:        "candidate",
			Description: "Details of a candidate looked up by name",
			MIMEType:    "application/json",
		}, r.candidate)
	}
}

func (r profileResources) departments(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	deps := r.dir.Departments()
	if deps == nil {
		deps = []string{}
	}
	return jsonContents(req.Params.URI, deps)
}

func (r profileResources) candidate(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	uri := req.Params.URI
	name, err := url.PathUnescape(strings.TrimPrefix(uri, candidateURIPrefix))
	if err != nil || strings.TrimSpace(name) == "" {
		return nil, sdkmcp.ResourceNotFoundError(uri)
	}

	p, err := r.dir.FindByName(name)
	if err != nil {
		return nil, sdkmcp.ResourceNotFoundError(uri)
	}

	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return jsonContents(uri, CandidateDetails{
		Name:            p.Name,
		Title:           p.Title,
		Department:      p.Department,
		ExperienceYears: p.ExperienceYears,
		Skills:          skills,
	})
}

func jsonContents(uri string, v any) (*sdkmcp.ReadResourceResult, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{URI: uri, MIMEType: "application/json", Text: string(raw)},
		},
	}, nil
}
