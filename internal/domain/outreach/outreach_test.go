package outreach

import (
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/llm"
)

func request() domain.ComposeRequest {
	return domain.NewComposeRequest(
		domain.JobDetails{Title: "Senior Software Engineer", Salary: "$120,000 - $150,000", Description: "Design scalable cloud services."},
		domain.Organization{Name: "TechCorp Solutions"},
		domain.CandidateRef{Name: "Alex Johnson", Email: "alex@example.com"},
	)
}

func TestTemplateComposeIsDeterministic(t *testing.T) {
	first, err := NewTemplate().Compose(context.Background(), request())
	require.NoError(t, err)
	second, err := NewTemplate().Compose(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Senior Software Engineer opportunity at TechCorp Solutions", first.Subject)
	assert.True(t, strings.HasPrefix(first.Body, "Hi Alex Johnson,"))
	assert.Contains(t, first.Body, "About the role: Design scalable cloud services.")
	assert.Contains(t, first.Body, "Compensation: $120,000 - $150,000.")
	assert.True(t, strings.HasSuffix(first.Body, Signature))
}

func TestTemplateDefaults(t *testing.T) {
	draft, err := NewTemplate().Compose(context.Background(), domain.ComposeRequest{JobTitle: "Designer"})
	require.NoError(t, err)

	assert.Equal(t, "Designer opportunity at Our company", draft.Subject)
	assert.True(t, strings.HasPrefix(draft.Body, "Hi there,"))
	assert.Contains(t, draft.Body, "Compensation: Competitive.")
	assert.NotContains(t, draft.Body, "About the role")
}

func TestSplitSubject(t *testing.T) {
	cases := []struct {
		in, subject, body string
	}{
		{"Subject: Join us\n\nHi Alex,\nBody", "Join us", "Hi Alex,\nBody"},
		{"**Subject:** Exciting role\nHello", "Exciting role", "Hello"},
		{"## SUBJECT: Hello there\nbody", "Hello there", "body"},
		{"A plain first line\nrest", "A plain first line", "rest"},
		{"Just one line without newline", "", "Just one line without newline"},
		{"", "", ""},
	}
	for _, tc := range cases {
		subject, body := SplitSubject(tc.in)
		assert.Equal(t, tc.subject, subject, tc.in)
		assert.Equal(t, tc.body, body, tc.in)
	}
}

func TestGenerativeCompose(t *testing.T) {
	var gotSystem, gotUser string
	gen := llm.GeneratorFunc(func(_ context.Context, system, user string) (string, error) {
		gotSystem, gotUser = system, user
		return "Subject: Senior Software Engineer at TechCorp\n\nHi Alex,\n...\nBest regards,\nThe MCP for Hiring Team", nil
	})

	draft, err := NewGenerative(gen).Compose(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, "Senior Software Engineer at TechCorp", draft.Subject)
	assert.True(t, strings.HasPrefix(draft.Body, "Hi Alex,"))
	assert.Contains(t, gotSystem, "professional recruiter")
	assert.Contains(t, gotUser, "Company: TechCorp Solutions")
	assert.Contains(t, gotUser, "Salary: $120,000 - $150,000")
	assert.Contains(t, gotUser, "7. End with")
}

func TestGenerativeNoNewline(t *testing.T) {
	gen := llm.GeneratorFunc(func(context.Context, string, string) (string, error) {
		return "Short note only", nil
	})

	draft, err := NewGenerative(gen).Compose(context.Background(), request())
	require.NoError(t, err)
	assert.Empty(t, draft.Subject)
	assert.Equal(t, "Short note only", draft.Body)
}

func TestGenerativeFailureIsDelegateError(t *testing.T) {
	gen := llm.GeneratorFunc(func(context.Context, string, string) (string, error) {
		return "", errors.New("503")
	})

	_, err := NewGenerative(gen).Compose(context.Background(), request())
	assert.True(t, errors.Is(err, domain.ErrDelegateUnavailable))
}

func TestServiceValidates(t *testing.T) {
	svc := NewService(NewTemplate(), nil)

	_, err := svc.Tailor(context.Background(), domain.ComposeRequest{CompanyName: "Acme"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "JobTitle")

	bad := request()
	bad.CandidateEmail = "not-an-email"
	_, err = svc.Tailor(context.Background(), bad)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	draft, err := svc.Tailor(context.Background(), request())
	require.NoError(t, err)
	assert.NotEmpty(t, draft.Subject)
}

func TestNewComposer(t *testing.T) {
	c, err := NewComposer("template", nil)
	require.NoError(t, err)
	assert.IsType(t, Template{}, c)

	_, err = NewComposer("generative", nil)
	assert.True(t, errors.Is(err, domain.ErrNotConfigured))
}
