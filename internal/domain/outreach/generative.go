package outreach

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/llm"
)

const composeSystemPrompt = "You are a professional recruiter crafting personalized outreach messages to potential candidates."

// Generative delegates the prose to the text generator
type Generative struct {
	gen llm.Generator
}

func NewGenerative(gen llm.Generator) *Generative {
	return &Generative{gen: gen}
}

func (g *Generative) Compose(ctx context.Context, req domain.ComposeRequest) (Draft, error) {
	text, err := g.gen.Generate(ctx, composeSystemPrompt, composePrompt(withDefaults(req)))
	if err != nil {
		return Draft{}, domain.DelegateFailure(err, "compose message")
	}

	subject, body := SplitSubject(text)
	return Draft{Subject: subject, Body: body}, nil
}

func composePrompt(req domain.ComposeRequest) string {
	return fmt.Sprintf(`Create a professional and engaging outreach message to a potential job candidate with the following details:

Company: %s
Position: %s
Salary: %s
Candidate: %s
Job Description: %s

The message should:
1. Be warm and professional
2. Highlight the opportunity
3. Mention the company name and role
4. Include the salary information tastefully
5. Reference the job description key points
6. End with a clear call to action
7. End with "Best regards, \nThe MCP for Hiring Team", don't include name or company name

Please format this as a complete email with subject line and body.`,
		req.CompanyName, req.JobTitle, req.Salary, req.CandidateName, req.Description)
}

var subjectLabelRe = regexp.MustCompile(`(?i)^subject\s*:\s*`)

// SplitSubject treats the first line as the subject and the rest as the body.
// Text without a newline becomes the body with an empty subject.
func SplitSubject(text string) (subject, body string) {
	text = strings.TrimSpace(text)
	first, rest, ok := strings.Cut(text, "\n")
	if !ok {
		return "", text
	}

	subject = strings.Trim(strings.TrimSpace(first), "*#_ ")
	subject = subjectLabelRe.ReplaceAllString(subject, "")
	subject = strings.Trim(subject, "*_ ")
	return subject, strings.TrimSpace(rest)
}
