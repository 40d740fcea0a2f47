package outreach

import (
	"bytes"
	"context"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
)

var (
	subjectTmpl = template.Must(template.New("subject").Parse(
		`{{.JobTitle}} opportunity at {{.CompanyName}}`))

	bodyTmpl = template.Must(template.New("body").Parse(`Hi {{.CandidateName}},

I'm reaching out from {{.CompanyName}} because your background stood out to us for our {{.JobTitle}} role.
{{if .Description}}
About the role: {{.Description}}
{{end}}
Compensation: {{.Salary}}.

If this sounds interesting, reply to this email and we'll set up a short call to talk through the details.

{{.Signature}}`))
)

// Template fills a fixed narrative; it never calls out
type Template struct{}

func NewTemplate() Template {
	return Template{}
}

func (Template) Compose(_ context.Context, req domain.ComposeRequest) (Draft, error) {
	data := struct {
		domain.ComposeRequest
		Signature string
	}{withDefaults(req), Signature}

	var subject, body bytes.Buffer
	if err := subjectTmpl.Execute(&subject, data); err != nil {
		return Draft{}, errors.Wrap(err, "render subject")
	}
	if err := bodyTmpl.Execute(&body, data); err != nil {
		return Draft{}, errors.Wrap(err, "render body")
	}

	return Draft{
		Subject: strings.TrimSpace(subject.String()),
		Body:    strings.TrimSpace(body.String()),
	}, nil
}
