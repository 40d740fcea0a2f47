package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/domain/match"
	"github.com/honeycarbs/hiring-mcp/internal/domain/outreach"
	"github.com/honeycarbs/hiring-mcp/internal/http/handler"
	"github.com/honeycarbs/hiring-mcp/internal/http/router"
)

func post(r *gin.Engine, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		Expect(json.NewEncoder(&buf).Encode(b)).To(Succeed())
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

var _ = Describe("CandidateHandler", func() {
	var (
		r      *gin.Engine
		finder *mockFinder
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		r = gin.New()
		finder = &mockFinder{}
		r.POST("/find-candidate", handler.NewCandidateHandler(finder).Find)
	})

	It("returns the analysis and candidate link", func() {
		finder.findFn = func(_ context.Context, q domain.MatchQuery) (match.FindResult, error) {
			Expect(q.SearchQuery).To(Equal("senior go engineer"))
			return match.FindResult{
				Status:        match.StatusSuccess,
				Analysis:      "SELECTED: 1\nREASON: Go",
				CandidateLink: "http://localhost:3000/candidate/1",
				Candidate:     &domain.CandidateProfile{ID: "1", Name: "Maya", Title: "Backend Engineer"},
				Result:        domain.MatchResult{SelectedCandidateID: "1", Outcome: domain.OutcomeSelected},
			}, nil
		}

		w, resp := post(r, "/find-candidate", map[string]string{"search_query": "senior go engineer"})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(resp["status"]).To(Equal("success"))
		Expect(resp["analysis"]).To(ContainSubstring("SELECTED: 1"))
		Expect(resp["candidate_link"]).To(Equal("http://localhost:3000/candidate/1"))
		Expect(resp["candidate_name"]).To(Equal("Maya"))
		Expect(resp).NotTo(HaveKey("warning"))
	})

	It("reports not_found with a message", func() {
		finder.findFn = func(context.Context, domain.MatchQuery) (match.FindResult, error) {
			return match.FindResult{
				Status: match.StatusNotFound,
				Result: domain.MatchResult{Outcome: domain.OutcomeNoQualifiedCandidate, Gaps: []string{"Go"}},
			}, nil
		}

		w, resp := post(r, "/find-candidate", map[string]string{"search_query": "rust"})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(resp["status"]).To(Equal("not_found"))
		Expect(resp["outcome"]).To(Equal("no_qualified_candidate"))
		Expect(resp["gaps"]).To(ConsistOf("Go"))
		Expect(resp["message"]).NotTo(BeEmpty())
	})

	It("returns 400 without a query", func() {
		w, resp := post(r, "/find-candidate", map[string]string{})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(resp["detail"]).To(ContainSubstring("search_query"))
	})

	It("returns 400 on a malformed body", func() {
		w, _ := post(r, "/find-candidate", `{`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 500 with detail when profiles are missing", func() {
		finder.findFn = func(context.Context, domain.MatchQuery) (match.FindResult, error) {
			return match.FindResult{}, domain.NotConfigured("insufficient data: 1 valid candidate profiles loaded, 2 required", "")
		}

		w, resp := post(r, "/find-candidate", map[string]string{"search_query": "x"})

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(resp["detail"]).To(ContainSubstring("insufficient data"))
	})
})

var _ = Describe("MessageHandler", func() {
	var (
		r      *gin.Engine
		tailor *mockTailor
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		r = gin.New()
		tailor = &mockTailor{}
		r.POST("/tailor-message", handler.NewMessageHandler(tailor).Tailor)
	})

	It("returns subject and message", func() {
		tailor.tailorFn = func(_ context.Context, req domain.ComposeRequest) (outreach.Draft, error) {
			Expect(req.CompanyName).To(Equal("TechCorp"))
			Expect(req.Salary).To(Equal(domain.DefaultSalary))
			return outreach.Draft{Subject: "Join TechCorp", Body: "Hi Alex"}, nil
		}

		w, resp := post(r, "/tailor-message", map[string]string{
			"company_name": "TechCorp", "job_title": "SWE", "candidate_name": "Alex", "description": "cloud",
		})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(resp).To(HaveKeyWithValue("status", "success"))
		Expect(resp).To(HaveKeyWithValue("subject", "Join TechCorp"))
		Expect(resp).To(HaveKeyWithValue("message", "Hi Alex"))
	})

	It("returns 400 when the job title is missing", func() {
		w, _ := post(r, "/tailor-message", map[string]string{"company_name": "TechCorp"})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 500 when the generator is down", func() {
		tailor.tailorFn = func(context.Context, domain.ComposeRequest) (outreach.Draft, error) {
			return outreach.Draft{}, domain.DelegateFailure(errors.New("timeout"), "compose message")
		}

		w, resp := post(r, "/tailor-message", map[string]string{"job_title": "SWE"})

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(resp["detail"]).To(Equal("compose message: timeout"))
	})
})

var _ = Describe("EmailHandler", func() {
	var (
		r      *gin.Engine
		sender *mockSender
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		r = gin.New()
		sender = &mockSender{}
		r.POST("/send-email", handler.NewEmailHandler(sender).Send)
	})

	It("sends and echoes the provider result", func() {
		sender.sendFn = func(_ context.Context, msg domain.OutreachMessage) (domain.DeliveryReceipt, error) {
			Expect(msg.RecipientEmail).To(Equal("alex@example.com"))
			return domain.DeliveryReceipt{Status: "success", ProviderResult: map[string]any{"id": "m-1"}}, nil
		}

		w, resp := post(r, "/send-email", map[string]string{"subject": "Hi", "body": "Hello", "recipient": "alex@example.com"})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(resp["message"]).To(Equal("Email sent successfully"))
		Expect(resp["result"]).To(HaveKeyWithValue("id", "m-1"))
	})

	It("rejects an invalid recipient before sending", func() {
		sender.sendFn = func(context.Context, domain.OutreachMessage) (domain.DeliveryReceipt, error) {
			Fail("send must not be called")
			return domain.DeliveryReceipt{}, nil
		}

		w, _ := post(r, "/send-email", map[string]string{"subject": "Hi", "body": "Hello", "recipient": "nope"})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("includes the authorization link when the handshake is incomplete", func() {
		sender.sendFn = func(context.Context, domain.OutreachMessage) (domain.DeliveryReceipt, error) {
			err := errors.Mark(errors.New("mail provider authorization timed out"), domain.ErrAuthorizationIncomplete)
			return domain.DeliveryReceipt{}, errors.WithHint(err, "authorize the mail account at https://auth.example/x")
		}

		w, resp := post(r, "/send-email", map[string]string{"subject": "Hi", "body": "Hello", "recipient": "alex@example.com"})

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(resp["detail"]).To(HavePrefix("Failed to send email: "))
		Expect(resp["detail"]).To(ContainSubstring("https://auth.example/x"))
	})
})

var _ = Describe("Router", func() {
	It("serves health and schemas for mounted endpoints only", func() {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		router.SetupRoutes(r, router.Handlers{Email: handler.NewEmailHandler(&mockSender{})})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		Expect(w.Code).To(Equal(http.StatusOK))

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schema", nil))
		Expect(w.Code).To(Equal(http.StatusOK))

		var schemas map[string]map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &schemas)).To(Succeed())
		Expect(schemas).To(HaveKey("send_email_request"))
		Expect(schemas).NotTo(HaveKey("find_candidate_request"))
		Expect(schemas["send_email_request"]["required"]).To(ContainElement("recipient"))

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/find-candidate", nil))
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
