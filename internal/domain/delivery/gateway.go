// Package delivery sends composed messages through the mail provider.
package delivery

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/singleflight"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/pkg/logging"
	"github.com/honeycarbs/hiring-mcp/pkg/telemetry"
)

const (
	DefaultToolName        = "Google.SendEmail@1.2.1"
	defaultAuthTimeout     = 2 * time.Minute
	defaultDelegateTimeout = 30 * time.Second

	handshakeKey = "authorize"
)

// Gateway performs the provider handshake once per process and then sends mail
type Gateway struct {
	provider        MailProvider
	userID          string
	toolName        string
	authTimeout     time.Duration
	delegateTimeout time.Duration
	onAuthURL       func(url string)
	logger          *logging.Logger
	validate        *validator.Validate

	// one handshake in flight; every concurrent sender waits on its result
	flight     singleflight.Group
	authorized atomic.Bool
}

// Option configures Gateway
type Option func(*Gateway)

func WithToolName(name string) Option {
	return func(g *Gateway) {
		if name != "" {
			g.toolName = name
		}
	}
}

// WithAuthTimeout bounds how long a pending authorization is waited for
func WithAuthTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		if d > 0 {
			g.authTimeout = d
		}
	}
}

// WithDelegateTimeout bounds each Authorize and Execute call
func WithDelegateTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		if d > 0 {
			g.delegateTimeout = d
		}
	}
}

// WithAuthorizationURLHook is called with the URL the user must visit while authorization is pending
func WithAuthorizationURLHook(fn func(url string)) Option {
	return func(g *Gateway) {
		g.onAuthURL = fn
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(g *Gateway) {
		if logger != nil {
			g.logger = logger
		}
	}
}

func NewGateway(provider MailProvider, userID string, opts ...Option) *Gateway {
	g := &Gateway{
		provider:        provider,
		userID:          strings.TrimSpace(userID),
		toolName:        DefaultToolName,
		authTimeout:     defaultAuthTimeout,
		delegateTimeout: defaultDelegateTimeout,
		logger:          logging.NewNop(),
		validate:        validator.New(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Send authorizes if needed and delivers msg
func (g *Gateway) Send(ctx context.Context, msg domain.OutreachMessage) (domain.DeliveryReceipt, error) {
	if err := g.validateMessage(msg); err != nil {
		return domain.DeliveryReceipt{}, err
	}
	if err := g.ensureAuthorized(ctx); err != nil {
		return domain.DeliveryReceipt{}, err
	}

	ectx, cancel := context.WithTimeout(ctx, g.delegateTimeout)
	defer cancel()

	out, err := g.provider.Execute(ectx, g.toolName, map[string]any{
		"subject":   msg.Subject,
		"body":      msg.Body,
		"recipient": msg.RecipientEmail,
	}, g.userID)
	if err != nil {
		g.logger.Error("email send failed", "recipient", msg.RecipientEmail, "error", err)
		return domain.DeliveryReceipt{}, domain.DelegateFailure(err, "send email")
	}

	g.logger.Info("email sent", "recipient", msg.RecipientEmail, "subject", logging.Truncate(msg.Subject, 80))
	return domain.DeliveryReceipt{Status: "success", ProviderResult: out}, nil
}

// Authorized reports whether the handshake has completed in this process
func (g *Gateway) Authorized() bool {
	return g.authorized.Load()
}

func (g *Gateway) validateMessage(msg domain.OutreachMessage) error {
	if err := g.validate.Var(msg.RecipientEmail, "required,email"); err != nil {
		return domain.Invalidf("recipient %q is not a valid email address", msg.RecipientEmail)
	}
	if strings.TrimSpace(msg.Body) == "" {
		return domain.Invalidf("email body is empty")
	}
	return nil
}

// ensureAuthorized shares one in-flight handshake between concurrent senders.
// Success is remembered; a failure is returned to everyone waiting on that
// handshake and the next send starts a new one.
func (g *Gateway) ensureAuthorized(ctx context.Context) error {
	if g.authorized.Load() {
		return nil
	}
	if g.userID == "" {
		return domain.NotConfigured("mail provider user id is missing", "set ARCADE_USER_ID")
	}

	// the handshake outlives any single caller; it is bounded by its own timeouts
	ch := g.flight.DoChan(handshakeKey, func() (any, error) {
		if g.authorized.Load() {
			return nil, nil
		}
		if err := g.traceHandshake(context.WithoutCancel(ctx)); err != nil {
			return nil, err
		}
		g.authorized.Store(true)
		return nil, nil
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for mail provider authorization")
	}
}

func (g *Gateway) traceHandshake(ctx context.Context) error {
	ctx, span := telemetry.Tracer().Start(ctx, "delivery.authorize")
	defer span.End()
	span.SetAttributes(attribute.String("mail.tool", g.toolName))

	if err := g.handshake(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (g *Gateway) handshake(ctx context.Context) error {
	actx, cancel := context.WithTimeout(ctx, g.delegateTimeout)
	status, err := g.provider.Authorize(actx, g.userID, g.toolName)
	cancel()
	if err != nil {
		return domain.DelegateFailure(err, "authorize mail provider")
	}
	if status.Completed() {
		g.logger.Info("mail provider already authorized", "tool", g.toolName)
		return nil
	}
	if status.Status == AuthFailed {
		return authIncomplete(status.URL, "was rejected")
	}

	g.logger.Warn("mail provider authorization required", "url", status.URL)
	if g.onAuthURL != nil && status.URL != "" {
		g.onAuthURL(status.URL)
	}

	wctx, cancel := context.WithTimeout(ctx, g.authTimeout)
	defer cancel()

	final, err := g.provider.WaitForCompletion(wctx, status)
	if err != nil {
		if errors.Is(wctx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return authIncomplete(status.URL, "timed out after "+g.authTimeout.String())
		}
		if ctx.Err() != nil {
			return errors.Wrap(ctx.Err(), "authorization interrupted")
		}
		return domain.DelegateFailure(err, "wait for mail provider authorization")
	}
	if !final.Completed() {
		url := final.URL
		if url == "" {
			url = status.URL
		}
		return authIncomplete(url, "ended as "+final.Status)
	}

	g.logger.Info("mail provider authorization successful", "tool", g.toolName)
	return nil
}

func authIncomplete(url, reason string) error {
	err := errors.Mark(errors.Newf("mail provider authorization %s", reason), domain.ErrAuthorizationIncomplete)
	if url != "" {
		err = errors.WithHint(err, "authorize the mail account at "+url)
	}
	return err
}
