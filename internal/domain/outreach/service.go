package outreach

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/pkg/logging"
)

// Service validates compose requests before handing them to a Composer
type Service struct {
	composer Composer
	validate *validator.Validate
	logger   *logging.Logger
}

func NewService(composer Composer, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{
		composer: composer,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (s *Service) Tailor(ctx context.Context, req domain.ComposeRequest) (Draft, error) {
	if err := s.Validate(req); err != nil {
		return Draft{}, err
	}

	draft, err := s.composer.Compose(ctx, req)
	if err != nil {
		s.logger.Error("compose failed", "job_title", req.JobTitle, "error", err)
		return Draft{}, err
	}
	if draft.Subject == "" {
		s.logger.Warn("composed message has no subject line", "body_preview", logging.Truncate(draft.Body, 80))
	}

	s.logger.Info("message composed", "job_title", req.JobTitle, "subject", draft.Subject)
	return draft, nil
}

// Validate reports every failing field of req as one ErrInvalidInput error
func (s *Service) Validate(req domain.ComposeRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Mark(err, domain.ErrInvalidInput)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
	}
	return domain.Invalidf("invalid compose request: %s", strings.Join(msgs, ", "))
}
