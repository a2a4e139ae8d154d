package contact

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/organilive/storefront/domain"
	"github.com/organilive/storefront/repository"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-\s()]{8,15}$`)
)

// Service validates contact submissions and forwards them to the sink.
type Service struct {
	sink   repository.ContactSink
	logger *zap.Logger
}

func New(sink repository.ContactSink, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		sink:   sink,
		logger: logger,
	}
}

// Submit checks the message field by field and hands it to the external
// endpoint. Validation failures list every offending field; delivery
// failures come back as-is for inline display, with no automatic retry.
func (s *Service) Submit(ctx context.Context, msg domain.ContactMessage) (domain.ContactResult, error) {
	if err := validate(msg); err != nil {
		return domain.ContactResult{}, err
	}

	result, err := s.sink.Send(ctx, msg)
	if err != nil {
		s.logger.Warn("contact delivery failed", zap.Error(err))
		return domain.ContactResult{}, err
	}
	if !result.Success && result.Message == "" {
		result.Message = "failed to send message"
	}
	return result, nil
}

func validate(msg domain.ContactMessage) error {
	fields := make(map[string]string)

	if strings.TrimSpace(msg.Name) == "" {
		fields["name"] = "name is required"
	}
	switch {
	case strings.TrimSpace(msg.Email) == "":
		fields["email"] = "email is required"
	case !emailPattern.MatchString(msg.Email):
		fields["email"] = "email is not valid"
	}
	if strings.TrimSpace(msg.Message) == "" {
		fields["message"] = "message is required"
	}
	if msg.Phone != "" && !phonePattern.MatchString(msg.Phone) {
		fields["phone"] = "phone is not valid"
	}

	if len(fields) > 0 {
		return domain.NewValidationError(fields)
	}
	return nil
}
