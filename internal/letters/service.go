package letters

import (
	"context"
	"time"

	"hopeconnect/internal/common/errors"
	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/common/metrics"
	"hopeconnect/internal/models"

	"github.com/google/uuid"
)

// Repository stores rendered letters. *Store implements it.
type Repository interface {
	SaveLetter(ctx context.Context, letter *models.Letter, clientName string) error
}

// Mailer emails a rendered letter. *notify.LetterMailer implements it.
type Mailer interface {
	Send(ctx context.Context, to string, letter *models.Letter) (string, error)
}

// Service renders letters and optionally stores or emails them.
type Service struct {
	repo   Repository
	mailer Mailer
	logger logger.Logger
	now    func() time.Time
	newID  func() string
}

// NewService wires the service. repo and mailer may be nil to disable
// persistence and delivery.
func NewService(repo Repository, mailer Mailer, log logger.Logger) *Service {
	return &Service{
		repo:   repo,
		mailer: mailer,
		logger: log.WithFields(map[string]interface{}{"component": "letter-service"}),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.New().String() },
	}
}

// Render renders req and, when a repository is configured, stores the
// result under a new id.
func (s *Service) Render(ctx context.Context, req models.LetterRequest) (*models.Letter, error) {
	letter, err := RenderRequest(req)
	if err != nil {
		return nil, err
	}
	metrics.LettersRendered.WithLabelValues(letter.Language, letter.LetterType).Inc()

	if letter.Language != req.LanguageCode {
		s.logger.Debug("letter language fell back", map[string]interface{}{
			"requested": req.LanguageCode,
			"resolved":  letter.Language,
		})
	}

	if s.repo == nil {
		return letter, nil
	}

	letter.ID = s.newID()
	letter.CreatedAt = s.now()
	if err := s.repo.SaveLetter(ctx, letter, req.ClientName); err != nil {
		return nil, errors.NewQueryError("save_letter", err)
	}
	return letter, nil
}

// Delivery is the outcome of Deliver.
type Delivery struct {
	Letter    *models.Letter `json:"letter"`
	MessageID string         `json:"messageId"`
}

// Deliver renders req and emails it to recipientEmail.
func (s *Service) Deliver(ctx context.Context, req models.LetterRequest, recipientEmail string) (*Delivery, error) {
	if s.mailer == nil {
		return nil, errors.NewBusinessRuleError("Email delivery is not available", "letter email delivery is disabled")
	}
	letter, err := s.Render(ctx, req)
	if err != nil {
		return nil, err
	}
	messageID, err := s.mailer.Send(ctx, recipientEmail, letter)
	if err != nil {
		return nil, err
	}
	return &Delivery{Letter: letter, MessageID: messageID}, nil
}

// Templates describes the bundled catalogue.
func Templates() []models.TemplateInfo {
	catalogue := Catalogue()
	out := make([]models.TemplateInfo, len(catalogue))
	for i, t := range catalogue {
		out[i] = models.TemplateInfo{
			Language:   string(t.Language),
			LetterType: string(t.LetterType),
			Title:      t.Title,
		}
	}
	return out
}
