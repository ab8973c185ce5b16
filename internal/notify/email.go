package notify

import (
	"context"
	"strings"

	"hopeconnect/internal/common/aws"
	"hopeconnect/internal/common/errors"
	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/models"

	"github.com/aws/aws-sdk-go-v2/service/ses"
)

// EmailSender is satisfied by aws.SESClient.
type EmailSender interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

type LetterMailer struct {
	sender EmailSender
	from   string
	logger logger.Logger
}

func NewLetterMailer(sender EmailSender, from string, log logger.Logger) *LetterMailer {
	return &LetterMailer{
		sender: sender,
		from:   from,
		logger: log.WithFields(map[string]interface{}{"component": "letter-mailer"}),
	}
}

// Send emails a rendered letter as plain text and returns the SES message id.
func (m *LetterMailer) Send(ctx context.Context, to string, letter *models.Letter) (string, error) {
	to = strings.TrimSpace(to)
	if to == "" || !strings.Contains(to, "@") {
		return "", errors.NewValidationError("recipientEmail must be an email address")
	}
	if m == nil || m.sender == nil {
		return "", errors.NewBusinessRuleError("Email delivery is not available", "letter email delivery is disabled")
	}

	out, err := m.sender.SendEmail(ctx, aws.TextEmail(m.from, to, letter.Title, letter.Body))
	if err != nil {
		return "", errors.NewNotificationSendFailedError("ses", err)
	}

	messageID := ""
	if out != nil && out.MessageId != nil {
		messageID = *out.MessageId
	}
	m.logger.Info("letter emailed", map[string]interface{}{
		"messageId":  messageID,
		"language":   letter.Language,
		"letterType": letter.LetterType,
	})
	return messageID, nil
}
