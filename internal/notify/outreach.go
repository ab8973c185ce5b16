// Package notify sends outbound messages: outreach alerts over SNS and
// support letters over SES.
package notify

import (
	"context"
	"fmt"
	"strconv"

	"hopeconnect/internal/common/aws"
	"hopeconnect/internal/common/errors"
	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/models"

	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// Publisher is satisfied by aws.SNSClient.
type Publisher interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

// Outreach alerts the outreach team when an assessment lands in the severe
// band. The message carries ids and scores only, never answer text.
type Outreach struct {
	publisher Publisher
	topicARN  string
	logger    logger.Logger
}

// NewOutreach returns nil when publisher is nil or no topic is configured;
// a nil *Outreach is a valid no-op.
func NewOutreach(publisher Publisher, topicARN string, log logger.Logger) *Outreach {
	if publisher == nil || topicARN == "" {
		return nil
	}
	return &Outreach{
		publisher: publisher,
		topicARN:  topicARN,
		logger:    log.WithFields(map[string]interface{}{"component": "outreach"}),
	}
}

// SevereAssessment publishes the alert for a. Other severities are ignored.
func (o *Outreach) SevereAssessment(ctx context.Context, a *models.Assessment) error {
	if o == nil || a == nil || a.Severity != models.SeveritySevere {
		return nil
	}

	message := fmt.Sprintf(
		"A self-assessment scored %d of %d (severe). Assessment %s. Registered user: %t.",
		a.TotalScore, a.MaxScore, a.ID, a.UserID != nil,
	)
	input := aws.TopicMessage(o.topicARN, "Severe self-assessment", message, map[string]string{
		"assessmentId": a.ID,
		"severity":     string(a.Severity),
		"totalScore":   strconv.Itoa(a.TotalScore),
	})

	out, err := o.publisher.Publish(ctx, input)
	if err != nil {
		return errors.NewNotificationSendFailedError("sns", err)
	}

	fields := map[string]interface{}{"assessmentId": a.ID}
	if out != nil && out.MessageId != nil {
		fields["messageId"] = *out.MessageId
	}
	o.logger.Info("outreach alert published", fields)
	return nil
}
