package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/dmitrijs2005/clubcard/internal/awsx"
)

// EmailSender delivers one email with a plain-text and an HTML part.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, text, html string) error
}

type sendEmailAPI interface {
	SendEmail(ctx context.Context, in *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

var newSESClientFromConfig = func(cfg aws.Config) sendEmailAPI {
	return sesv2.NewFromConfig(cfg)
}

type SESConfig struct {
	Region      string
	Credentials awsx.Credentials
	From        string
}

// SES sends email through Amazon SES v2.
type SES struct {
	client sendEmailAPI
	from   string
}

func NewSES(ctx context.Context, c SESConfig) (*SES, error) {
	cfg, err := awsx.LoadConfig(ctx, c.Region, c.Credentials)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	from := c.From
	if from == "" {
		from = DefaultSender
	}
	return &SES{client: newSESClientFromConfig(cfg), from: from}, nil
}

func utf8Content(s string) *types.Content {
	return &types.Content{Data: aws.String(s), Charset: aws.String("UTF-8")}
}

func (s *SES) SendEmail(ctx context.Context, to, subject, text, html string) error {
	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination:      &types.Destination{ToAddresses: []string{to}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: utf8Content(subject),
				Body: &types.Body{
					Text: utf8Content(text),
					Html: utf8Content(html),
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send email: %w", err)
	}
	return nil
}
