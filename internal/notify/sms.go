package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/dmitrijs2005/clubcard/internal/awsx"
)

// SMSSender delivers one text message to an E.164 phone number.
type SMSSender interface {
	SendSMS(ctx context.Context, phone, text string) error
}

type publishAPI interface {
	Publish(ctx context.Context, in *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

var newSNSClientFromConfig = func(cfg aws.Config) publishAPI {
	return sns.NewFromConfig(cfg)
}

type SNSConfig struct {
	Region      string
	Credentials awsx.Credentials
	SenderID    string
}

// SNS sends transactional SMS through Amazon SNS.
type SNS struct {
	client   publishAPI
	senderID string
}

func NewSNS(ctx context.Context, c SNSConfig) (*SNS, error) {
	cfg, err := awsx.LoadConfig(ctx, c.Region, c.Credentials)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	senderID := c.SenderID
	if senderID == "" {
		senderID = DefaultSMSSenderID
	}
	return &SNS{client: newSNSClientFromConfig(cfg), senderID: senderID}, nil
}

func stringAttr(v string) types.MessageAttributeValue {
	return types.MessageAttributeValue{DataType: aws.String("String"), StringValue: aws.String(v)}
}

func (s *SNS) SendSMS(ctx context.Context, phone, text string) error {
	_, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(phone),
		Message:     aws.String(text),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"AWS.SNS.SMS.SenderID": stringAttr(s.senderID),
			"AWS.SNS.SMS.SMSType":  stringAttr("Transactional"),
		},
	})
	if err != nil {
		return fmt.Errorf("sns publish: %w", err)
	}
	return nil
}
