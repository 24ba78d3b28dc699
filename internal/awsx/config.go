// Package awsx builds aws.Config values for the S3, SES and SNS clients.
package awsx

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

var loadDefaultAWSConfig = config.LoadDefaultConfig

// Credentials are static access keys. When AccessKeyID is empty the default
// credential chain (env, shared config, instance role) is used instead.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
}

// LoadConfig returns an aws.Config for region.
func LoadConfig(ctx context.Context, region string, creds Credentials) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if creds.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			creds.AccessKeyID,
			creds.SecretAccessKey,
			"",
		)))
	}
	return loadDefaultAWSConfig(ctx, opts...)
}
