package storage

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/clubcard/internal/awsx"
)

// ObjectStore stores objects with public-read visibility. Putting the same
// key twice overwrites.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) putObjectAPI {
	return s3.NewFromConfig(cfg, optFns...)
}

// S3Config selects the bucket and how to reach it. BaseEndpoint is only set
// for S3-compatible backends such as MinIO, which also need path-style
// addressing.
type S3Config struct {
	Bucket       string
	Region       string
	Credentials  awsx.Credentials
	BaseEndpoint string
}

type S3Store struct {
	client putObjectAPI
	bucket string
}

func NewS3Store(ctx context.Context, c S3Config) (*S3Store, error) {
	cfg, err := awsx.LoadConfig(ctx, c.Region, c.Credentials)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if c.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(c.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{client: client, bucket: c.Bucket}, nil
}

func (s *S3Store) Put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", s.bucket, key, err)
	}
	return nil
}

// Object is one Put recorded by Memory.
type Object struct {
	Key         string
	Body        []byte
	ContentType string
}

// Memory is an ObjectStore kept in memory, for tests.
type Memory struct {
	mu      sync.Mutex
	Puts    []Object
	Objects map[string]Object
	Err     error
}

func NewMemory() *Memory {
	return &Memory{Objects: map[string]Object{}}
}

func (m *Memory) Put(_ context.Context, key string, body []byte, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	o := Object{Key: key, Body: append([]byte(nil), body...), ContentType: contentType}
	m.Puts = append(m.Puts, o)
	m.Objects[key] = o
	return nil
}

// Keys returns the keys in put order.
func (m *Memory) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.Puts))
	for _, p := range m.Puts {
		keys = append(keys, p.Key)
	}
	return keys
}
