package output

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/briancchu/Raycaml/pkg/core"
)

const uploadTimeout = 10 * time.Second

// PublishConfig holds the object store settings for publishing renders
type PublishConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
}

// PublishConfigFromEnv reads the object store settings from the environment
func PublishConfigFromEnv() PublishConfig {
	return PublishConfig{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Bucket:    os.Getenv("S3_BUCKET"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Publisher uploads rendered images to an S3-compatible object store
type Publisher struct {
	uploader *s3.S3
	bucket   string
	logger   core.Logger
}

type noopLogger struct{}

func (noopLogger) Printf(format string, args ...interface{}) {}

// NewPublisher creates a publisher from the given connection settings.
// A nil logger silences upload progress.
func NewPublisher(config PublishConfig, logger core.Logger) (*Publisher, error) {
	if config.Bucket == "" {
		return nil, fmt.Errorf("publishing requires S3_BUCKET to be set")
	}
	if logger == nil {
		logger = noopLogger{}
	}

	s3Config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, ""),
		Endpoint:         aws.String(config.Endpoint),
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %v", err)
	}

	return &Publisher{
		uploader: s3.New(sess),
		bucket:   config.Bucket,
		logger:   logger,
	}, nil
}

// PublishPNG encodes img as PNG and uploads it under the given key with a
// public-read ACL
func (p *Publisher) PublishPNG(ctx context.Context, img image.Image, key string) error {
	if key == "" {
		return fmt.Errorf("publish key cannot be empty")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %v", err)
	}

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	data := buf.Bytes()
	size := int64(len(data))
	_, err := p.uploader.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("image/png"),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	p.logger.Printf("Uploaded %s to S3 (%d bytes)\n", key, size)
	return nil
}
