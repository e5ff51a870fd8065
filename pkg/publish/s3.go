package publish

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/showcase/internal/errors"
)

// ObjectPutter is the slice of the S3 API the publisher needs. *s3.Client
// satisfies it.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads documents to a bucket.
type S3Publisher struct {
	client       ObjectPutter
	bucket       string
	prefix       string
	cacheControl string
	logger       *slog.Logger
}

// S3Option configures an S3Publisher.
type S3Option func(*S3Publisher)

// WithPrefix prepends prefix to every key.
func WithPrefix(prefix string) S3Option {
	return func(p *S3Publisher) {
		p.prefix = prefix
	}
}

// WithCacheControl sets the Cache-Control header stored with each object.
func WithCacheControl(v string) S3Option {
	return func(p *S3Publisher) {
		p.cacheControl = v
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) S3Option {
	return func(p *S3Publisher) {
		p.logger = l
	}
}

// NewS3Publisher creates a publisher for bucket.
func NewS3Publisher(client ObjectPutter, bucket string, opts ...S3Option) (*S3Publisher, error) {
	if bucket == "" {
		return nil, errors.New("E300").WithDetail("no bucket configured")
	}
	if client == nil {
		return nil, errors.New("E300").WithDetail("no S3 client")
	}
	p := &S3Publisher{
		client:       client,
		bucket:       bucket,
		cacheControl: "no-cache",
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = logger(p.logger)
	return p, nil
}

// Publish implements Publisher. The returned location is an s3:// URI.
func (p *S3Publisher) Publish(ctx context.Context, key string, body []byte) (string, error) {
	key, err := cleanKey(p.prefix + key)
	if err != nil {
		return "", err
	}

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(p.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String(ContentType(key)),
		CacheControl: aws.String(p.cacheControl),
		Metadata: map[string]string{
			"publish-time": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", errors.New("E301").WithDetail("s3://" + p.bucket + "/" + key).Wrap(err)
	}

	loc := "s3://" + p.bucket + "/" + key
	p.logger.Info("page published", "location", loc, "bytes", len(body))
	return loc, nil
}

// NewS3Client builds a client from the SDK's default configuration chain:
// environment, shared config and credentials files, SSO and instance
// roles. A non-empty region overrides the resolved one.
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.New("E300").WithDetail("loading AWS configuration").Wrap(err)
	}
	return s3.NewFromConfig(cfg), nil
}
