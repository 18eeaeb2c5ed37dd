package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/learntoride/ltr/pkg/logger"
)

var log = logger.Get("Storage")

type (
	// Config describes the S3-compatible bucket which holds uploaded
	// trick media. PublicBaseUrl is the address clients fetch media from;
	// for MinIO and most hosted buckets this is simply the endpoint, but
	// a CDN in front of the bucket can be configured here instead.
	Config struct {
		Endpoint      string `toml:"endpoint" env:"STORAGE_ENDPOINT" env-required:"true"`
		Region        string `toml:"region" env:"STORAGE_REGION" env-default:"us-east-1"`
		Bucket        string `toml:"bucket" env:"STORAGE_BUCKET" env-default:"tricks"`
		AccessKey     string `toml:"access_key" env:"STORAGE_ACCESS_KEY" env-required:"true"`
		SecretKey     string `toml:"secret_key" env:"STORAGE_SECRET_KEY" env-required:"true"`
		PublicBaseUrl string `toml:"public_base_url" env:"STORAGE_PUBLIC_BASE_URL"`
	}

	// Client wraps the S3 API with the two operations the library needs:
	// uploading a media object (returning its public URL) and best-effort
	// removal of an object when its trick is deleted.
	Client struct {
		config Config
		s3     *s3.Client
	}
)

func NewClient(ctx context.Context, config Config) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(config.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			config.AccessKey,
			config.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load storage credentials: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(config.Endpoint)
		// Bucket-as-path addressing, required by MinIO and friends.
		o.UsePathStyle = true
	})

	return &Client{config: config, s3: client}, nil
}

// Upload stores the object under the provided name and returns the public
// URL it is reachable at.
func (client *Client) Upload(ctx context.Context, name string, contentType string, body io.Reader) (string, error) {
	_, err := client.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(client.config.Bucket),
		Key:         aws.String(name),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", name, err)
	}

	publicUrl := client.PublicURL(name)
	log.Infof("Uploaded object %s (%s)\n", name, publicUrl)
	return publicUrl, nil
}

// Remove deletes the named object from the bucket. Callers treat failure
// as non-fatal: a dangling object is preferable to a delete that refuses
// to remove the database record.
func (client *Client) Remove(ctx context.Context, name string) error {
	_, err := client.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(client.config.Bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		return fmt.Errorf("failed to remove object %s: %w", name, err)
	}

	return nil
}

// PublicURL derives the client-facing URL for a stored object name.
func (client *Client) PublicURL(name string) string {
	base := client.config.PublicBaseUrl
	if base == "" {
		base = client.config.Endpoint
	}

	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(base, "/"), client.config.Bucket, name)
}
