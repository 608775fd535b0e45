package archive

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Archiver uploads folder exports to an S3 bucket so they survive
// outside the chat transport's attachment limits.
type S3Archiver struct {
	client *s3.S3
	bucket string
	prefix string
}

// Config holds the S3 connection settings. Endpoint is optional and
// enables MinIO-style deployments with path-style addressing.
type Config struct {
	Bucket    string
	Prefix    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// NewS3Archiver creates an archiver for the configured bucket.
func NewS3Archiver(cfg Config) (*S3Archiver, error) {
	awsConfig := &aws.Config{
		Region:      aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, err
	}

	return &S3Archiver{
		client: s3.New(sess),
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
	}, nil
}

// Archive uploads one export blob under its generated filename.
func (a *S3Archiver) Archive(ctx context.Context, fileName, content string) error {
	key := fileName
	if a.prefix != "" {
		key = strings.TrimSuffix(a.prefix, "/") + "/" + fileName
	}

	_, err := a.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(content),
		ContentType: aws.String("text/plain; charset=utf-8"),
	})
	return err
}
