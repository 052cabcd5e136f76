// Package s3 provides a storage primitive that keeps one object per cache
// record in an S3-compatible bucket.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/spetersoncode/flagshim/storage"
)

// ObjectAPI is the subset of the S3 client the primitive uses.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Primitive stores each record as the object "<keyPrefix><key>".
type Primitive struct {
	client    ObjectAPI
	bucket    string
	keyPrefix string
}

var _ storage.Primitive = (*Primitive)(nil)

// New creates a primitive over an existing client.
func New(client ObjectAPI, bucket, keyPrefix string) *Primitive {
	return &Primitive{
		client:    client,
		bucket:    bucket,
		keyPrefix: keyPrefix,
	}
}

// NewFromConfig loads the default AWS configuration for region and builds a
// client. If endpoint is non-empty, path-style addressing is enabled (for
// MinIO and similar).
func NewFromConfig(ctx context.Context, bucket, keyPrefix, region, endpoint string) (*Primitive, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	var s3opts []func(*s3.Options)
	if endpoint != "" {
		s3opts = append(s3opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	}

	return New(s3.NewFromConfig(cfg, s3opts...), bucket, keyPrefix), nil
}

func (p *Primitive) objectKey(key string) string {
	return p.keyPrefix + key
}

// GetItem downloads the object for key.
func (p *Primitive) GetItem(ctx context.Context, key string) (string, bool, error) {
	out, err := p.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(p.objectKey(key)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("s3 get object %q: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return "", false, fmt.Errorf("s3 read object %q: %w", key, err)
	}
	return string(data), true, nil
}

// SetItem uploads value as the object for key.
func (p *Primitive) SetItem(ctx context.Context, key, value string) error {
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(p.objectKey(key)),
		Body:        strings.NewReader(value),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3 put object %q: %w", key, err)
	}
	return nil
}
