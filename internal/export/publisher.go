package export

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
)

// Publisher stores exported files under slash-separated keys.
type Publisher interface {
	Publish(ctx context.Context, key string, body []byte, contentType string) error

	// Location describes where key ends up, for logs and the manifest.
	Location(key string) string
}

// ContentType returns the media type registered for the extension of key,
// or the sniffed type of body when the extension is unknown.
func ContentType(key string, body []byte) string {
	if t := mime.TypeByExtension(path.Ext(key)); t != "" {
		return t
	}
	return mimetype.Detect(body).String()
}

// DiskPublisher writes files below Dir.
type DiskPublisher struct {
	Dir string
}

// Publish implements Publisher.
func (p DiskPublisher) Publish(ctx context.Context, key string, body []byte, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := p.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, body, 0o644)
}

// Location implements Publisher.
func (p DiskPublisher) Location(key string) string {
	target, err := p.path(key)
	if err != nil {
		return key
	}
	return target
}

// path maps key below Dir, rejecting keys that would escape it.
func (p DiskPublisher) path(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" || strings.Contains(key, "..") {
		return "", fmt.Errorf("export: invalid key %q", key)
	}
	return filepath.Join(p.Dir, filepath.FromSlash(clean[1:])), nil
}

// PutObjectAPI is the part of the S3 client S3Publisher uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads files to a bucket with PutObject.
type S3Publisher struct {
	client PutObjectAPI
	bucket string
	prefix string
}

// NewS3Publisher creates a publisher for bucket. Keys are prefixed with
// prefix as given.
func NewS3Publisher(client PutObjectAPI, bucket, prefix string) *S3Publisher {
	return &S3Publisher{client: client, bucket: bucket, prefix: prefix}
}

// Publish implements Publisher.
func (p *S3Publisher) Publish(ctx context.Context, key string, body []byte, contentType string) error {
	if contentType == "" {
		contentType = ContentType(key, body)
	}
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(p.bucket),
		Key:          aws.String(p.prefix + key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=300"),
	})
	if err != nil {
		return fmt.Errorf("s3 put %s: %w", p.prefix+key, err)
	}
	return nil
}

// Location implements Publisher.
func (p *S3Publisher) Location(key string) string {
	return "s3://" + p.bucket + "/" + p.prefix + key
}
