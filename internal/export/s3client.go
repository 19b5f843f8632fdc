package export

import (
	"context"
	"errors"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrNoCredentials is returned when the environment carries no AWS keys.
var ErrNoCredentials = errors.New("export: AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY are not set")

// S3Options configures the S3 client.
type S3Options struct {
	Region string

	// Endpoint overrides the S3 endpoint, for S3 compatible stores.
	Endpoint string

	// UsePathStyle forces path-style addressing.
	UsePathStyle bool
}

// envCredentials reads static credentials from the standard AWS variables.
var envCredentials = aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
	id, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, ErrNoCredentials
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "Environment",
	}, nil
})

// NewS3Client builds an S3 client from opts and the AWS_* environment
// variables.
func NewS3Client(opts S3Options) (*s3.Client, error) {
	if os.Getenv("AWS_ACCESS_KEY_ID") == "" || os.Getenv("AWS_SECRET_ACCESS_KEY") == "" {
		return nil, ErrNoCredentials
	}
	region := opts.Region
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		return nil, errors.New("export: no S3 region configured")
	}

	return s3.New(s3.Options{
		Region:       region,
		Credentials:  aws.NewCredentialsCache(envCredentials),
		UsePathStyle: opts.UsePathStyle,
		BaseEndpoint: endpoint(opts.Endpoint),
	}), nil
}

func endpoint(url string) *string {
	if url == "" {
		return nil
	}
	return aws.String(url)
}
