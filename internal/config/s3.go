package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config locates the bucket that receives history exports.
type S3Config struct {
	AWS        AWSConfig
	BucketName string
	Endpoint   string
}

func DefaultS3Config() *S3Config {
	return &S3Config{
		AWS:        defaultAWSConfig(),
		BucketName: getEnvOrDefault("S3_EXPORT_BUCKET", "pitchcraft-exports"),
		Endpoint:   getEnvOrDefault("AWS_ENDPOINT_URL", ""),
	}
}

// GetClient switches to path-style addressing when an endpoint override is
// set, since LocalStack does not serve virtual-hosted buckets.
func (c *S3Config) GetClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := c.AWS.load(ctx, c.Endpoint)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = endpointOverride(c.Endpoint)
		o.UsePathStyle = c.Endpoint != ""
	}), nil
}
