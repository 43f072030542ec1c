package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSConfig names one queue per worker binary.
type SQSConfig struct {
	AWS             AWSConfig
	Endpoint        string
	IndexQueueURL   string
	BillingQueueURL string
	ExportQueueURL  string
}

func DefaultSQSConfig() *SQSConfig {
	const local = "http://localhost:4566/000000000000/"
	return &SQSConfig{
		AWS:             defaultAWSConfig(),
		Endpoint:        getEnvOrDefault("AWS_SQS_ENDPOINT", "http://localhost:4566"),
		IndexQueueURL:   getEnvOrDefault("AWS_SQS_INDEX_QUEUE_URL", local+"pitch-index-queue"),
		BillingQueueURL: getEnvOrDefault("AWS_SQS_BILLING_QUEUE_URL", local+"pitch-billing-queue"),
		ExportQueueURL:  getEnvOrDefault("AWS_SQS_EXPORT_QUEUE_URL", local+"pitch-export-queue"),
	}
}

func (c *SQSConfig) GetClient(ctx context.Context) (*sqs.Client, error) {
	cfg, err := c.AWS.load(ctx, c.Endpoint)
	if err != nil {
		return nil, err
	}
	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		o.BaseEndpoint = endpointOverride(c.Endpoint)
	}), nil
}
