package main

import (
	"context"
	"fmt"
	"time"

	"hersalon/internal/leadform"
	"hersalon/internal/storage"
	"hersalon/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func loadConfig(prefix string) (*types.Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	c := new(types.Config)
	if err := envconfig.Process(prefix, c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.ApplyEndpointURL == "" {
		return nil, fmt.Errorf("set APPLY_ENDPOINT_URL")
	}

	if c.ServerPort == 0 {
		c.ServerPort = 8080
	}

	if c.ReadTimeoutSec == 0 {
		c.ReadTimeoutSec = 10
	}

	if c.WriteTimeoutSec == 0 {
		c.WriteTimeoutSec = 15
	}

	if c.FormSessionTTLMin == 0 {
		c.FormSessionTTLMin = 60
	}

	if c.SendingRefreshSec == 0 {
		c.SendingRefreshSec = 2
	}

	return c, nil
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	config, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}

	return config, nil
}

func newSubmitter(c *types.Config) (*leadform.HTTPSubmitter, error) {
	opts := []leadform.HTTPSubmitterOption{
		leadform.WithTimeout(time.Duration(c.ApplyTimeoutSec) * time.Second),
	}
	if c.ApplyEndpointKey != "" {
		opts = append(opts, leadform.WithAPIKey(c.ApplyEndpointKeyHeader, c.ApplyEndpointKey))
	}

	submitter, err := leadform.NewHTTPSubmitter(c.ApplyEndpointURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("configure apply endpoint: %w", err)
	}

	return submitter, nil
}

// newMediaResolver only touches AWS when a media bucket is configured.
func newMediaResolver(ctx context.Context, c *types.Config) (*storage.MediaResolver, error) {
	if c.MediaBucket == "" {
		return storage.StaticMediaResolver(), nil
	}

	awsConfig, err := loadAWSConfig(ctx)
	if err != nil {
		return nil, err
	}

	return storage.NewS3MediaResolver(
		s3.NewFromConfig(awsConfig),
		c.MediaBucket,
		c.MediaPrefix,
		time.Duration(c.MediaURLExpirySec)*time.Second,
	), nil
}
