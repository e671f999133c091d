package s3

import (
	"printshop-service/internal/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Client wraps the S3 service for the single site-assets bucket.
type Client struct {
	bucketName string
	region     string
	svc        *s3.S3
}

func NewClient(cfg *config.AWSConfig) (*Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	})

	if err != nil {
		return nil, err
	}

	return &Client{
		bucketName: cfg.Bucket,
		region:     cfg.Region,
		svc:        s3.New(sess),
	}, nil
}
