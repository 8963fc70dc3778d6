package storage

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ConnectS3 creates an S3 client using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - S3_ENDPOINT (optional; e.g. http://minio:9000)
//   - S3_PATH_STYLE (true|false, default false; MinIO wants true)
func ConnectS3() *s3.Client {
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(getenvDefault("AWS_REGION", "us-east-1")),
	)
	if err != nil {
		log.Fatalf("failed to create s3 config: %v", err)
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	pathStyle := strings.EqualFold(os.Getenv("S3_PATH_STYLE"), "true")
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		if pathStyle {
			o.UsePathStyle = true
		}
	})
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
