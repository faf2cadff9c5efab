package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/fadilmartias/careerboost/internal/config"
	"github.com/fadilmartias/careerboost/internal/model"
	"github.com/google/uuid"
)

// ObjectStorage stores public objects and returns the URL they are served from.
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}

var _ ObjectStorage = (*StorageService)(nil)

type StorageService struct {
	client *s3.Client
	cfg    *config.StorageConfig
}

// NewStorageService returns a service whose uploads fail with
// model.ErrStorageDisabled when no bucket is configured.
func NewStorageService(ctx context.Context, cfg *config.StorageConfig) (*StorageService, error) {
	if !cfg.Enabled() {
		return &StorageService{cfg: cfg}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &StorageService{client: client, cfg: cfg}, nil
}

func (s *StorageService) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if s.client == nil {
		return "", model.ErrStorageDisabled
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.publicURL(key), nil
}

func (s *StorageService) publicURL(key string) string {
	switch {
	case s.cfg.PublicURL != "":
		return strings.TrimRight(s.cfg.PublicURL, "/") + "/" + key
	case s.cfg.Endpoint != "":
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.cfg.Endpoint, "/"), s.cfg.Bucket, key)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
	}
}

// PictureKey names a user's picture object. Each upload gets a fresh key so
// cached copies of the old picture are never served for the new one.
func PictureKey(userID, ext string) string {
	return fmt.Sprintf("profile-pictures/%s/%s%s", userID, uuid.NewString(), ext)
}
