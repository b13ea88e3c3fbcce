package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/nikahlink/backend/config"
)

// PhotoService stores profile photos in S3 and records the public URL
// on the owner's biodata.
type PhotoService struct {
	s3Config *config.S3Config
	biodata  IBiodataService
}

func NewPhotoService(s3Config *config.S3Config, biodata IBiodataService) *PhotoService {
	return &PhotoService{s3Config: s3Config, biodata: biodata}
}

// Enabled reports whether photo storage is configured.
func (s *PhotoService) Enabled() bool {
	return s.s3Config != nil
}

// Upload streams a photo to S3 under a UUID key and persists the
// resulting URL on the biodata owned by email.
func (s *PhotoService) Upload(ctx context.Context, email string, body io.Reader, contentType string) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("photo storage is not configured")
	}

	key := fmt.Sprintf("profile-photos/%s%s", uuid.New().String(), extensionFor(contentType))
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.s3Config.BucketName, s.s3Config.Region, key)
	if err := s.biodata.SetPhotoURL(ctx, email, url); err != nil {
		return "", err
	}

	log.Printf("[PhotoService] stored photo for %s at %s", email, key)
	return url, nil
}

func extensionFor(contentType string) string {
	switch {
	case strings.Contains(contentType, "png"):
		return ".png"
	case strings.Contains(contentType, "webp"):
		return ".webp"
	default:
		return ".jpg"
	}
}
