package services

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const uploadURLTTL = 5 * time.Minute

// MediaService issues pre-signed S3 upload URLs for the pictures attached
// to collections and recommendations. The service stores nothing; the
// caller places the returned picture URL into a pictures field itself.
type MediaService struct {
	s3Client *s3.Client
	bucket   string
	region   string
}

// NewMediaService creates a new media service
func NewMediaService(ctx context.Context, region, bucket string) (*MediaService, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &MediaService{
		s3Client: s3.NewFromConfig(cfg),
		bucket:   bucket,
		region:   region,
	}, nil
}

// UploadResponse carries a pre-signed PUT URL and the public URL the
// object will have once uploaded
type UploadResponse struct {
	UploadURL  string `json:"upload_url"`
	PictureURL string `json:"picture_url"`
	ExpiresIn  int    `json:"expires_in"`
}

// GetUploadURL generates a pre-signed URL for uploading a picture
func (s *MediaService) GetUploadURL(ctx context.Context, filename, contentType string) (*UploadResponse, error) {
	key := fmt.Sprintf("uploads/%s%s", uuid.New().String(), path.Ext(filename))

	presignClient := s3.NewPresignClient(s.s3Client)
	request, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = uploadURLTTL
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate pre-signed URL: %w", err)
	}

	return &UploadResponse{
		UploadURL:  request.URL,
		PictureURL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key),
		ExpiresIn:  int(uploadURLTTL.Seconds()),
	}, nil
}
