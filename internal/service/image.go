package service

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/sociable/social-api/config"
)

// ImageService stores profile images in S3.
type ImageService struct {
	s3Config *config.S3Config
}

var _ IImageService = (*ImageService)(nil)

func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// UploadProfileImage writes the image to the bucket under a random key and
// returns the public URL to store on the profile.
func (s *ImageService) UploadProfileImage(ctx context.Context, userID uint, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("profile-images/%d/%s", userID, uuid.NewString())

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload profile image: %w", err)
	}

	return s.s3Config.ObjectURL(key), nil
}
