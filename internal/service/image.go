package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pageza/recipebook/backend/config"
)

// MaxImageSize is the largest accepted upload in bytes
const MaxImageSize = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ObjectPutter is the part of the S3 client used for uploads
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ImageService stores recipe and profile images in S3
type ImageService struct {
	client  ObjectPutter
	bucket  string
	baseURL string
	log     zerolog.Logger
}

// NewImageService creates an ImageService from the S3 configuration
func NewImageService(s3Config *config.S3Config, log zerolog.Logger) *ImageService {
	return NewImageServiceWithClient(s3Config.Client, s3Config.BucketName, s3Config.PublicBaseURL, log)
}

// NewImageServiceWithClient creates an ImageService around any ObjectPutter
func NewImageServiceWithClient(client ObjectPutter, bucket, baseURL string, log zerolog.Logger) *ImageService {
	return &ImageService{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

// Upload stores an image for userID and returns its public URL
func (s *ImageService) Upload(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", validationError("Only image files are allowed")
	}

	data, err := io.ReadAll(io.LimitReader(body, MaxImageSize+1))
	if err != nil {
		return "", internal("Failed to read image", err)
	}
	if len(data) == 0 {
		return "", validationError("Image file is empty")
	}
	if len(data) > MaxImageSize {
		return "", validationError("Image must be 5MB or smaller")
	}

	ext, ok := imageExtensions[contentType]
	if !ok {
		ext = strings.ToLower(path.Ext(filename))
	}
	key := fmt.Sprintf("images/%s/%s%s", userID, uuid.New(), ext)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("image upload failed")
		return "", internal("Failed to upload image", err)
	}

	url := s.baseURL + "/" + key
	s.log.Info().Str("user_id", userID.String()).Str("url", url).Msg("image uploaded")
	return url, nil
}
