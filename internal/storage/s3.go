package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/medconnect/telemed-api/internal/config"
)

// AvatarStore processes uploaded avatars and puts them in an S3-compatible
// bucket. Nil when uploads are not configured.
type AvatarStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewAvatarStore(cfg *config.Config) *AvatarStore {
	if !cfg.AvatarUploadsEnabled() {
		return nil
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
	}

	return &AvatarStore{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimSuffix(cfg.AvatarPublicURL, "/"),
	}
}

// Upload converts the image and stores it under a per-user key, returning
// the public URL to persist on the user record. Re-uploading overwrites the
// previous avatar.
func (s *AvatarStore) Upload(ctx context.Context, userID string, r io.Reader) (string, error) {
	data, err := ProcessAvatar(r)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("avatars/%s.webp", userID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("storage: uploading avatar: %w", err)
	}

	return s.publicURL + "/" + key, nil
}
