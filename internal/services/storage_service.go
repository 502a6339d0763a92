// internal/services/storage_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/crownshop/storefront/internal/config"
)

// ImageStore is the remote object storage for product images.
type ImageStore interface {
	// Upload stores the image under a generated collision-resistant
	// name and returns its publicly resolvable URL.
	Upload(ctx context.Context, data []byte, fileName, contentType string) (string, error)
	// Delete removes a stored object by key; used for best-effort
	// cleanup after a product row is deleted.
	Delete(ctx context.Context, key string) error
	// KeyFromURL derives the storage key back from a public URL.
	KeyFromURL(url string) string
}

// StorageService backs ImageStore with S3.
type StorageService struct {
	s3Client *s3.S3
	config   *config.Config
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	if cfg.AWS.AccessKeyID == "" {
		// Return service without S3 for local development
		return &StorageService{config: cfg}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   cfg,
	}, nil
}

func (s *StorageService) Upload(ctx context.Context, data []byte, fileName, contentType string) (string, error) {
	key := s.generateKey(fileName)

	if s.s3Client == nil {
		// Local development: pretend the object landed somewhere
		return fmt.Sprintf("http://localhost:%s/uploads/%s", s.config.Server.Port, key), nil
	}

	params := &s3.PutObjectInput{
		Bucket:        aws.String(s.config.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
		ACL:           aws.String("public-read"),
	}

	if _, err := s.s3Client.PutObjectWithContext(ctx, params); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return s.publicURL(key), nil
}

func (s *StorageService) Delete(ctx context.Context, key string) error {
	if s.s3Client == nil {
		return nil
	}

	_, err := s.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.AWS.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}

// KeyFromURL recovers the storage key from a public image URL: the last
// path segment under the configured image folder.
func (s *StorageService) KeyFromURL(url string) string {
	base := path.Base(url)
	if base == "." || base == "/" || base == "" {
		return ""
	}
	return s.config.AWS.ImageFolder + "/" + base
}

// publicURL resolves a key to its serving URL, preferring the CDN
// distribution when one is configured.
func (s *StorageService) publicURL(key string) string {
	if s.config.AWS.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(s.config.AWS.CloudFrontURL, "/"), key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.AWS.S3Bucket, s.config.AWS.Region, key)
}

// generateKey rewrites a user-supplied file name to a collision
// resistant generated one, keeping only the extension.
func (s *StorageService) generateKey(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	token := uuid.New().String()[:8]
	return fmt.Sprintf("%s/%d-%s%s", s.config.AWS.ImageFolder, time.Now().UnixMilli(), token, ext)
}
