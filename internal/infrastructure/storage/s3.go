// Package storage implementa el almacén de blobs (logos de empresa y fotos
// de perfil) sobre S3 o un backend compatible (MinIO).
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/drivelay/fleet-api/pkg/config"
)

// Uploader es la superficie que consumen los handlers de subida de imágenes.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// S3Store sube objetos a un único bucket y devuelve la URL pública.
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

var _ Uploader = (*S3Store)(nil)

// NewS3 construye el almacén a partir de la configuración. El bucket es
// obligatorio; la región por defecto es us-east-1.
func NewS3(ctx context.Context, cfg config.StorageConfig) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket S3 requerido")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("cargar configuración AWS: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = defaultBaseURL(cfg, region)
	}
	return &S3Store{client: client, bucket: cfg.Bucket, baseURL: base}, nil
}

// Upload escribe el objeto y devuelve su URL pública de descarga.
func (s *S3Store) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("subir objeto %s: %w", key, err)
	}
	return s.baseURL + "/" + url.PathEscape(key), nil
}

func defaultBaseURL(cfg config.StorageConfig, region string) string {
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
}
