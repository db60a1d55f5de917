// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package objectstorage

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/applibrary/config"
	"github.com/l3montree-dev/applibrary/monitoring"
	"github.com/l3montree-dev/applibrary/shared"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
)

var ErrNotConfigured = errors.New("object storage is not configured, set STORAGE_BUCKET")

const signedURLCacheSize = 1024

type signedURL struct {
	url       string
	expiresAt time.Time
}

type S3Store struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	ttl       time.Duration

	// presigned urls are reused for half of their lifetime
	cache *expirable.LRU[string, signedURL]
	group singleflight.Group
	now   func() time.Time
}

var _ shared.ObjectStore = (*S3Store)(nil)

// NewS3Store connects to any S3 compatible endpoint. An empty endpoint talks to AWS itself.
func NewS3Store(cfg config.Config) (*S3Store, error) {
	storage := cfg.Storage
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(storage.Region),
		awsconfig.WithHTTPClient(&http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}),
	}
	if storage.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(storage.AccessKeyID, storage.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "could not load object storage config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(storage.Endpoint)
		}
		o.UsePathStyle = storage.UsePathStyle
		// most S3 compatible stores do not understand the default trailing checksums
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	if storage.Bucket == "" {
		slog.Warn("no storage bucket configured, file routes will fail")
	}

	return newS3Store(client, storage.Bucket, storage.SignedURLTTL)
}

func newS3Store(client *s3.Client, bucket string, ttl time.Duration) (*S3Store, error) {
	if ttl < 2*time.Second {
		return nil, errors.Errorf("signed url ttl too short: %s", ttl)
	}
	return &S3Store{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
		ttl:       ttl,
		cache:     expirable.NewLRU[string, signedURL](signedURLCacheSize, nil, ttl/2),
		now:       time.Now,
	}, nil
}

// CleanPath normalizes an object key. Keys must be relative and must not escape their prefix.
func CleanPath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", shared.NewValidationError("path is required")
	}
	for _, segment := range strings.Split(p, "/") {
		if segment == ".." {
			return "", shared.NewValidationError("path must not contain '..'")
		}
	}
	cleaned := strings.TrimLeft(path.Clean("/"+p), "/")
	if cleaned == "" {
		return "", shared.NewValidationError("path is required")
	}
	return cleaned, nil
}

func observe(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	monitoring.ObjectStoreOperations.WithLabelValues(operation, status).Inc()
}

func (s *S3Store) Upload(ctx context.Context, p string, contentType string, body io.Reader, size int64) (string, error) {
	key, err := CleanPath(p)
	if err != nil {
		return "", err
	}
	if s.bucket == "" {
		return "", ErrNotConfigured
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}

	_, err = s.client.PutObject(ctx, input)
	observe("upload", err)
	if err != nil {
		return "", errors.Wrapf(err, "could not upload %s", key)
	}
	// an overwritten object must not be served through an old url
	s.cache.Remove(key)
	slog.Info("uploaded file", "path", key, "size", size)
	return key, nil
}

// Delete removes the object. Deleting a missing object is not an error.
func (s *S3Store) Delete(ctx context.Context, p string) error {
	key, err := CleanPath(p)
	if err != nil {
		return err
	}
	if s.bucket == "" {
		return ErrNotConfigured
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	observe("delete", err)
	if err != nil {
		return errors.Wrapf(err, "could not delete %s", key)
	}
	s.cache.Remove(key)
	return nil
}

func (s *S3Store) SignedURL(ctx context.Context, p string) (string, time.Time, error) {
	key, err := CleanPath(p)
	if err != nil {
		return "", time.Time{}, err
	}
	if s.bucket == "" {
		return "", time.Time{}, ErrNotConfigured
	}

	if cached, ok := s.cache.Get(key); ok {
		monitoring.SignedURLCacheHits.Inc()
		return cached.url, cached.expiresAt, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		expiresAt := s.now().Add(s.ttl)
		req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		}, s3.WithPresignExpires(s.ttl))
		observe("presign", err)
		if err != nil {
			return nil, errors.Wrapf(err, "could not sign url for %s", key)
		}
		signed := signedURL{url: req.URL, expiresAt: expiresAt}
		s.cache.Add(key, signed)
		return signed, nil
	})
	if err != nil {
		return "", time.Time{}, err
	}
	signed := v.(signedURL)
	return signed.url, signed.expiresAt, nil
}
