package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

//go:generate mockgen -destination mocks/mocks.go -package mocks github.com/stac-tools/stac-fetch/content S3Client

// S3Client is the subset of dp-s3's client the store needs.
type S3Client interface {
	Get(ctx context.Context, key string) (io.ReadCloser, *int64, error)
	Head(ctx context.Context, key string) (*s3.HeadObjectOutput, error)
	Upload(ctx context.Context, input *s3.PutObjectInput, options ...func(*manager.Uploader)) (*manager.UploadOutput, error)
	BucketName() string
	Checker(ctx context.Context, state *healthcheck.CheckState) error
}

// Store writes fetched assets and catalog documents to an S3 bucket. It
// implements both the fetch engine's Target contract and the catalog's
// DocumentStore contract. Uploads stream through the S3 upload manager,
// so arbitrarily large files move with bounded memory.
type Store struct {
	s3 S3Client
}

// NewStore returns a Store writing to the bucket behind s3c.
func NewStore(s3c S3Client) *Store {
	return &Store{s3: s3c}
}

// Size returns the byte size of the object at key, and whether the object
// exists.
func (s *Store) Size(ctx context.Context, key string) (int64, bool, error) {
	out, err := s.s3.Head(ctx, key)
	if err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return aws.ToInt64(out.ContentLength), true, nil
}

// Write streams body to the object at key.
func (s *Store) Write(ctx context.Context, key, mediaType string, size int64, body io.Reader) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.s3.BucketName()),
		Key:    aws.String(key),
		Body:   body,
	}
	if mediaType != "" {
		input.ContentType = aws.String(mediaType)
	}

	if _, err := s.s3.Upload(ctx, input); err != nil {
		return fmt.Errorf("upload %q: %w", key, err)
	}
	return nil
}

// URI returns the s3:// address of the object at key.
func (s *Store) URI(key string) string {
	return fmt.Sprintf("s3://%s/%s", s.s3.BucketName(), key)
}

// Put serializes document as JSON and writes it to key.
func (s *Store) Put(ctx context.Context, key string, document any) error {
	b, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	return s.Write(ctx, key, "application/json", int64(len(b)), bytes.NewReader(b))
}

// Get reads the JSON document at key into document.
func (s *Store) Get(ctx context.Context, key string, document any) error {
	body, _, err := s.s3.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("get %q: %w", key, err)
	}
	defer closeBody(ctx, body)

	return json.NewDecoder(body).Decode(document)
}

// Checker delegates to the S3 client's bucket check.
func (s *Store) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	return s.s3.Checker(ctx, state)
}

func isNotFound(err error) bool {
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound"
}

func closeBody(ctx context.Context, closer io.Closer) {
	if err := closer.Close(); err != nil {
		log.Error(ctx, "error closing io.Closer", err)
	}
}
