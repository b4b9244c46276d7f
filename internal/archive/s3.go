package archive

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/tysiac/internal/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const keyPrefix = "matches"

// objectStore is the part of the S3 client the archive uses
type objectStore interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config holds configuration for the S3 archive
type S3Config struct {
	// Bucket is the name of the S3 bucket, e.g. "tysiac-archive"
	Bucket string
}

// S3Archive writes finished matches as gzipped JSON objects
type S3Archive struct {
	client objectStore
	bucket string
}

// NewS3 loads the default AWS configuration and checks the bucket is reachable.
// Credentials come from the usual sources: environment variables and the
// shared configuration files.
func NewS3(ctx context.Context, cfg *S3Config) (*S3Archive, error) {
	if cfg == nil || cfg.Bucket == "" {
		return nil, errors.New("archive bucket cannot be empty")
	}

	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	archive := &S3Archive{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
	}

	if _, err := archive.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(archive.bucket),
	}); err != nil {
		return nil, fmt.Errorf("head bucket failed for %s: %w", archive.bucket, err)
	}

	return archive, nil
}

// ArchiveMatch uploads a finished match
func (a *S3Archive) ArchiveMatch(ctx context.Context, input *ArchiveMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("match cannot be nil")
	}

	if input.Match.ID == "" {
		return errors.New("match ID cannot be empty")
	}

	body, err := encode(newDocument(input))
	if err != nil {
		return err
	}

	key := objectKey(input.Match)
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:          aws.String(a.bucket),
		Key:             aws.String(key),
		Body:            bytes.NewReader(body),
		ContentType:     aws.String("application/json"),
		ContentEncoding: aws.String("gzip"),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			log.Printf("archive: put %s/%s rejected: %s", a.bucket, key, apiErr.ErrorCode())
		}
		return fmt.Errorf("failed to archive match %s: %w", input.Match.ID, err)
	}

	log.Printf("archive: stored match %s at %s/%s", input.Match.ID, a.bucket, key)
	return nil
}

// objectKey groups archived matches by the year they finished
func objectKey(match *models.Match) string {
	return fmt.Sprintf("%s/%04d/%s.json.gz", keyPrefix, match.UpdatedAt.Year(), match.ID)
}

func encode(doc *document) ([]byte, error) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if err := json.NewEncoder(gw).Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode match %s: %w", doc.ID, err)
	}
	if err := gw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close gzip writer for match %s: %w", doc.ID, err)
	}
	return buf.Bytes(), nil
}
