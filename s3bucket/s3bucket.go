package s3bucket

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gabriel-vasile/mimetype"
	"github.com/handlewall/backend/filestore"
)

// S3Bucket is a file area backed by an S3 bucket. Objects are stored under
// keyPrefix/name.
type S3Bucket struct {
	client    *s3.Client
	bucket    string
	keyPrefix string
}

func NewS3Bucket(cfg aws.Config, bucket string, keyPrefix string) *S3Bucket {
	return &S3Bucket{
		client:    s3.NewFromConfig(cfg),
		bucket:    bucket,
		keyPrefix: keyPrefix,
	}
}

func (bucket *S3Bucket) key(name string) string {
	return path.Join(bucket.keyPrefix, name)
}

// Put uploads content under name. The media type is detected from the bytes.
func (bucket *S3Bucket) Put(ctx context.Context, name string, content io.Reader) error {
	body, err := io.ReadAll(content)
	if err != nil {
		return fmt.Errorf("failed to read upload: %w", err)
	}
	mediaType := mimetype.Detect(body).String()
	key := bucket.key(name)

	_, err = bucket.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &bucket.bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: &mediaType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

func (bucket *S3Bucket) Open(ctx context.Context, name string) (io.ReadSeekCloser, time.Time, error) {
	key := bucket.key(name)
	output, err := bucket.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket.bucket,
		Key:    &key,
	})
	if err != nil {
		if isNotFound(err) {
			return nil, time.Time{}, filestore.ErrNotFound
		}
		return nil, time.Time{}, fmt.Errorf("failed to download object: %w", err)
	}
	defer output.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(output.Body); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to read object: %w", err)
	}

	var modTime time.Time
	if output.LastModified != nil {
		modTime = *output.LastModified
	}
	return nopCloser{bytes.NewReader(buf.Bytes())}, modTime, nil
}

func (bucket *S3Bucket) Remove(ctx context.Context, name string) error {
	key := bucket.key(name)
	_, err := bucket.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &bucket.bucket,
		Key:    &key,
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var responseError *awshttp.ResponseError
	return errors.As(err, &responseError) &&
		responseError.HTTPStatusCode() == http.StatusNotFound
}

type nopCloser struct {
	*bytes.Reader
}

func (nopCloser) Close() error { return nil }
