// Package store provides durable key/value JSON blob storage on top of an
// Encore object-storage bucket. Every write is a full-value replace; there
// is no update-in-place and no locking, so concurrent writers to the same
// key race and the last completed write wins.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"encore.dev/rlog"
	"encore.dev/storage/objects"
)

var (
	// ErrNotFound reports that no object exists at the requested key.
	ErrNotFound = errors.New("content not found")
	// ErrMalformedContent reports that the stored bytes are not valid JSON.
	ErrMalformedContent = errors.New("stored content is not valid JSON")
)

// ContentStore is the narrow storage contract the rest of the service
// consumes.
type ContentStore interface {
	Put(ctx context.Context, key string, content any, tags map[string]string) (string, error)
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// BucketStore implements ContentStore over an object-storage bucket.
type BucketStore struct {
	bucket *objects.Bucket
}

func NewBucketStore(bucket *objects.Bucket) *BucketStore {
	return &BucketStore{bucket: bucket}
}

// Put serializes content to an indented JSON document and writes it with
// overwrite semantics, then verifies the write by re-checking existence.
// A failure before completion leaves the previous value (or absence)
// unchanged from the caller's perspective.
func (s *BucketStore) Put(ctx context.Context, key string, content any, tags map[string]string) (string, error) {
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal content for %s: %w", key, err)
	}

	writer := s.bucket.Upload(ctx, key, objects.WithUploadAttrs(objects.UploadAttrs{
		ContentType: "application/json",
	}))
	if _, err := writer.Write(data); err != nil {
		writer.Abort(err)
		return "", fmt.Errorf("write %s: %w", key, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finalize %s: %w", key, err)
	}

	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return "", fmt.Errorf("verify %s: %w", key, err)
	}
	if !exists {
		return "", fmt.Errorf("verify %s: object missing after write", key)
	}

	rlog.Debug("stored content", "key", key, "size", len(data), "tags", tags)
	return key, nil
}

// Get downloads and parses the object at key. It fails with ErrNotFound
// when the key is absent and ErrMalformedContent when the stored bytes do
// not parse as JSON.
func (s *BucketStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	reader := s.bucket.Download(ctx, key)
	data, err := io.ReadAll(reader)
	if cerr := reader.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if errors.Is(err, objects.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("download %s: %w", key, err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrMalformedContent, key)
	}
	return json.RawMessage(data), nil
}

// Exists reports whether an object is present at key.
func (s *BucketStore) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check %s: %w", key, err)
	}
	return exists, nil
}
