package slot

import (
	"context"
	"fmt"
	"time"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// Bucket keeps the slot as one blob object named after the key.
type Bucket struct {
	bucket  *blob.Bucket
	timeout time.Duration
}

func NewBucket(bucket *blob.Bucket, timeout time.Duration) *Bucket {
	return &Bucket{bucket: bucket, timeout: timeout}
}

func (b *Bucket) Read(ctx context.Context, key string) (string, error) {
	bCtx, bCancel := withTimeout(ctx, b.timeout)
	defer bCancel()

	data, err := b.bucket.ReadAll(bCtx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return "", ErrAbsent
	}
	if err != nil {
		return "", fmt.Errorf("failed to read slot %s from bucket: %w", key, err)
	}
	return string(data), nil
}

func (b *Bucket) Write(ctx context.Context, key, value string) error {
	bCtx, bCancel := withTimeout(ctx, b.timeout)
	defer bCancel()

	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := b.bucket.WriteAll(bCtx, key, []byte(value), opts); err != nil {
		return fmt.Errorf("failed to write slot %s into bucket: %w", key, err)
	}
	return nil
}

func (b *Bucket) Close() error {
	return b.bucket.Close()
}
