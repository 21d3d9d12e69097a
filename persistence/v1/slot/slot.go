// Package slot provides the durable key/value slots the note collection is written to.
package slot

import (
	"context"
	"errors"
	"time"
)

// ErrAbsent is returned by Read when nothing was ever written under the key.
var ErrAbsent = errors.New("slot absent")

// Slot is a durable key/value location holding one text value per key.
type Slot interface {
	Read(ctx context.Context, key string) (string, error)
	Write(ctx context.Context, key, value string) error
	Close() error
}

// withTimeout bounds ctx by d, leaving it untouched when d is not positive
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
