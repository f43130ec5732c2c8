// Package kv holds the single-key slots the journal is persisted into.
package kv

import (
	"context"
	"errors"
)

// ErrAbsent is returned by Read when nothing has been stored yet.
var ErrAbsent = errors.New("slot is empty")

// ErrQuotaExceeded is returned by Write when the blob is larger than the slot allows.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Slot is a durable location holding one serialized blob. Write replaces the
// whole blob; readers never observe a partial write.
type Slot interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

func checkQuota(limit int64, data []byte) error {
	if limit > 0 && int64(len(data)) > limit {
		return ErrQuotaExceeded
	}
	return nil
}
