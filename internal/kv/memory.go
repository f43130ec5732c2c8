package kv

import (
	"context"
	"slices"
)

// MemorySlot keeps the blob in process memory.
type MemorySlot struct {
	data    []byte
	present bool

	// Limit caps the blob size in bytes when positive.
	Limit int64
	// ReadErr and WriteErr, when set, are returned instead of touching the blob.
	ReadErr  error
	WriteErr error

	writes int
}

// NewMemorySlot returns an empty slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// NewMemorySlotWith returns a slot already holding data.
func NewMemorySlotWith(data []byte) *MemorySlot {
	return &MemorySlot{data: slices.Clone(data), present: true}
}

func (s *MemorySlot) Read(ctx context.Context) ([]byte, error) {
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	if !s.present {
		return nil, ErrAbsent
	}
	return slices.Clone(s.data), nil
}

func (s *MemorySlot) Write(ctx context.Context, data []byte) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	if err := checkQuota(s.Limit, data); err != nil {
		return err
	}
	s.data = slices.Clone(data)
	s.present = true
	s.writes++
	return nil
}

// Writes counts successful writes.
func (s *MemorySlot) Writes() int {
	return s.writes
}

// Bytes returns the stored blob, or nil when nothing has been written.
func (s *MemorySlot) Bytes() []byte {
	if !s.present {
		return nil
	}
	return slices.Clone(s.data)
}
