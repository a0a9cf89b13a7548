package store

import (
	"context"
	"errors"
)

// DefaultKey names the persisted profile slot.
const DefaultKey = "linkforce_profile_data_v4"

// ErrSlotEmpty is returned by Slot.Read when nothing has been saved yet.
var ErrSlotEmpty = errors.New("slot is empty")

// Slot is a single key-value location holding the serialized profile.
type Slot interface {
	// Read returns the stored bytes or ErrSlotEmpty.
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the stored bytes.
	Write(ctx context.Context, data []byte) error
	// Clear removes the stored bytes. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
	// Describe identifies the slot in logs.
	Describe() string
}
