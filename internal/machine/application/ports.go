package application

import (
	"context"
)

// Repository is the document-store port for machine records.
type Repository interface {
	// Snapshot returns the stored document for a machine without any
	// field filtering. It returns ErrNotFound when no record exists.
	Snapshot(ctx context.Context, machineID string) (map[string]any, error)

	// ApplyPurchase decrements every product's stock by its stored
	// cantidad inside a single transactional read-modify-write,
	// clamping at zero. It reports false when the record is absent.
	ApplyPurchase(ctx context.Context, machineID string) (bool, error)
}
