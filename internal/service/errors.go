package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors the handler layer maps onto HTTP statuses. Wrap with
// fmt.Errorf("%w: …") to add detail while keeping errors.Is matching.
var (
	// ErrNotFound: unknown entity id — distinct from validation failures.
	ErrNotFound = errors.New("not found")
	// ErrValidation: caller sent something structurally fine but semantically wrong.
	ErrValidation = errors.New("validation failed")
	// ErrTransient: the backing store failed mid-operation; the whole call may be retried.
	ErrTransient = errors.New("transient storage error")
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// notFoundOr translates gorm's record-not-found into the service sentinel and
// leaves everything else untouched.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
