// Package apperr defines the error taxonomy shared by services and handlers.
// Services wrap these sentinels with %w; handlers translate them into HTTP
// status codes via errors.Is.
package apperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kategori error.
var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrUnknownBahanBaku = errors.New("unknown bahan baku")
	ErrStore            = errors.New("store error")
)

// Failure mode per stage, pesan sama dengan yang dilihat operator.
var (
	ErrNoActiveComposition   = fmt.Errorf("%w: no active mixing compositions, submit mixing data first", ErrNotFound)
	ErrNoUnsterilizedBatches = fmt.Errorf("%w: no unsterilized batches found for the selected pallet", ErrNotFound)
	ErrNoActiveBatch         = fmt.Errorf("%w: no active batch found for the scanned kerat", ErrNotFound)
	ErrNoActiveTransfer      = fmt.Errorf("%w: no active batch transfer found for the scanned kerat", ErrNotFound)
	ErrSegmentEmpty          = fmt.Errorf("%w: no batch found at the specified segmen", ErrNotFound)
	ErrSegmentOccupied       = fmt.Errorf("%w: a batch is already assigned to this segmen", ErrConflict)
)

// Validationf wraps ErrValidation with a formatted reason.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

// Store wraps any other store-level failure so it stays distinguishable from
// the domain categories above.
func Store(err error) error {
	return fmt.Errorf("%w: %v", ErrStore, err)
}

// IsUniqueViolation reports whether err is a store-enforced uniqueness breach:
// either gorm's translated error or a raw Postgres SQLSTATE 23505.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
