package repositories

import "errors"

// Storage-level sentinel errors. Services translate these into their own
// taxonomy; handlers never see them directly.
var (
	// ErrRecordNotFound wraps gorm.ErrRecordNotFound so callers do not
	// depend on the driver package.
	ErrRecordNotFound = errors.New("record not found")

	// ErrConflict marks a unique-index violation.
	ErrConflict = errors.New("duplicate key")
)
