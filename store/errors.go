package store

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors returned by the stores. Controllers branch on these with
// errors.Is and map them onto the HTTP surface; no caller ever inspects
// driver message text.
var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("duplicate record")
	ErrInvalidReference = errors.New("invalid reference")
)

// classify maps GORM errors onto the store sentinels. Anything unrecognized
// is passed through and surfaces as an internal error upstream.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrInvalidReference
	default:
		return err
	}
}
