package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Sentinel errors returned by every repository implementation. No raw
// database error crosses the repository boundary uncategorized.
var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicate   = errors.New("duplicate key value")
	ErrUnavailable = errors.New("storage unavailable")
)

// translateError maps a GORM error onto the repository sentinels. Requires
// gorm.Config{TranslateError: true} so driver-specific duplicate-key errors
// arrive as gorm.ErrDuplicatedKey.
func translateError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}
