package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrBadID is returned when an identifier does not parse as a UUID.
	ErrBadID = errors.New("malformatted id")
	// ErrInvalidCredentials is deliberately generic: it never reveals
	// whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ConflictError signals a uniqueness violation on a designated field.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s must be unique", e.Field)
}

// checkID validates identifier syntax before the repository is touched.
// Only the canonical hyphenated lowercase form is accepted; uuid.Parse
// alone would also admit bare-hex, braced and urn-prefixed variants that
// can never match a stored identifier.
func checkID(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.String() != id {
		return ErrBadID
	}
	return nil
}
