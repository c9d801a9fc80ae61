package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// phonePattern accepts either a plain digit string of at least eight digits,
// or any number containing a 2-3 digit group, a hyphen and at least five
// more digits. The hyphenated form is matched unanchored, so multi-group
// numbers like "39-44-5323523" are accepted.
var phonePattern = regexp.MustCompile(`(^\d{8,}$)|(\d{2,3}-\d{5,})`)

// RecordError carries every constraint a record violated, not just the
// first one found.
type RecordError struct {
	Reasons []string
}

func (e *RecordError) Error() string {
	return strings.Join(e.Reasons, ", ")
}

// NewRecordError builds a RecordError from explicit reasons. Used for checks
// that live outside struct tags, such as the plaintext password policy.
func NewRecordError(reasons ...string) *RecordError {
	return &RecordError{Reasons: reasons}
}

// Validator checks entity records against their field constraints.
// Uniqueness is not checked here; only the database has global visibility.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom phone rule registered.
func New() *Validator {
	v := validator.New()
	// RegisterValidation only fails for an empty tag name.
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("validation: registering phone rule: %v", err))
	}
	return &Validator{validate: v}
}

// Struct runs every tag-level check on the record and returns a RecordError
// listing all violations, or nil when the record is valid.
func (vd *Validator) Struct(record interface{}) error {
	err := vd.validate.Struct(record)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError: the caller passed a non-struct.
		panic(fmt.Sprintf("validation: %v", err))
	}
	recordErr := &RecordError{}
	for _, fieldErr := range validationErrors {
		recordErr.Reasons = append(recordErr.Reasons, reason(fieldErr))
	}
	return recordErr
}

// reason renders one field violation as a human-readable message.
func reason(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "phone":
		return fmt.Sprintf("%s is not a valid phone number", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid identifier", field)
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", field, fe.Tag())
	}
}
