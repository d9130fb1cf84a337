package book

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks in against the book rules. The name rule is reported
// before the page rule when both fail.
func Validate(in Input) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate book: %w", err)
	}

	failed := make(map[string]bool, len(fieldErrs))
	for _, fe := range fieldErrs {
		failed[fe.StructField()] = true
	}

	switch {
	case failed["Name"]:
		return ErrMissingName
	case failed["ReadPage"]:
		return ErrReadPageExceedsPageCount
	default:
		return fmt.Errorf("%w: %s", ErrValidation, fieldErrs.Error())
	}
}
