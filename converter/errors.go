package converter

import (
	"errors"
	"fmt"
)

// Category classifies a conversion failure so that the remote boundary can
// map it onto a stable, human-readable message.
type Category string

const (
	// CategoryNotFound – the source path does not exist.
	CategoryNotFound Category = "not_found"
	// CategoryParse – malformed CSV structure (quoting, delimiter sequence).
	CategoryParse Category = "parse"
	// CategoryEncoding – bytes cannot be decoded under the declared encoding.
	CategoryEncoding Category = "encoding"
	// CategoryOption – unsupported option value, e.g. an unknown orient.
	CategoryOption Category = "option"
	// CategoryUnknown – anything outside the taxonomy above.
	CategoryUnknown Category = "unknown"
)

// Error associates an underlying failure with one Category.
type Error struct {
	Category Category
	err      error
}

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

func newError(category Category, format string, args ...interface{}) *Error {
	return &Error{Category: category, err: fmt.Errorf(format, args...)}
}

// CategoryOf extracts the failure category; errors raised outside the
// converter taxonomy report CategoryUnknown.
func CategoryOf(err error) Category {
	var converterErr *Error
	if errors.As(err, &converterErr) {
		return converterErr.Category
	}
	return CategoryUnknown
}
