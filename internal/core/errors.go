package core

import (
	"errors"
	"fmt"
)

// ConversionError reports a source record that cannot be converted. It is
// fatal to the single conversion that raised it; no partial output is
// returned alongside it.
type ConversionError struct {
	Msg string
}

func (e *ConversionError) Error() string {
	return e.Msg
}

func conversionErrorf(format string, args ...any) error {
	return &ConversionError{Msg: fmt.Sprintf(format, args...)}
}

// IsConversionError reports whether err (or anything it wraps) is a
// ConversionError.
func IsConversionError(err error) bool {
	var target *ConversionError
	return errors.As(err, &target)
}
