package mark

import "github.com/cockroachdb/errors"

func Wrap(handledErr error, newMarkingError error, msg string) error {
	newErr := errors.Mark(handledErr, newMarkingError)
	return errors.WrapWithDepth(1, newErr, msg)
}

func Message(newMarkingError error, msg string) error {
	err := errors.NewWithDepth(1, msg)
	return errors.Mark(err, newMarkingError)
}

func Messagef(newMarkingError error, format string, args ...any) error {
	err := errors.NewWithDepthf(1, format, args...)
	return errors.Mark(err, newMarkingError)
}
