package commons

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every error returned for an invalid argument.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError is returned when a caller passes a value a function cannot accept.
type InvalidArgumentError struct {
	Message string
}

// NewInvalidArgument creates [InvalidArgumentError] with formatted message.
func NewInvalidArgument(format string, args ...interface{}) *InvalidArgumentError {
	return &InvalidArgumentError{Message: fmt.Sprintf(format, args...)}
}

func (err *InvalidArgumentError) Error() string {
	if len(err.Message) == 0 {
		return ErrInvalidArgument.Error()
	}
	return err.Message
}

func (err *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
