package regexeng

import "errors"

var (
	// ErrInvalidArgument is returned by modifier operations given a count
	// or range they cannot express.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrWrongKind is returned when an operation is applied to a fragment
	// kind that does not support it.
	ErrWrongKind = errors.New("wrong fragment kind")
)
