package machine

import "errors"

var (
	// ErrIndexOutOfRange indicates a button references a target index ≥ target length.
	ErrIndexOutOfRange = errors.New("machine: button index out of target range")
	// ErrNegativeTarget indicates a target value below zero.
	ErrNegativeTarget = errors.New("machine: target value must be non-negative")
	// ErrEmptyTarget indicates a machine with no target positions at all.
	ErrEmptyTarget = errors.New("machine: target must have at least one position")
	// ErrPressLength indicates a replay press vector whose length differs from the button count.
	ErrPressLength = errors.New("machine: press vector length must equal button count")
	// ErrBadLine indicates an input line that does not match the machine grammar.
	ErrBadLine = errors.New("machine: malformed machine line")
	// ErrLengthMismatch indicates a counter-target list whose length differs from the diagram.
	ErrLengthMismatch = errors.New("machine: counter targets must be parallel to the diagram")
)
