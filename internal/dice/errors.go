package dice

import "errors"

// ErrInvalidNotation is matched by every notation parse failure.
var ErrInvalidNotation = errors.New("invalid dice notation")

// InvalidNotationError reports an input that holds no usable die group.
type InvalidNotationError struct {
	Input string
}

func (e *InvalidNotationError) Error() string {
	return "Invalid dice notation: " + e.Input
}

// Unwrap lets errors.Is match ErrInvalidNotation.
func (e *InvalidNotationError) Unwrap() error {
	return ErrInvalidNotation
}

func invalid(input string) error {
	return &InvalidNotationError{Input: input}
}
