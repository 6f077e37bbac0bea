package notation

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCharacter      = errors.New("invalid character")
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")
	ErrIllegalParentheses    = errors.New("parentheses are not allowed in prefix or postfix notation")
	ErrInsufficientOperand   = errors.New("insufficient operand")
	ErrInsufficientOperator  = errors.New("insufficient operator")
	ErrWrongFormat           = errors.New("wrong format detected")
	ErrMalformedTree         = errors.New("malformed expression tree")
	ErrUnknownFormat         = errors.New("unknown format")
	ErrNotASCII              = errors.New("only ASCII encoding supported")
	ErrUnexpectedChar        = errors.New("unexpected character")
)

// InvalidCharError reports the first character outside the expression alphabet.
type InvalidCharError struct {
	Char   rune
	Offset int
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("%v %q at offset %d", ErrInvalidCharacter, e.Char, e.Offset)
}

func (e *InvalidCharError) Unwrap() error { return ErrInvalidCharacter }

// WrongFormatError is returned when an expression is malformed in the
// declared notation but well-formed in another one.
type WrongFormatError struct {
	Declared Format
	Actual   Format
}

func (e *WrongFormatError) Error() string {
	return fmt.Sprintf("%v: expression is %s, not %s", ErrWrongFormat, e.Actual, e.Declared)
}

func (e *WrongFormatError) Unwrap() error { return ErrWrongFormat }

// BuildError is a structural violation found while linking a tree.
// Validated input never produces one.
type BuildError struct {
	Format Format
	Offset int
	Err    error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build %s tree at offset %d: %v", e.Format, e.Offset, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }
