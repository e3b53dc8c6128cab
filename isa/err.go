package isa

import (
	"github.com/ezrec/imemasm/translate"
)

var f = translate.From

// ErrParseRegister is a register operand with no decodable index.
type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

// ErrParseNumber is an immediate operand that is not a number.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrFieldOverflow is a decoded operand that does not fit its field.
type ErrFieldOverflow struct {
	Field string // Name of the field.
	Value int64  // Decoded operand value.
	Max   uint64 // Largest value the field holds.
}

func (err *ErrFieldOverflow) Error() string {
	return f("%v value %#x exceeds field maximum %#x", err.Field, err.Value, err.Max)
}
