package asm

import (
	"github.com/ezrec/imemasm/translate"
)

var f = translate.From

var (
	ErrEmptyProgram   = translate.Message("empty program")
	ErrOpcodeMissing  = translate.Message("opcode missing")
	ErrOperandMissing = translate.Message("operand missing")
	ErrOperandExtra   = translate.Message("excessive operands")
	ErrPartialOperand = translate.Message("expression is not a whole operand")
)

// ErrUnknownMnemonic is a mnemonic outside every instruction class.
type ErrUnknownMnemonic string

func (err ErrUnknownMnemonic) Error() string {
	return f("unknown mnemonic '%v'", string(err))
}

// ErrParseExpression is a $(...) expression that does not evaluate to an
// integer.
type ErrParseExpression struct {
	Expr string
	Err  error
}

func (err *ErrParseExpression) Error() string {
	if err.Err == nil {
		return f("$(%v) is not an integer expression", err.Expr)
	}
	return f("$(%v) %v", err.Expr, err.Err)
}

func (err *ErrParseExpression) Unwrap() error {
	return err.Err
}

// ErrSyntax locates an error in the assembly source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
