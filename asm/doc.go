// Package asm assembles instruction text into an instruction memory image.
//
// Each line holds one instruction, `MNEMONIC OP1, OP2, OP3`. Register
// operands are a letter prefix and digits (`r12`), offsets are hexadecimal
// with an optional `0x` prefix and sign. A `$(...)` operand is evaluated as
// a constant expression and replaced by its hexadecimal value.
//
// There are no labels, equates or macros: every line encodes to exactly one
// word without reference to any other line.
package asm
