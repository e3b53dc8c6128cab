package asm

import (
	"iter"

	"github.com/ezrec/imemasm/imem"
	"github.com/ezrec/imemasm/internal"
	"github.com/ezrec/imemasm/isa"
)

// Opcode is an assembled source line.
type Opcode struct {
	LineNo   int          // Source line number.
	Words    []string     // Words of the line, after expression expansion.
	Mnemonic isa.Mnemonic // Mnemonic of the line.
	Code     isa.Code     // Encoded instruction word.
}

// Clobbered returns true if the encoded opcode field no longer holds the
// mnemonic. beq offset bits [11:10] land in the opcode field, as do lenient
// operands that overflow.
func (op *Opcode) Clobbered() bool {
	return op.Code.Opcode() != op.Mnemonic
}

// Program is an ordered list of assembled lines.
type Program struct {
	Opcodes []Opcode
}

// Codes iterates over the instruction address and word of each opcode.
func (prog *Program) Codes() iter.Seq2[int, isa.Code] {
	return func(yield func(addr int, code isa.Code) bool) {
		for addr, op := range prog.Opcodes {
			if !yield(addr, op.Code) {
				return
			}
		}
	}
}

// Binary returns the encoded words in program order.
func (prog *Program) Binary() (bins []uint32) {
	for _, code := range prog.Codes() {
		bins = append(bins, uint32(code))
	}

	return
}

// Image fills instruction memory with the program, repeated from the start
// until all imem.DEPTH words are written. Programs longer than imem.DEPTH
// are cut short.
func (prog *Program) Image() (img imem.Image, err error) {
	if len(prog.Opcodes) == 0 {
		err = ErrEmptyProgram
		return
	}

	for n, word := range internal.IterCycle(prog.Binary(), imem.DEPTH) {
		img[n] = word
	}

	return
}
