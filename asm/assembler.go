// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"strings"

	"github.com/ezrec/imemasm/imem"
	"github.com/ezrec/imemasm/isa"
)

// Assembler is a single pass, one word per line assembler. Its methods
// do not modify it, so one Assembler may be shared between goroutines.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	// Lenient skips operand range checks. Out of range values bleed into
	// the neighbouring fields, and surplus operands are ignored.
	Lenient bool

	// DecimalControlRegisters decodes the beq rs2 and jmp rs operands in
	// base 10. By default their digits are read as hexadecimal, so "r10"
	// is register 16, as existing preload images were built.
	DecimalControlRegisters bool
}

// EncodeLine encodes a single instruction line.
func (asm *Assembler) EncodeLine(line string) (code isa.Code, err error) {
	_, code, err = asm.encode(line, 0)
	return
}

// BuildImage encodes every line, in order, and fills the instruction
// memory image by repeating the program.
func (asm *Assembler) BuildImage(lines []string) (img imem.Image, err error) {
	prog := &Program{}

	for n, line := range lines {
		var opcode Opcode
		opcode, err = asm.assemble(line, n+1)
		if err != nil {
			err = &ErrSyntax{LineNo: n + 1, Line: line, Err: err}
			return
		}
		prog.Opcodes = append(prog.Opcodes, opcode)
	}

	return prog.Image()
}

// Parse parses an input stream into a Program.
//
// Text after a ';' is a comment. Blank lines are skipped.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		var opcode Opcode
		opcode, err = asm.assemble(line, lineno)
		if err != nil {
			prog = nil
			return
		}
		prog.Opcodes = append(prog.Opcodes, opcode)
	}

	err = scanner.Err()
	if err != nil {
		prog = nil
		return
	}

	return
}

// assemble encodes a line into an opcode.
func (asm *Assembler) assemble(line string, lineno int) (opcode Opcode, err error) {
	words, code, err := asm.encode(line, lineno)
	if err != nil {
		return
	}

	op, _ := isa.LookupMnemonic(words[0])
	opcode = Opcode{LineNo: lineno, Words: words, Mnemonic: op, Code: code}

	if asm.Verbose {
		log.Printf("%v: %v => 0x%08x\n", lineno, strings.Join(words, " "), uint32(code))
		if opcode.Clobbered() {
			log.Printf("%v: offset bits overwrote the %v opcode\n", lineno, op)
		}
	}

	return
}

// splitLine expands $(...) expressions and splits a line into words.
func splitLine(line string, lineno int) (words []string, err error) {
	line, err = expandLine(line, lineno)
	if err != nil {
		return
	}

	words = strings.Fields(strings.ReplaceAll(line, ",", " "))
	return
}

// encode splits and encodes a line.
func (asm *Assembler) encode(line string, lineno int) (words []string, code isa.Code, err error) {
	words, err = splitLine(line, lineno)
	if err != nil {
		return
	}

	if len(words) == 0 {
		err = ErrOpcodeMissing
		return
	}

	op, ok := isa.LookupMnemonic(words[0])
	if !ok {
		err = ErrUnknownMnemonic(words[0])
		return
	}

	args := words[1:]

	cls, _ := op.Class()
	switch cls {
	case isa.CLASS_REG:
		code, err = asm.encodeReg(op, args)
	case isa.CLASS_MEM:
		code, err = asm.encodeMem(op, args)
	case isa.CLASS_CTRL:
		code, err = asm.encodeCtrl(op, args)
	}

	return
}

// operands checks the operand count of an instruction.
func (asm *Assembler) operands(args []string, count int) (err error) {
	if len(args) < count {
		err = ErrOperandMissing
		return
	}

	if len(args) > count && !asm.Lenient {
		err = ErrOperandExtra
		return
	}

	return
}

// register decodes a register operand for a field.
func (asm *Assembler) register(fld isa.Field, token string, base int) (bits uint64, err error) {
	index, err := isa.DecodeRegister(token, base)
	if err != nil {
		return
	}

	if asm.Lenient {
		bits = uint64(index)
		return
	}

	return fld.Unsigned(index)
}

// offset decodes a hexadecimal offset operand for a field.
func (asm *Assembler) offset(fld isa.Field, token string) (bits uint64, err error) {
	value, err := isa.DecodeImmediate(token, 16)
	if err != nil {
		return
	}

	if asm.Lenient {
		bits = uint64(value)
		return
	}

	return fld.Signed(value)
}

// controlBase is the base of the beq rs2 and jmp rs register digits.
func (asm *Assembler) controlBase() int {
	if asm.DecimalControlRegisters {
		return 10
	}
	return 16
}

// encodeReg encodes `op rd, rs1, rs2`.
func (asm *Assembler) encodeReg(op isa.Mnemonic, args []string) (code isa.Code, err error) {
	err = asm.operands(args, 3)
	if err != nil {
		return
	}

	rd, err := asm.register(isa.FIELD_RD, args[0], 10)
	if err != nil {
		return
	}
	rs1, err := asm.register(isa.FIELD_RS1, args[1], 10)
	if err != nil {
		return
	}
	rs2, err := asm.register(isa.FIELD_RS2, args[2], 10)
	if err != nil {
		return
	}

	code = isa.MakeCodeReg(op, rd, rs1, rs2)
	return
}

// encodeMem encodes `op rd, rs1, offset`.
func (asm *Assembler) encodeMem(op isa.Mnemonic, args []string) (code isa.Code, err error) {
	err = asm.operands(args, 3)
	if err != nil {
		return
	}

	rd, err := asm.register(isa.FIELD_RD, args[0], 10)
	if err != nil {
		return
	}
	rs1, err := asm.register(isa.FIELD_RS1, args[1], 10)
	if err != nil {
		return
	}
	offset, err := asm.offset(isa.FIELD_MEM_OFFSET, args[2])
	if err != nil {
		return
	}

	code = isa.MakeCodeMem(op, rd, rs1, offset)
	return
}

// encodeCtrl encodes `beq rs1, rs2, offset` and `jmp rs, offset`.
func (asm *Assembler) encodeCtrl(op isa.Mnemonic, args []string) (code isa.Code, err error) {
	switch op {
	case isa.OP_BEQ:
		err = asm.operands(args, 3)
		if err != nil {
			return
		}

		var rs1, rs2, offset uint64
		rs1, err = asm.register(isa.FIELD_RS1, args[0], 10)
		if err != nil {
			return
		}
		rs2, err = asm.register(isa.FIELD_RS2, args[1], asm.controlBase())
		if err != nil {
			return
		}
		offset, err = asm.offset(isa.FIELD_BEQ_OFFSET, args[2])
		if err != nil {
			return
		}

		code = isa.MakeCodeBeq(rs1, rs2, offset)
	case isa.OP_JMP:
		err = asm.operands(args, 2)
		if err != nil {
			return
		}

		var rs, offset uint64
		rs, err = asm.register(isa.FIELD_RS1, args[0], asm.controlBase())
		if err != nil {
			return
		}
		offset, err = asm.offset(isa.FIELD_JMP_OFFSET, args[1])
		if err != nil {
			return
		}

		code = isa.MakeCodeJmp(rs, offset)
	default:
		err = ErrUnknownMnemonic(op.String())
	}

	return
}
