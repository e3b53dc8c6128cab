package isa

import (
	"slices"
)

// Class is an instruction class.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	CLASS_REG  = Class(0) // reg
	CLASS_MEM  = Class(1) // mem
	CLASS_CTRL = Class(2) // ctrl
)

// Mnemonic is an instruction mnemonic. Its value is the 7-bit opcode.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	OP_ADD = Mnemonic(0x00) // add
	OP_SUB = Mnemonic(0x01) // sub
	OP_MUL = Mnemonic(0x02) // mul
	OP_LDB = Mnemonic(0x10) // ldb
	OP_LDW = Mnemonic(0x11) // ldw
	OP_STB = Mnemonic(0x12) // stb
	OP_STW = Mnemonic(0x13) // stw
	OP_BEQ = Mnemonic(0x30) // beq
	OP_JMP = Mnemonic(0x31) // jmp
)

// classOps are the mnemonic groups of each class.
var classOps = [...][]Mnemonic{
	CLASS_REG:  {OP_ADD, OP_SUB, OP_MUL},
	CLASS_MEM:  {OP_LDB, OP_LDW, OP_STB, OP_STW},
	CLASS_CTRL: {OP_BEQ, OP_JMP},
}

// mnemonicMap maps the assembly text of a mnemonic to its opcode.
var mnemonicMap = func() map[string]Mnemonic {
	names := make(map[string]Mnemonic, 9)
	for _, ops := range classOps {
		for _, op := range ops {
			names[op.String()] = op
		}
	}
	return names
}()

// Mnemonics returns the mnemonics of the class, in opcode order.
func (cls Class) Mnemonics() []Mnemonic {
	if cls < 0 || int(cls) >= len(classOps) {
		return nil
	}
	return slices.Clone(classOps[cls])
}

// LookupMnemonic returns the mnemonic spelled by name.
func LookupMnemonic(name string) (op Mnemonic, ok bool) {
	op, ok = mnemonicMap[name]
	return
}

// Class returns the instruction class of the mnemonic.
func (op Mnemonic) Class() (cls Class, ok bool) {
	for n, ops := range classOps {
		if slices.Contains(ops, op) {
			return Class(n), true
		}
	}
	return
}

// Valid returns true if op is a defined mnemonic.
func (op Mnemonic) Valid() bool {
	_, ok := op.Class()
	return ok
}
