package isa

// Field is a fixed position bit slice of an instruction word.
type Field struct {
	Name  string // Name used in diagnostics.
	Shift uint   // Bit position of the field LSB.
	Width uint   // Field width in bits.
}

var (
	FIELD_OPCODE = Field{Name: "opcode", Shift: 25, Width: 7}
	FIELD_RD     = Field{Name: "rd", Shift: 20, Width: 5}
	FIELD_RS1    = Field{Name: "rs1", Shift: 15, Width: 5}
	FIELD_RS2    = Field{Name: "rs2", Shift: 10, Width: 5}

	FIELD_MEM_OFFSET = Field{Name: "offset", Shift: 0, Width: 15}
	FIELD_BEQ_OFFSET = Field{Name: "offset", Shift: 0, Width: 15}
	FIELD_JMP_OFFSET = Field{Name: "offset", Shift: 0, Width: 20}
)

// Control class offset chunks.
const (
	BEQ_OFFSET_LO = 0x003ff
	BEQ_OFFSET_HI = 0x07c00

	JMP_OFFSET_LO  = 0x003ff
	JMP_OFFSET_MID = 0x07c00
	JMP_OFFSET_HI  = 0xf8000
)

// Max returns the largest unsigned value the field holds.
func (fld Field) Max() uint64 {
	return (uint64(1) << fld.Width) - 1
}

// Unsigned returns value as field bits, if it is in [0, Max()].
func (fld Field) Unsigned(value int64) (bits uint64, err error) {
	if value < 0 || uint64(value) > fld.Max() {
		err = &ErrFieldOverflow{Field: fld.Name, Value: value, Max: fld.Max()}
		return
	}

	bits = uint64(value)
	return
}

// Signed returns the two's complement field bits of value, if it is in
// [-2^(Width-1), Max()].
func (fld Field) Signed(value int64) (bits uint64, err error) {
	low := -(int64(1) << (fld.Width - 1))
	if value < low || (value > 0 && uint64(value) > fld.Max()) {
		err = &ErrFieldOverflow{Field: fld.Name, Value: value, Max: fld.Max()}
		return
	}

	bits = uint64(value) & fld.Max()
	return
}

// Extract returns the field bits of a code.
func (fld Field) Extract(code Code) uint32 {
	return (uint32(code) >> fld.Shift) & uint32(fld.Max())
}

// Code is a single 32-bit instruction word.
type Code uint32

// makeCode sums the opcode and the pre-positioned fields, truncating the
// result to 32 bits.
func makeCode(op Mnemonic, fields ...uint64) Code {
	word := uint64(op) << FIELD_OPCODE.Shift
	for _, field := range fields {
		word += field
	}

	return Code(uint32(word))
}

// MakeCodeReg creates a register-type instruction.
func MakeCodeReg(op Mnemonic, rd, rs1, rs2 uint64) Code {
	return makeCode(op,
		rd<<FIELD_RD.Shift,
		rs1<<FIELD_RS1.Shift,
		rs2<<FIELD_RS2.Shift,
	)
}

// MakeCodeMem creates a load or store instruction.
func MakeCodeMem(op Mnemonic, rd, rs1, offset uint64) Code {
	return makeCode(op,
		rd<<FIELD_RD.Shift,
		rs1<<FIELD_RS1.Shift,
		offset,
	)
}

// MakeCodeBeq creates a branch-if-equal instruction.
//
// Offset bits [14:10] are shifted 20 past their mask position.
func MakeCodeBeq(rs1, rs2, offset uint64) Code {
	return makeCode(OP_BEQ,
		rs1<<FIELD_RS1.Shift,
		rs2<<FIELD_RS2.Shift,
		(offset&BEQ_OFFSET_HI)<<20,
		offset&BEQ_OFFSET_LO,
	)
}

// MakeCodeJmp creates an unconditional jump instruction.
//
// Offset bits [19:15] are shifted 20 and bits [14:10] are shifted 10 past
// their mask positions.
func MakeCodeJmp(rs, offset uint64) Code {
	return makeCode(OP_JMP,
		rs<<FIELD_RS1.Shift,
		(offset&JMP_OFFSET_HI)<<20,
		(offset&JMP_OFFSET_MID)<<10,
		offset&JMP_OFFSET_LO,
	)
}

// Opcode returns the mnemonic in the opcode field.
func (code Code) Opcode() Mnemonic {
	return Mnemonic(FIELD_OPCODE.Extract(code))
}
