package asm

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Listing writes a table of the program: source line, address, encoded
// word, instruction class and source words.
func (prog *Program) Listing(w io.Writer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Line", "Addr", "Word", "Class", "Source", "Note"})

	for addr, op := range prog.Opcodes {
		cls, _ := op.Mnemonic.Class()

		var note string
		if op.Clobbered() {
			note = f("opcode reads as %v", fmt.Sprintf("0x%02x", int(op.Code.Opcode())))
		}

		tw.AppendRow(table.Row{
			op.LineNo,
			fmt.Sprintf("0x%02x", addr),
			fmt.Sprintf("0x%08x", uint32(op.Code)),
			cls.String(),
			strings.Join(op.Words, " "),
			note,
		})
	}

	tw.Render()
}
