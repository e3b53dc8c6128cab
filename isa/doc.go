// Package isa defines the instruction set of the simulated processor.
//
// Every instruction is a single 32-bit word with a 7-bit opcode in bits
// [31:25]. Three instruction classes share that opcode field:
//
//	reg   add sub mul          | op | rd | rs1 | rs2 | 0      |
//	mem   ldb ldw stb stw      | op | rd | rs1 | offset[14:0] |
//	ctrl  beq                  | op | -  | rs1 | rs2 | off[9:0]
//	      jmp                  | op | off[14:10] | rs | - | off[9:0]
//
// The control class packs its offset as masked chunks. The upper chunks are
// shifted by their mask position plus 20 (beq, jmp) or 10 (jmp), so the beq
// bits [14:10] land at word bits [34:30] and the jmp bits [19:15] land past
// bit 31. The word is truncated to 32 bits, which matches the processor's
// existing preload images.
package isa
