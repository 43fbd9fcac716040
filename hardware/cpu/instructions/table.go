// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

package instructions

// the official instruction set, one entry per opcode
var definitions = []Definition{
	{0x69, Adc, Immediate, Read},
	{0x65, Adc, ZeroPage, Read},
	{0x75, Adc, ZeroPageIndexedX, Read},
	{0x6d, Adc, Absolute, Read},
	{0x7d, Adc, AbsoluteIndexedX, Read},
	{0x79, Adc, AbsoluteIndexedY, Read},
	{0x61, Adc, IndexedIndirect, Read},
	{0x71, Adc, IndirectIndexed, Read},

	{0x29, And, Immediate, Read},
	{0x25, And, ZeroPage, Read},
	{0x35, And, ZeroPageIndexedX, Read},
	{0x2d, And, Absolute, Read},
	{0x3d, And, AbsoluteIndexedX, Read},
	{0x39, And, AbsoluteIndexedY, Read},
	{0x21, And, IndexedIndirect, Read},
	{0x31, And, IndirectIndexed, Read},

	{0x0a, Asl, Accumulator, RMW},
	{0x06, Asl, ZeroPage, RMW},
	{0x16, Asl, ZeroPageIndexedX, RMW},
	{0x0e, Asl, Absolute, RMW},
	{0x1e, Asl, AbsoluteIndexedX, RMW},

	{0x90, Bcc, Relative, Flow},
	{0xb0, Bcs, Relative, Flow},
	{0xf0, Beq, Relative, Flow},
	{0x30, Bmi, Relative, Flow},
	{0xd0, Bne, Relative, Flow},
	{0x10, Bpl, Relative, Flow},
	{0x50, Bvc, Relative, Flow},
	{0x70, Bvs, Relative, Flow},

	{0x24, Bit, ZeroPage, Read},
	{0x2c, Bit, Absolute, Read},

	{0x00, Brk, Implied, Interrupt},

	{0x18, Clc, Implied, Read},
	{0xd8, Cld, Implied, Read},
	{0x58, Cli, Implied, Read},
	{0xb8, Clv, Implied, Read},

	{0xc9, Cmp, Immediate, Read},
	{0xc5, Cmp, ZeroPage, Read},
	{0xd5, Cmp, ZeroPageIndexedX, Read},
	{0xcd, Cmp, Absolute, Read},
	{0xdd, Cmp, AbsoluteIndexedX, Read},
	{0xd9, Cmp, AbsoluteIndexedY, Read},
	{0xc1, Cmp, IndexedIndirect, Read},
	{0xd1, Cmp, IndirectIndexed, Read},

	{0xe0, Cpx, Immediate, Read},
	{0xe4, Cpx, ZeroPage, Read},
	{0xec, Cpx, Absolute, Read},

	{0xc0, Cpy, Immediate, Read},
	{0xc4, Cpy, ZeroPage, Read},
	{0xcc, Cpy, Absolute, Read},

	{0xc6, Dec, ZeroPage, RMW},
	{0xd6, Dec, ZeroPageIndexedX, RMW},
	{0xce, Dec, Absolute, RMW},
	{0xde, Dec, AbsoluteIndexedX, RMW},
	{0xca, Dex, Implied, Read},
	{0x88, Dey, Implied, Read},

	{0x49, Eor, Immediate, Read},
	{0x45, Eor, ZeroPage, Read},
	{0x55, Eor, ZeroPageIndexedX, Read},
	{0x4d, Eor, Absolute, Read},
	{0x5d, Eor, AbsoluteIndexedX, Read},
	{0x59, Eor, AbsoluteIndexedY, Read},
	{0x41, Eor, IndexedIndirect, Read},
	{0x51, Eor, IndirectIndexed, Read},

	{0xe6, Inc, ZeroPage, RMW},
	{0xf6, Inc, ZeroPageIndexedX, RMW},
	{0xee, Inc, Absolute, RMW},
	{0xfe, Inc, AbsoluteIndexedX, RMW},
	{0xe8, Inx, Implied, Read},
	{0xc8, Iny, Implied, Read},

	{0x4c, Jmp, Absolute, Flow},
	{0x6c, Jmp, Indirect, Flow},
	{0x20, Jsr, Absolute, Subroutine},

	{0xa9, Lda, Immediate, Read},
	{0xa5, Lda, ZeroPage, Read},
	{0xb5, Lda, ZeroPageIndexedX, Read},
	{0xad, Lda, Absolute, Read},
	{0xbd, Lda, AbsoluteIndexedX, Read},
	{0xb9, Lda, AbsoluteIndexedY, Read},
	{0xa1, Lda, IndexedIndirect, Read},
	{0xb1, Lda, IndirectIndexed, Read},

	{0xa2, Ldx, Immediate, Read},
	{0xa6, Ldx, ZeroPage, Read},
	{0xb6, Ldx, ZeroPageIndexedY, Read},
	{0xae, Ldx, Absolute, Read},
	{0xbe, Ldx, AbsoluteIndexedY, Read},

	{0xa0, Ldy, Immediate, Read},
	{0xa4, Ldy, ZeroPage, Read},
	{0xb4, Ldy, ZeroPageIndexedX, Read},
	{0xac, Ldy, Absolute, Read},
	{0xbc, Ldy, AbsoluteIndexedX, Read},

	{0x4a, Lsr, Accumulator, RMW},
	{0x46, Lsr, ZeroPage, RMW},
	{0x56, Lsr, ZeroPageIndexedX, RMW},
	{0x4e, Lsr, Absolute, RMW},
	{0x5e, Lsr, AbsoluteIndexedX, RMW},

	{0xea, Nop, Implied, Read},

	{0x09, Ora, Immediate, Read},
	{0x05, Ora, ZeroPage, Read},
	{0x15, Ora, ZeroPageIndexedX, Read},
	{0x0d, Ora, Absolute, Read},
	{0x1d, Ora, AbsoluteIndexedX, Read},
	{0x19, Ora, AbsoluteIndexedY, Read},
	{0x01, Ora, IndexedIndirect, Read},
	{0x11, Ora, IndirectIndexed, Read},

	{0x48, Pha, Implied, Write},
	{0x08, Php, Implied, Write},
	{0x68, Pla, Implied, Read},
	{0x28, Plp, Implied, Read},

	{0x2a, Rol, Accumulator, RMW},
	{0x26, Rol, ZeroPage, RMW},
	{0x36, Rol, ZeroPageIndexedX, RMW},
	{0x2e, Rol, Absolute, RMW},
	{0x3e, Rol, AbsoluteIndexedX, RMW},

	{0x6a, Ror, Accumulator, RMW},
	{0x66, Ror, ZeroPage, RMW},
	{0x76, Ror, ZeroPageIndexedX, RMW},
	{0x6e, Ror, Absolute, RMW},
	{0x7e, Ror, AbsoluteIndexedX, RMW},

	{0x40, Rti, Implied, Interrupt},
	{0x60, Rts, Implied, Subroutine},

	{0xe9, Sbc, Immediate, Read},
	{0xe5, Sbc, ZeroPage, Read},
	{0xf5, Sbc, ZeroPageIndexedX, Read},
	{0xed, Sbc, Absolute, Read},
	{0xfd, Sbc, AbsoluteIndexedX, Read},
	{0xf9, Sbc, AbsoluteIndexedY, Read},
	{0xe1, Sbc, IndexedIndirect, Read},
	{0xf1, Sbc, IndirectIndexed, Read},

	{0x38, Sec, Implied, Read},
	{0xf8, Sed, Implied, Read},
	{0x78, Sei, Implied, Read},

	{0x85, Sta, ZeroPage, Write},
	{0x95, Sta, ZeroPageIndexedX, Write},
	{0x8d, Sta, Absolute, Write},
	{0x9d, Sta, AbsoluteIndexedX, Write},
	{0x99, Sta, AbsoluteIndexedY, Write},
	{0x81, Sta, IndexedIndirect, Write},
	{0x91, Sta, IndirectIndexed, Write},

	{0x86, Stx, ZeroPage, Write},
	{0x96, Stx, ZeroPageIndexedY, Write},
	{0x8e, Stx, Absolute, Write},

	{0x84, Sty, ZeroPage, Write},
	{0x94, Sty, ZeroPageIndexedX, Write},
	{0x8c, Sty, Absolute, Write},

	{0xaa, Tax, Implied, Read},
	{0xa8, Tay, Implied, Read},
	{0xba, Tsx, Implied, Read},
	{0x8a, Txa, Implied, Read},
	{0x9a, Txs, Implied, Read},
	{0x98, Tya, Implied, Read},
}

// GetDefinitions returns the table of instruction definitions for the 6502,
// indexed by opcode. Undefined opcodes have a nil entry. The returned slice
// is a fresh copy and may be modified by the caller.
func GetDefinitions() []*Definition {
	table := make([]*Definition, 256)
	for i := range definitions {
		d := definitions[i]
		table[d.OpCode] = &d
	}
	return table
}
