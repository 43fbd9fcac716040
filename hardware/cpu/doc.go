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

// Package cpu emulates the 6502 microprocessor found in the Famicom. Like all
// 8-bit processors of the era, the 6502 executes instructions according to the
// single byte value read from an address pointed to by the program counter.
// This single byte is the opcode and is looked up in the instruction table.
// The instruction definition for that opcode is then used to move execution
// of the program forward.
//
// The CPU owns its memory. There is no memory mapping and every address is
// valid. Other parts of the system access memory through the Read() and
// Write() functions of the CPU, in between instructions.
//
// The semantics of each instruction are implemented by a function named
// after the instruction's mnemonic. These functions take an already resolved
// operand and can be called directly:
//
//	mc := cpu.NewCPU()
//	mc.Lda(0x50)
//	mc.Adc(0x50)
//
// The ExecuteInstruction() function decodes the instruction at the program
// counter, resolves the operand according to the addressing mode, and calls
// the appropriate instruction function. The LastResult field describes the
// instruction that was most recently executed.
//
//	for {
//		if err := mc.ExecuteInstruction(); err != nil {
//			return err
//		}
//		fmt.Println(mc.LastResult.String())
//	}
//
// Status flags follow the 6502 with a small number of documented exceptions.
// The ROL and ROR instructions are eight bit rotates that do not rotate
// through the carry flag. The BIT instruction takes the overflow and negative
// flags from the result of the AND. PHP pushes the status register as it is
// and BRK does not set the interrupt disable flag.
package cpu
