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

package cpu

import (
	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/cpu/execution"
	"github.com/jetsetilly/famicore/hardware/cpu/instructions"
)

// UnimplementedInstruction is returned by ExecuteInstruction() when the
// opcode is not in the instruction table. The PC is left pointing at the byte
// following the opcode.
const UnimplementedInstruction = "cpu: unimplemented instruction (%#02x) at (%#04x)"

// read8BitPC reads the byte at the PC, advances the PC and records the byte
// as the instruction data.
func (mc *CPU) read8BitPC() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	mc.LastResult.InstructionData = v
	return v
}

// read16BitPC reads the two bytes at the PC, advances the PC and records the
// value as the instruction data.
func (mc *CPU) read16BitPC() uint16 {
	lo := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	hi := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	v := uint16(hi)<<8 | uint16(lo)
	mc.LastResult.ByteCount += 2
	mc.LastResult.InstructionData = v
	return v
}

// readZeroPagePointer reads a sixteen bit pointer from page zero. The high
// byte of a pointer at 0xff is read from 0x00.
func (mc *CPU) readZeroPagePointer(ptr uint8) uint16 {
	if ptr == 0xff {
		mc.LastResult.CPUBug = execution.ZeroPageWrapBug
	}
	lo := mc.mem.Read(uint16(ptr))
	hi := mc.mem.Read(uint16(ptr + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// zeroPageIndex adds an index to a zero page address. The result wraps inside
// page zero.
func (mc *CPU) zeroPageIndex(base uint8, index uint8) uint16 {
	a := base + index
	if a < base {
		mc.LastResult.CPUBug = execution.ZeroPageWrapBug
	}
	return uint16(a)
}

// ExecuteInstruction decodes and executes the instruction at the PC. On
// return the PC points to the next instruction and LastResult describes the
// executed instruction.
//
// An opcode that is not in the instruction table results in an error created
// with the UnimplementedInstruction pattern.
func (mc *CPU) ExecuteInstruction() error {
	mc.reset = false
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount = 1

	defn := mc.instructions[opcode]
	if defn == nil {
		mc.LastResult.Final = true
		return curated.Errorf(UnimplementedInstruction, opcode, mc.LastResult.Address)
	}
	mc.LastResult.Defn = defn

	// address is the effective address of the operand. value is the operand
	// itself. for immediate and relative addressing only value is meaningful
	var address uint16
	var value uint8

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:

	case instructions.Immediate, instructions.Relative:
		value = mc.read8BitPC()

	case instructions.Absolute:
		address = mc.read16BitPC()

	case instructions.ZeroPage:
		address = uint16(mc.read8BitPC())

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP
		// command. the second byte of the vector is read from the same page
		// as the first
		indirect := mc.read16BitPC()
		hiAddress := indirect&0xff00 | uint16(uint8(indirect)+1)
		if indirect&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectBug
		}
		address = uint16(mc.mem.Read(hiAddress))<<8 | uint16(mc.mem.Read(indirect))

	case instructions.IndexedIndirect:
		ptr := mc.read8BitPC()
		address = mc.readZeroPagePointer(uint8(mc.zeroPageIndex(ptr, mc.X.Value())))

	case instructions.IndirectIndexed:
		ptr := mc.read8BitPC()
		address = mc.readZeroPagePointer(ptr) + mc.Y.Address()

	case instructions.AbsoluteIndexedX:
		address = mc.read16BitPC() + mc.X.Address()

	case instructions.AbsoluteIndexedY:
		address = mc.read16BitPC() + mc.Y.Address()

	case instructions.ZeroPageIndexedX:
		address = mc.zeroPageIndex(mc.read8BitPC(), mc.X.Value())

	case instructions.ZeroPageIndexedY:
		address = mc.zeroPageIndex(mc.read8BitPC(), mc.Y.Value())
	}

	// read the operand from memory for instructions that take a value
	if defn.Effect == instructions.Read {
		switch defn.AddressingMode {
		case instructions.Implied, instructions.Accumulator, instructions.Immediate, instructions.Relative:
		default:
			value = mc.mem.Read(address)
		}
	}

	// shift and rotate instructions operate on either the accumulator or on
	// memory
	target := MemoryTarget(address)
	if defn.AddressingMode == instructions.Accumulator {
		target = AccumulatorTarget
	}

	switch defn.Operator {
	case instructions.Nop:
		mc.Nop()
	case instructions.Adc:
		mc.Adc(value)
	case instructions.And:
		mc.And(value)
	case instructions.Asl:
		mc.Asl(target)
	case instructions.Bcc:
		mc.LastResult.BranchSuccess = mc.Bcc(int8(value))
	case instructions.Bcs:
		mc.LastResult.BranchSuccess = mc.Bcs(int8(value))
	case instructions.Beq:
		mc.LastResult.BranchSuccess = mc.Beq(int8(value))
	case instructions.Bit:
		mc.Bit(value)
	case instructions.Bmi:
		mc.LastResult.BranchSuccess = mc.Bmi(int8(value))
	case instructions.Bne:
		mc.LastResult.BranchSuccess = mc.Bne(int8(value))
	case instructions.Bpl:
		mc.LastResult.BranchSuccess = mc.Bpl(int8(value))
	case instructions.Brk:
		// Brk() pushes PC+2 so the PC must point at the opcode. the byte
		// following BRK is padding and is skipped on return
		mc.PC.Load(mc.LastResult.Address)
		mc.Brk()
	case instructions.Bvc:
		mc.LastResult.BranchSuccess = mc.Bvc(int8(value))
	case instructions.Bvs:
		mc.LastResult.BranchSuccess = mc.Bvs(int8(value))
	case instructions.Clc:
		mc.Clc()
	case instructions.Cld:
		mc.Cld()
	case instructions.Cli:
		mc.Cli()
	case instructions.Clv:
		mc.Clv()
	case instructions.Cmp:
		mc.Cmp(value)
	case instructions.Cpx:
		mc.Cpx(value)
	case instructions.Cpy:
		mc.Cpy(value)
	case instructions.Dec:
		mc.Dec(address)
	case instructions.Dex:
		mc.Dex()
	case instructions.Dey:
		mc.Dey()
	case instructions.Eor:
		mc.Eor(value)
	case instructions.Inc:
		mc.Inc(address)
	case instructions.Inx:
		mc.Inx()
	case instructions.Iny:
		mc.Iny()
	case instructions.Jmp:
		mc.Jmp(address)
	case instructions.Jsr:
		// the return address pushed by JSR is the address of the last byte of
		// the instruction. RTS adds one
		mc.PC.Add(0xffff)
		mc.Jsr(address)
	case instructions.Lda:
		mc.Lda(value)
	case instructions.Ldx:
		mc.Ldx(value)
	case instructions.Ldy:
		mc.Ldy(value)
	case instructions.Lsr:
		mc.Lsr(target)
	case instructions.Ora:
		mc.Ora(value)
	case instructions.Pha:
		mc.Pha()
	case instructions.Php:
		mc.Php()
	case instructions.Pla:
		mc.Pla()
	case instructions.Plp:
		mc.Plp()
	case instructions.Rol:
		mc.Rol(target)
	case instructions.Ror:
		mc.Ror(target)
	case instructions.Rti:
		mc.Rti()
	case instructions.Rts:
		mc.Rts()
		mc.PC.Add(1)
	case instructions.Sbc:
		mc.Sbc(value)
	case instructions.Sec:
		mc.Sec()
	case instructions.Sed:
		mc.Sed()
	case instructions.Sei:
		mc.Sei()
	case instructions.Sta:
		mc.Sta(address)
	case instructions.Stx:
		mc.Stx(address)
	case instructions.Sty:
		mc.Sty(address)
	case instructions.Tax:
		mc.Tax()
	case instructions.Tay:
		mc.Tay()
	case instructions.Tsx:
		mc.Tsx()
	case instructions.Txa:
		mc.Txa()
	case instructions.Txs:
		mc.Txs()
	case instructions.Tya:
		mc.Tya()
	default:
		mc.LastResult.Final = true
		return curated.Errorf(UnimplementedInstruction, opcode, mc.LastResult.Address)
	}

	mc.LastResult.Final = true

	return nil
}
