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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/famicore/hardware/cpu"
	"github.com/jetsetilly/famicore/hardware/cpu/registers"
	"github.com/jetsetilly/famicore/test"
)

func TestInitialState(t *testing.T) {
	mc := cpu.NewCPU()
	test.ExpectEquality(t, mc.PC.Address(), 0)
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.X.Value(), 0)
	test.ExpectEquality(t, mc.Y.Value(), 0)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mc.Status, registers.StatusRegister{})
	test.ExpectEquality(t, mc.Read(0x0000), 0)
	test.ExpectEquality(t, mc.Read(0xffff), 0)
	test.ExpectSuccess(t, mc.HasReset())
	test.ExpectEquality(t, mc.String(), "PC=0x0000 A=0x00 X=0x00 Y=0x00 SP=0xff SR=nv-bdizc")
}

func TestReset(t *testing.T) {
	mc := cpu.NewCPU()
	mc.PC.Load(0x1234)
	mc.Ldx(0x01)
	mc.Txs()
	mc.Lda(0x80)
	mc.Sec()
	test.DemandSuccess(t, mc.Status.Negative)
	mc.Write(0x0200, 0x42)

	mc.Reset()
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mc.PC.Address(), 0x1234)
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectEquality(t, mc.X.Value(), 0x01)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Negative)
	test.ExpectEquality(t, mc.Read(0x0200), 0x42)
}

func TestLoadStore(t *testing.T) {
	mc := cpu.NewCPU()

	for v := 0; v < 256; v++ {
		mc.Lda(uint8(v))
		test.ExpectEquality(t, mc.A.Value(), uint8(v))
		test.ExpectEquality(t, mc.Status.Zero, v == 0)
		test.ExpectEquality(t, mc.Status.Negative, v&0x80 == 0x80)

		mc.Ldx(uint8(v))
		test.ExpectEquality(t, mc.X.Value(), uint8(v))
		test.ExpectEquality(t, mc.Status.Zero, v == 0)
		test.ExpectEquality(t, mc.Status.Negative, v&0x80 == 0x80)

		mc.Ldy(uint8(v))
		test.ExpectEquality(t, mc.Y.Value(), uint8(v))
		test.ExpectEquality(t, mc.Status.Zero, v == 0)
		test.ExpectEquality(t, mc.Status.Negative, v&0x80 == 0x80)
	}

	mc.Lda(0x01)
	mc.Ldx(0x02)
	mc.Ldy(0x00)

	// stores do not change flags
	mc.Sta(0x0300)
	mc.Stx(0x0301)
	mc.Sty(0x0302)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectEquality(t, mc.Read(0x0300), 0x01)
	test.ExpectEquality(t, mc.Read(0x0301), 0x02)
	test.ExpectEquality(t, mc.Read(0x0302), 0x00)
}

func TestTransfer(t *testing.T) {
	mc := cpu.NewCPU()

	mc.Lda(0x55)
	mc.Tax()
	test.ExpectEquality(t, mc.X.Value(), 0x55)
	mc.Tay()
	test.ExpectEquality(t, mc.Y.Value(), 0x55)

	mc.Ldx(0x80)
	mc.Lda(0x00)
	mc.Txa()
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectSuccess(t, mc.Status.Negative)
	test.ExpectFailure(t, mc.Status.Zero)

	mc.Ldy(0x00)
	mc.Tya()
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Negative)

	// transfers to X update the flags
	mc.Lda(0x00)
	mc.Tax()
	test.ExpectSuccess(t, mc.Status.Zero)
	mc.Lda(0x90)
	mc.Tay()
	test.ExpectSuccess(t, mc.Status.Negative)

	// TSX updates the flags
	mc.Tsx()
	test.ExpectEquality(t, mc.X.Value(), 0xff)
	test.ExpectSuccess(t, mc.Status.Negative)

	// TXS does not update the flags
	mc.Ldx(0x00)
	mc.Lda(0x01)
	mc.Txs()
	test.ExpectEquality(t, mc.SP.Value(), 0x00)
	test.ExpectFailure(t, mc.Status.Zero)
}

func TestLogical(t *testing.T) {
	mc := cpu.NewCPU()

	mc.Lda(0xf0)
	mc.And(0x0f)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Negative)

	mc.Ora(0x81)
	test.ExpectEquality(t, mc.A.Value(), 0x81)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Negative)

	mc.Eor(0x81)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Negative)

	mc.Eor(0xc0)
	test.ExpectEquality(t, mc.A.Value(), 0xc0)
	test.ExpectSuccess(t, mc.Status.Negative)
}

// BIT takes all three flags from the result of the AND
func TestBit(t *testing.T) {
	mc := cpu.NewCPU()

	mc.Lda(0xff)
	mc.Bit(0xc0)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Overflow)
	test.ExpectSuccess(t, mc.Status.Negative)
	test.ExpectEquality(t, mc.A.Value(), 0xff)

	mc.Lda(0x0f)
	mc.Bit(0xc0)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Overflow)
	test.ExpectFailure(t, mc.Status.Negative)

	// operand bits 6 and 7 are set but the accumulator bits are not
	mc.Lda(0x01)
	mc.Bit(0xc1)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Overflow)
	test.ExpectFailure(t, mc.Status.Negative)
}

func TestAdc(t *testing.T) {
	mc := cpu.NewCPU()

	// wraparound
	mc.Lda(0xff)
	mc.Clc()
	mc.Adc(0x01)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Overflow)

	// signed overflow
	mc.Lda(0x50)
	mc.Clc()
	mc.Adc(0x50)
	test.ExpectEquality(t, mc.A.Value(), 0xa0)
	test.ExpectSuccess(t, mc.Status.Overflow)
	test.ExpectSuccess(t, mc.Status.Negative)
	test.ExpectFailure(t, mc.Status.Carry)

	// negative plus negative overflows to positive
	mc.Lda(0x90)
	mc.Clc()
	mc.Adc(0x90)
	test.ExpectEquality(t, mc.A.Value(), 0x20)
	test.ExpectSuccess(t, mc.Status.Overflow)
	test.ExpectSuccess(t, mc.Status.Carry)

	// carry in is included in the sum
	mc.Lda(0x10)
	mc.Sec()
	mc.Adc(0x20)
	test.ExpectEquality(t, mc.A.Value(), 0x31)
	test.ExpectFailure(t, mc.Status.Carry)

	// sequence of additions and subtractions
	mc.Lda(0x10)
	mc.Clc()
	mc.Adc(0x20)
	test.ExpectEquality(t, mc.A.Value(), 0x30)
	test.ExpectFailure(t, mc.Status.Carry)
	mc.Adc(0xf0)
	test.ExpectEquality(t, mc.A.Value(), 0x20)
	test.ExpectSuccess(t, mc.Status.Carry)
	mc.Sbc(0x10)
	test.ExpectEquality(t, mc.A.Value(), 0x10)
	test.ExpectSuccess(t, mc.Status.Carry)
	mc.Sbc(0x20)
	test.ExpectEquality(t, mc.A.Value(), 0xf0)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Negative)
}

func TestAdcExhaustive(t *testing.T) {
	mc := cpu.NewCPU()

	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			for _, c := range []bool{false, true} {
				mc.Lda(uint8(a))
				mc.Status.Carry = c

				sum := a + b
				if c {
					sum++
				}

				mc.Adc(uint8(b))
				test.DemandEquality(t, mc.A.Value(), uint8(sum))
				test.DemandEquality(t, mc.Status.Carry, sum > 0xff)
				test.DemandEquality(t, mc.Status.Zero, uint8(sum) == 0)

				// operands have the same sign and the sign of the result differs
				sa := a&0x80 == 0x80
				sb := b&0x80 == 0x80
				sr := sum&0x80 == 0x80
				test.DemandEquality(t, mc.Status.Overflow, sa == sb && sr != sa)
			}
		}
	}
}

func TestSbc(t *testing.T) {
	mc := cpu.NewCPU()

	mc.Lda(0x50)
	mc.Sec()
	mc.Sbc(0x10)
	test.ExpectEquality(t, mc.A.Value(), 0x40)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Overflow)

	// borrow in
	mc.Lda(0x50)
	mc.Clc()
	mc.Sbc(0x10)
	test.ExpectEquality(t, mc.A.Value(), 0x3f)
	test.ExpectSuccess(t, mc.Status.Carry)

	// borrow out
	mc.Lda(0x00)
	mc.Sec()
	mc.Sbc(0x01)
	test.ExpectEquality(t, mc.A.Value(), 0xff)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Negative)

	// borrow caused only by the borrow in
	mc.Lda(0x00)
	mc.Clc()
	mc.Sbc(0x00)
	test.ExpectEquality(t, mc.A.Value(), 0xff)
	test.ExpectFailure(t, mc.Status.Carry)

	// zero result
	mc.Lda(0x42)
	mc.Sec()
	mc.Sbc(0x42)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Carry)

	// signed overflow. 0x50 - 0xb0 is 80 - (-80)
	mc.Lda(0x50)
	mc.Sec()
	mc.Sbc(0xb0)
	test.ExpectEquality(t, mc.A.Value(), 0xa0)
	test.ExpectSuccess(t, mc.Status.Overflow)
	test.ExpectFailure(t, mc.Status.Carry)
}

func TestSbcExhaustive(t *testing.T) {
	mc := cpu.NewCPU()

	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			for _, c := range []bool{false, true} {
				mc.Lda(uint8(a))
				mc.Status.Carry = c

				diff := a - b
				if !c {
					diff--
				}

				mc.Sbc(uint8(b))
				test.DemandEquality(t, mc.A.Value(), uint8(diff))
				test.DemandEquality(t, mc.Status.Carry, diff >= 0)
				test.DemandEquality(t, mc.Status.Zero, uint8(diff) == 0)

				// operand sign differs from the accumulator and the result
				// sign differs from the accumulator
				sa := a&0x80 == 0x80
				sb := b&0x80 == 0x80
				sr := uint8(diff)&0x80 == 0x80
				test.DemandEquality(t, mc.Status.Overflow, sa != sb && sr != sa)
			}
		}
	}
}

func TestCompare(t *testing.T) {
	mc := cpu.NewCPU()

	type comparison struct {
		load    func(uint8)
		compare func(uint8)
	}

	for i, c := range []comparison{
		{mc.Lda, mc.Cmp},
		{mc.Ldx, mc.Cpx},
		{mc.Ldy, mc.Cpy},
	} {
		for a := 0; a < 256; a++ {
			for b := 0; b < 256; b++ {
				c.load(uint8(a))
				c.compare(uint8(b))
				test.DemandEquality(t, mc.Status.Carry, a >= b, i)
				test.DemandEquality(t, mc.Status.Zero, a == b, i)
				test.DemandEquality(t, mc.Status.Negative, (uint8(a)-uint8(b))&0x80 == 0x80, i)
			}
		}
	}

	// registers are not changed
	mc.Lda(0x10)
	mc.Cmp(0x20)
	test.ExpectEquality(t, mc.A.Value(), 0x10)
}

func TestIncrementDecrement(t *testing.T) {
	mc := cpu.NewCPU()

	// memory increment wraps and does not affect carry
	mc.Write(0x0010, 0xff)
	mc.Clc()
	mc.Inc(0x0010)
	test.ExpectEquality(t, mc.Read(0x0010), 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Carry)

	mc.Sec()
	mc.Dec(0x0010)
	test.ExpectEquality(t, mc.Read(0x0010), 0xff)
	test.ExpectSuccess(t, mc.Status.Negative)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Carry)

	mc.Write(0x0011, 0x7f)
	mc.Inc(0x0011)
	test.ExpectEquality(t, mc.Read(0x0011), 0x80)
	test.ExpectSuccess(t, mc.Status.Negative)

	// register increments
	mc.Ldx(0xff)
	mc.Clc()
	mc.Inx()
	test.ExpectEquality(t, mc.X.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Carry)

	mc.Dex()
	test.ExpectEquality(t, mc.X.Value(), 0xff)
	test.ExpectSuccess(t, mc.Status.Negative)
	test.ExpectFailure(t, mc.Status.Carry)

	mc.Ldy(0x01)
	mc.Dey()
	test.ExpectEquality(t, mc.Y.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)

	mc.Dey()
	test.ExpectEquality(t, mc.Y.Value(), 0xff)
	mc.Sec()
	mc.Iny()
	test.ExpectEquality(t, mc.Y.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Carry)
}

// INY and INX each change only their own register
func TestIndexIndependence(t *testing.T) {
	mc := cpu.NewCPU()

	mc.Ldx(0x10)
	mc.Ldy(0x20)
	mc.Iny()
	test.ExpectEquality(t, mc.X.Value(), 0x10)
	test.ExpectEquality(t, mc.Y.Value(), 0x21)

	mc.Inx()
	test.ExpectEquality(t, mc.X.Value(), 0x11)
	test.ExpectEquality(t, mc.Y.Value(), 0x21)

	mc.Dey()
	test.ExpectEquality(t, mc.X.Value(), 0x11)
	test.ExpectEquality(t, mc.Y.Value(), 0x20)

	mc.Dex()
	test.ExpectEquality(t, mc.X.Value(), 0x10)
	test.ExpectEquality(t, mc.Y.Value(), 0x20)
}

func TestShifts(t *testing.T) {
	mc := cpu.NewCPU()

	mc.Lda(0x81)
	mc.Asl(cpu.AccumulatorTarget)
	test.ExpectEquality(t, mc.A.Value(), 0x02)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Negative)

	mc.Lda(0x40)
	mc.Asl(cpu.AccumulatorTarget)
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Negative)

	mc.Lda(0x01)
	mc.Lsr(cpu.AccumulatorTarget)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Negative)

	// LSR always clears the negative flag
	mc.Lda(0xff)
	test.ExpectSuccess(t, mc.Status.Negative)
	mc.Lsr(cpu.AccumulatorTarget)
	test.ExpectEquality(t, mc.A.Value(), 0x7f)
	test.ExpectFailure(t, mc.Status.Negative)

	// memory targets
	mc.Write(0x0400, 0x80)
	mc.Asl(cpu.MemoryTarget(0x0400))
	test.ExpectEquality(t, mc.Read(0x0400), 0x00)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectEquality(t, mc.A.Value(), 0x7f)

	mc.Write(0x0400, 0x02)
	mc.Lsr(cpu.MemoryTarget(0x0400))
	test.ExpectEquality(t, mc.Read(0x0400), 0x01)
	test.ExpectFailure(t, mc.Status.Carry)

	// index register targets
	mc.Ldx(0x40)
	mc.Asl(cpu.XTarget)
	test.ExpectEquality(t, mc.X.Value(), 0x80)
	mc.Ldy(0x04)
	mc.Lsr(cpu.YTarget)
	test.ExpectEquality(t, mc.Y.Value(), 0x02)
}

// ROL and ROR are eight bit rotates. the carry flag is not rotated in
func TestRotates(t *testing.T) {
	mc := cpu.NewCPU()

	mc.Lda(0x81)
	mc.Clc()
	mc.Rol(cpu.AccumulatorTarget)
	test.ExpectEquality(t, mc.A.Value(), 0x03)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Negative)

	mc.Lda(0x40)
	mc.Sec()
	mc.Rol(cpu.AccumulatorTarget)
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Negative)

	mc.Lda(0x01)
	mc.Clc()
	mc.Ror(cpu.AccumulatorTarget)
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Negative)

	mc.Lda(0x02)
	mc.Sec()
	mc.Ror(cpu.AccumulatorTarget)
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectFailure(t, mc.Status.Carry)

	mc.Lda(0x00)
	mc.Sec()
	mc.Ror(cpu.AccumulatorTarget)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Carry)

	// eight rotates in either direction restore the value
	mc.Write(0x0500, 0xa5)
	for i := 0; i < 8; i++ {
		mc.Rol(cpu.MemoryTarget(0x0500))
	}
	test.ExpectEquality(t, mc.Read(0x0500), 0xa5)
	for i := 0; i < 8; i++ {
		mc.Ror(cpu.MemoryTarget(0x0500))
	}
	test.ExpectEquality(t, mc.Read(0x0500), 0xa5)
}

func TestFlags(t *testing.T) {
	mc := cpu.NewCPU()

	mc.Sec()
	mc.Sed()
	mc.Sei()
	test.ExpectEquality(t, mc.Status.String(), "nv-bDIzC")

	mc.Status.Overflow = true
	mc.Clc()
	test.ExpectEquality(t, mc.Status.String(), "nV-bDIzc")
	mc.Cld()
	test.ExpectEquality(t, mc.Status.String(), "nV-bdIzc")
	mc.Cli()
	test.ExpectEquality(t, mc.Status.String(), "nV-bdizc")
	mc.Clv()
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")

	// NOP changes nothing
	before := mc.String()
	mc.Nop()
	test.ExpectEquality(t, mc.String(), before)
}

func TestTargets(t *testing.T) {
	test.ExpectEquality(t, cpu.AccumulatorTarget.String(), "A")
	test.ExpectEquality(t, cpu.XTarget.String(), "X")
	test.ExpectEquality(t, cpu.YTarget.String(), "Y")
	test.ExpectEquality(t, cpu.MemoryTarget(0x0400).String(), "$0400")
	test.ExpectEquality(t, cpu.XTarget.Kind, cpu.TargetX)
	test.ExpectEquality(t, cpu.YTarget.Kind, cpu.TargetY)
}
