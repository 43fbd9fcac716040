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
	"github.com/jetsetilly/famicore/test"
)

func TestStack(t *testing.T) {
	mc := cpu.NewCPU()

	mc.Push(0x42)
	test.ExpectEquality(t, mc.SP.Value(), 0xfe)
	test.ExpectEquality(t, mc.Read(0x01ff), 0x42)

	v := mc.Pull()
	test.ExpectEquality(t, v, 0x42)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
}

func TestStackRoundTrip(t *testing.T) {
	mc := cpu.NewCPU()

	for sp := 0; sp < 256; sp++ {
		for v := 0; v < 256; v++ {
			mc.SP.Load(uint8(sp))
			mc.Push(uint8(v))
			test.DemandEquality(t, mc.Pull(), uint8(v))
			test.DemandEquality(t, mc.SP.Value(), uint8(sp))
		}
	}
}

// the stack pointer wraps silently in both directions
func TestStackWrap(t *testing.T) {
	mc := cpu.NewCPU()

	mc.SP.Load(0x00)
	mc.Push(0x11)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mc.Read(0x0100), 0x11)

	mc.Push(0x22)
	test.ExpectEquality(t, mc.Read(0x01ff), 0x22)

	test.ExpectEquality(t, mc.Pull(), 0x22)
	test.ExpectEquality(t, mc.Pull(), 0x11)
	test.ExpectEquality(t, mc.SP.Value(), 0x00)

	// the stack never leaves page one
	for i := 0; i < 300; i++ {
		mc.Push(uint8(i))
	}
	test.ExpectEquality(t, mc.Read(0x00ff), 0x00)
	test.ExpectEquality(t, mc.Read(0x0200), 0x00)
}

func TestPushPullRegisters(t *testing.T) {
	mc := cpu.NewCPU()

	mc.Lda(0x80)
	mc.Pha()
	mc.Lda(0x00)
	mc.Pla()
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectSuccess(t, mc.Status.Negative)
	test.ExpectFailure(t, mc.Status.Zero)

	// PHP pushes the status register as it is
	mc.Status.Load(0x00)
	mc.Sec()
	mc.Php()
	test.ExpectEquality(t, mc.Read(mc.SP.Address()+1), 0x21)

	mc.Clc()
	mc.Status.Overflow = true
	mc.Plp()
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Overflow)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
}

func TestBranches(t *testing.T) {
	mc := cpu.NewCPU()

	// branch taken
	mc.PC.Load(0x1000)
	mc.Clc()
	test.ExpectSuccess(t, mc.Bcc(0x10))
	test.ExpectEquality(t, mc.PC.Address(), 0x1010)

	// branch not taken
	mc.PC.Load(0x1000)
	mc.Sec()
	test.ExpectFailure(t, mc.Bcc(0x10))
	test.ExpectEquality(t, mc.PC.Address(), 0x1000)

	// negative displacement
	mc.PC.Load(0x1000)
	test.ExpectSuccess(t, mc.Bcs(-0x10))
	test.ExpectEquality(t, mc.PC.Address(), 0x0ff0)

	// sixteen bit wraparound
	mc.PC.Load(0xfff0)
	test.ExpectSuccess(t, mc.Bcs(0x20))
	test.ExpectEquality(t, mc.PC.Address(), 0x0010)
	mc.PC.Load(0x0010)
	test.ExpectSuccess(t, mc.Bcs(-0x20))
	test.ExpectEquality(t, mc.PC.Address(), 0xfff0)

	type branch struct {
		name   string
		fn     func(int8) bool
		set    func()
		expect bool
	}

	for _, b := range []branch{
		{"bcc", mc.Bcc, mc.Clc, true},
		{"bcc", mc.Bcc, mc.Sec, false},
		{"bcs", mc.Bcs, mc.Sec, true},
		{"bcs", mc.Bcs, mc.Clc, false},
		{"beq", mc.Beq, func() { mc.Lda(0) }, true},
		{"beq", mc.Beq, func() { mc.Lda(1) }, false},
		{"bne", mc.Bne, func() { mc.Lda(1) }, true},
		{"bne", mc.Bne, func() { mc.Lda(0) }, false},
		{"bmi", mc.Bmi, func() { mc.Lda(0x80) }, true},
		{"bmi", mc.Bmi, func() { mc.Lda(0x7f) }, false},
		{"bpl", mc.Bpl, func() { mc.Lda(0x7f) }, true},
		{"bpl", mc.Bpl, func() { mc.Lda(0x80) }, false},
		{"bvs", mc.Bvs, func() { mc.Status.Overflow = true }, true},
		{"bvs", mc.Bvs, mc.Clv, false},
		{"bvc", mc.Bvc, mc.Clv, true},
		{"bvc", mc.Bvc, func() { mc.Status.Overflow = true }, false},
	} {
		mc.PC.Load(0x2000)
		b.set()
		test.ExpectEquality(t, b.fn(0x04), b.expect, b.name)
		if b.expect {
			test.ExpectEquality(t, mc.PC.Address(), 0x2004, b.name)
		} else {
			test.ExpectEquality(t, mc.PC.Address(), 0x2000, b.name)
		}
	}
}

func TestJmp(t *testing.T) {
	mc := cpu.NewCPU()
	mc.Jmp(0xc000)
	test.ExpectEquality(t, mc.PC.Address(), 0xc000)
}

func TestSubroutine(t *testing.T) {
	mc := cpu.NewCPU()

	mc.PC.Load(0x3000)
	mc.Jsr(0x4000)
	test.ExpectEquality(t, mc.PC.Address(), 0x4000)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)

	// return address is stored little-endian on the stack
	test.ExpectEquality(t, mc.Read(0x01ff), 0x30)
	test.ExpectEquality(t, mc.Read(0x01fe), 0x00)

	mc.Rts()
	test.ExpectEquality(t, mc.PC.Address(), 0x3000)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
}

func TestNestedSubroutines(t *testing.T) {
	mc := cpu.NewCPU()

	mc.PC.Load(0x1234)
	mc.Jsr(0x2000)
	mc.Jsr(0x3000)
	mc.Jsr(0x4000)
	mc.Rts()
	test.ExpectEquality(t, mc.PC.Address(), 0x3000)
	mc.Rts()
	test.ExpectEquality(t, mc.PC.Address(), 0x2000)
	mc.Rts()
	test.ExpectEquality(t, mc.PC.Address(), 0x1234)
}

func TestInterrupt(t *testing.T) {
	mc := cpu.NewCPU()

	// BRK vector
	mc.Write(0xfffe, 0x00)
	mc.Write(0xffff, 0x80)

	mc.PC.Load(0x1000)
	mc.Sec()
	mc.Lda(0x80)
	status := mc.Status

	mc.Brk()
	test.ExpectEquality(t, mc.PC.Address(), 0x8000)
	test.ExpectSuccess(t, mc.Status.Break)
	test.ExpectFailure(t, mc.Status.InterruptDisable)
	test.ExpectEquality(t, mc.SP.Value(), 0xfc)

	// the stack frame. PC+2 high then low, then status with the break flag
	test.ExpectEquality(t, mc.Read(0x01ff), 0x10)
	test.ExpectEquality(t, mc.Read(0x01fe), 0x02)
	test.ExpectEquality(t, mc.Read(0x01fd), status.Value()|0x10)

	// handler changes some flags
	mc.Clc()
	mc.Lda(0x00)

	mc.Rti()
	test.ExpectEquality(t, mc.PC.Address(), 0x1002)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Negative)
	test.ExpectFailure(t, mc.Status.Zero)

	// status is restored as it was pushed, including the break flag
	test.ExpectSuccess(t, mc.Status.Break)
}

func TestLoadPCIndirect(t *testing.T) {
	mc := cpu.NewCPU()
	mc.Write(cpu.Reset, 0x34)
	mc.Write(cpu.Reset+1, 0x12)
	mc.LoadPCIndirect(cpu.Reset)
	test.ExpectEquality(t, mc.PC.Address(), 0x1234)

	mc.LoadPC(0xabcd)
	test.ExpectEquality(t, mc.PC.Address(), 0xabcd)
}
