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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/famicore/hardware/cpu/registers"
	"github.com/jetsetilly/famicore/test"
)

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.String(), "nv-bdizc")
	test.ExpectEquality(t, sr.Value(), 0x20)

	sr.Negative = true
	sr.Carry = true
	test.ExpectEquality(t, sr.String(), "Nv-bdizC")
	test.ExpectEquality(t, sr.Value(), 0xa1)

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), 0x20)
}

func TestStatusUnusedBit(t *testing.T) {
	var sr registers.StatusRegister

	// the unused bit is always set in the packed form, whatever is loaded
	sr.Load(0x00)
	test.ExpectEquality(t, sr.Value(), 0x20)
	sr.Load(0xff)
	test.ExpectEquality(t, sr.Value(), 0xff)
	sr.Load(0xdf)
	test.ExpectEquality(t, sr.Value(), 0xff)
}

// every bit pattern survives the pack/unpack round trip
func TestStatusRoundTrip(t *testing.T) {
	var sr registers.StatusRegister
	for v := 0; v < 256; v++ {
		sr.Load(uint8(v))
		test.ExpectEquality(t, sr.Value(), uint8(v)|0x20)

		var other registers.StatusRegister
		other.Load(sr.Value())
		test.ExpectEquality(t, other, sr)
	}
}

// each bit loads into its own flag. a shift in the wrong direction would fail
// this test
func TestStatusLoadBits(t *testing.T) {
	var sr registers.StatusRegister

	sr.Load(0x01)
	test.ExpectEquality(t, sr, registers.StatusRegister{Carry: true})
	sr.Load(0x02)
	test.ExpectEquality(t, sr, registers.StatusRegister{Zero: true})
	sr.Load(0x04)
	test.ExpectEquality(t, sr, registers.StatusRegister{InterruptDisable: true})
	sr.Load(0x08)
	test.ExpectEquality(t, sr, registers.StatusRegister{DecimalMode: true})
	sr.Load(0x10)
	test.ExpectEquality(t, sr, registers.StatusRegister{Break: true})
	sr.Load(0x20)
	test.ExpectEquality(t, sr, registers.StatusRegister{})
	sr.Load(0x40)
	test.ExpectEquality(t, sr, registers.StatusRegister{Overflow: true})
	sr.Load(0x80)
	test.ExpectEquality(t, sr, registers.StatusRegister{Negative: true})
}

func TestUpdateZeroNegative(t *testing.T) {
	var sr registers.StatusRegister
	for v := 0; v < 256; v++ {
		sr.UpdateZeroNegative(uint8(v))
		test.ExpectEquality(t, sr.Zero, v == 0)
		test.ExpectEquality(t, sr.Negative, v&0x80 == 0x80)
	}
}
