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

package registers

import (
	"strings"
)

// bit positions of the flags in the packed form of the status register.
const (
	bitCarry = iota
	bitZero
	bitInterruptDisable
	bitDecimalMode
	bitBreak
	bitUnused
	bitOverflow
	bitNegative
)

// StatusRegister is the special purpose register that stores the flags of the CPU.
type StatusRegister struct {
	Negative         bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register. All flags are clear.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}
	flag := func(f bool, set, clear rune) {
		if f {
			s.WriteRune(set)
		} else {
			s.WriteRune(clear)
		}
	}

	flag(sr.Negative, 'N', 'n')
	flag(sr.Overflow, 'V', 'v')
	s.WriteRune('-')
	flag(sr.Break, 'B', 'b')
	flag(sr.DecimalMode, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	*sr = StatusRegister{}
}

// UpdateZeroNegative sets the zero and negative flags according to value.
func (sr *StatusRegister) UpdateZeroNegative(value uint8) {
	sr.Zero = value == 0
	sr.Negative = value&0x80 == 0x80
}

// Value packs the StatusRegister into a value suitable for pushing onto the
// stack. The unused bit is always set.
func (sr StatusRegister) Value() uint8 {
	v := uint8(1 << bitUnused)
	pack := func(f bool, bit int) {
		if f {
			v |= 1 << bit
		}
	}

	pack(sr.Negative, bitNegative)
	pack(sr.Overflow, bitOverflow)
	pack(sr.Break, bitBreak)
	pack(sr.DecimalMode, bitDecimalMode)
	pack(sr.InterruptDisable, bitInterruptDisable)
	pack(sr.Zero, bitZero)
	pack(sr.Carry, bitCarry)

	return v
}

// Load sets every flag from a packed value (taken from the stack, for
// example). The unused bit is ignored.
func (sr *StatusRegister) Load(v uint8) {
	unpack := func(bit int) bool {
		return (v>>bit)&1 == 1
	}

	sr.Negative = unpack(bitNegative)
	sr.Overflow = unpack(bitOverflow)
	sr.Break = unpack(bitBreak)
	sr.DecimalMode = unpack(bitDecimalMode)
	sr.InterruptDisable = unpack(bitInterruptDisable)
	sr.Zero = unpack(bitZero)
	sr.Carry = unpack(bitCarry)
}
