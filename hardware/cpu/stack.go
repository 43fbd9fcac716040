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

// Push writes value to the stack and decrements the stack pointer. The stack
// pointer wraps from 0x00 to 0xff.
func (mc *CPU) Push(value uint8) {
	mc.mem.Write(mc.SP.Address(), value)
	mc.SP.Decrement()
}

// Pull increments the stack pointer and returns the value it then points to.
// The stack pointer wraps from 0xff to 0x00.
func (mc *CPU) Pull() uint8 {
	mc.SP.Increment()
	return mc.mem.Read(mc.SP.Address())
}

// push16 pushes a sixteen bit value. The high byte is pushed first so that the
// value is stored little-endian in memory.
func (mc *CPU) push16(value uint16) {
	mc.Push(uint8(value >> 8))
	mc.Push(uint8(value))
}

// pull16 is the inverse of push16. The low byte is pulled first.
func (mc *CPU) pull16() uint16 {
	lo := mc.Pull()
	hi := mc.Pull()
	return uint16(hi)<<8 | uint16(lo)
}
