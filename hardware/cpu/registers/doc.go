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

// Package registers implements the three types of register found in the 6502.
// The Register type is used for the accumulator and the two index registers.
// The ProgramCounter is a sixteen bit register and the StackPointer is an
// eight bit register that always addresses the stack page. The
// StatusRegister stores the seven flags of the CPU.
//
// The Register type offers the arithmetic and bitwise operations of the CPU
// but does not change the status register. Flags are returned by the
// operation where they can not be derived from the resulting value, otherwise
// it is up to the caller to query the register. For example:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.UpdateZeroNegative(a.Value())
//
// In this case, the zero flag in the status register will be false and the
// negative flag will be true.
package registers
