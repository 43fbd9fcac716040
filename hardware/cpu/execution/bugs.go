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

package execution

// Bug names a known quirk of the 6502 that was triggered by an instruction.
type Bug string

// List of known bugs.
const (
	NoBug Bug = ""

	// JMP indirect does not carry into the high byte when fetching the
	// second byte of the vector. JMP ($10ff) reads from $10ff and $1000.
	JmpIndirectBug Bug = "jmp indirect page boundary bug"

	// zero page indexing and zero page pointers wrap inside page zero.
	ZeroPageWrapBug Bug = "zero page index wrap"
)
