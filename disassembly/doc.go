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

// Package disassembly decodes instructions from memory without executing
// them. Each decoded instruction is represented by an Entry, which wraps the
// same execution.Result type that the CPU produces when it runs an
// instruction. This means that a disassembled instruction and a traced
// instruction are printed identically.
//
// A single instruction can be decoded with the Decode() function. A range of
// memory is disassembled with FromMemory(), which decodes every address in
// the range as though it were the start of an instruction. The Bless()
// function then follows the flow of the program from one or more start
// addresses and promotes those entries that are reachable. Write() outputs
// the blessed entries, in address order.
package disassembly
