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

// Package bus defines the memory bus concept. For an explanation see the
// memory package documentation.
package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU. Every sixteen bit address is valid so neither operation can fail.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// DebuggerBus defines the meta-operations for the memory system. Think of
// these functions as "debugging" functions, that is operations outside of the
// normal operation of the machine. Loaders, monitors and scripts use them.
type DebuggerBus interface {
	Peek(address uint16) uint8
	Poke(address uint16, value uint8)
}
