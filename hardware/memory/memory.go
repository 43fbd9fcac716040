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

package memory

import (
	"fmt"
	"strings"
)

// Size of the address space.
const Size = 0x10000

// Memory is the flat 64KB memory of the system.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// Memory is zero-filled.
func NewMemory() *Memory {
	return &Memory{}
}

// Read is an implementation of bus.CPUBus.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write is an implementation of bus.CPUBus.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[address] = data
}

// Peek is an implementation of bus.DebuggerBus.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.data[address]
}

// Poke is an implementation of bus.DebuggerBus.
func (mem *Memory) Poke(address uint16, value uint8) {
	mem.data[address] = value
}

// Clear zero-fills the memory.
func (mem *Memory) Clear() {
	clear(mem.data[:])
}

// Dump returns a hex dump of memory starting at origin. The dump is arranged
// in rows of width bytes with the address of each row at the start of the
// line. The dump stops at the end of the address space.
func (mem *Memory) Dump(origin uint16, length int, width int) string {
	if width <= 0 {
		width = 16
	}
	length = min(length, Size-int(origin))

	s := strings.Builder{}
	for i := 0; i < length; i += width {
		a := int(origin) + i
		s.WriteString(fmt.Sprintf("%04x |", a))
		for j := 0; j < width && i+j < length; j++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[a+j]))
		}
		s.WriteString("\n")
	}
	return s.String()
}
