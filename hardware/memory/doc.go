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

// Package memory implements the flat 64KB address space of the CPU. There is
// no memory mapping. Every address refers to one byte of RAM and the
// full address space is owned by a single Memory instance.
//
// The bus sub-package defines the interfaces through which the memory is
// accessed. The CPU uses the CPUBus interface. Collaborators that are not
// part of the normal operation of the machine, such as the program loader or
// the monitor, use the DebuggerBus interface.
package memory
