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
	"fmt"
)

// StackBase is the address of the first byte of the stack page.
const StackBase = uint16(0x0100)

// StackPointer is the eight bit SP register. It is an offset into the stack
// page and all arithmetic on it wraps inside the page.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns the canonical name for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#02x", sp.value)
}

// Value returns the current value of the SP.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the location in memory that the SP points to.
func (sp StackPointer) Address() uint16 {
	return StackBase | uint16(sp.value)
}

// Load a value into the SP.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Increment the SP. Wraps from 0xff to 0x00.
func (sp *StackPointer) Increment() {
	sp.value++
}

// Decrement the SP. Wraps from 0x00 to 0xff.
func (sp *StackPointer) Decrement() {
	sp.value--
}
