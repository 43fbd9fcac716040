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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/famicore/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. if this value is
	// less than Defn.Bytes() then the instruction has not yet been fully
	// decoded
	ByteCount int

	// instruction data is the operand of the instruction. a uint8 for two byte
	// instructions and a uint16 for three byte instructions. nil for single
	// byte instructions
	InstructionData any

	// whether a branch instruction took the branch
	BranchSuccess bool

	// whether a known quirk was triggered
	CPUBug Bug

	// whether this data has been finalised. the values of the fields in this
	// struct are undefined unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Operand returns the operand of the instruction in assembler notation.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	var v uint16
	switch d := r.InstructionData.(type) {
	case uint8:
		v = uint16(d)
	case uint16:
		v = d
	case nil:
		switch r.Defn.Bytes() {
		case 2:
			return "??"
		case 3:
			return "????"
		}
	}

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", v)
	case instructions.Relative:
		// branch target relative to the address of the following instruction
		t := uint16(int32(r.Address) + int32(r.Defn.Bytes()) + int32(int8(v)))
		return fmt.Sprintf("$%04x", t)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", v)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", v)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", v)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", v)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", v)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", v)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", v)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", v)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", v)
	}

	return ""
}

// ByteCode returns the bytes of the instruction as a space separated string
// of hex values.
func (r Result) ByteCode() string {
	if r.Defn == nil {
		return ""
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%02x", r.Defn.OpCode))
	switch d := r.InstructionData.(type) {
	case uint8:
		s.WriteString(fmt.Sprintf(" %02x", d))
	case uint16:
		s.WriteString(fmt.Sprintf(" %02x %02x", uint8(d), uint8(d>>8)))
	}
	return s.String()
}

// String returns the instruction in the form used by traces and
// disassemblies.
//
//	$c000  a9 10     LDA #$10
func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("$%04x  ???", r.Address)
	}

	asm := strings.TrimSpace(fmt.Sprintf("%s %s", r.Defn.Operator, r.Operand()))
	if !r.Final {
		return fmt.Sprintf("$%04x  %-8s  %s", r.Address, "", asm)
	}
	return fmt.Sprintf("$%04x  %-8s  %s", r.Address, r.ByteCode(), asm)
}
