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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/famicore/hardware/cpu/execution"
	"github.com/jetsetilly/famicore/hardware/cpu/instructions"
	"github.com/jetsetilly/famicore/hardware/memory/bus"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though every byte is the start of an
// instruction. Blessed entries have been reached by following the flow of
// the program from a start address.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	}
	return "unknown entry level"
}

// Entry is a disassembled instruction.
type Entry struct {
	Level  EntryLevel
	Result execution.Result
}

func (e Entry) String() string {
	return e.Result.String()
}

// Next returns the address of the instruction that follows this one in
// memory. Undefined opcodes are treated as single byte instructions.
func (e Entry) Next() uint16 {
	if e.Result.Defn == nil {
		return e.Result.Address + 1
	}
	return e.Result.Address + uint16(e.Result.Defn.Bytes())
}

// decoding table shared by all calls to Decode()
var definitions = instructions.GetDefinitions()

// Decode the instruction at the address. Memory is accessed with Peek() so
// decoding has no side effects. Operand bytes wrap around the top of memory.
func Decode(mem bus.DebuggerBus, address uint16) Entry {
	e := Entry{
		Level: EntryLevelDecoded,
		Result: execution.Result{
			Address: address,
		},
	}

	opcode := mem.Peek(address)
	defn := definitions[opcode]
	if defn == nil {
		e.Result.ByteCount = 1
		e.Result.InstructionData = opcode
		return e
	}

	e.Result.Defn = defn
	e.Result.ByteCount = defn.Bytes()

	switch defn.Bytes() {
	case 2:
		e.Result.InstructionData = mem.Peek(address + 1)
	case 3:
		lo := uint16(mem.Peek(address + 1))
		hi := uint16(mem.Peek(address + 2))
		e.Result.InstructionData = hi<<8 | lo
	}

	e.Result.Final = true

	return e
}

// target returns the address that a flow control instruction transfers to.
// The second return value is false if the instruction does not transfer
// control to a statically known address.
func (e Entry) target() (uint16, bool) {
	if e.Result.Defn == nil {
		return 0, false
	}

	switch e.Result.Defn.Operator {
	case instructions.Jmp:
		if e.Result.Defn.AddressingMode != instructions.Absolute {
			return 0, false
		}
		return e.Result.InstructionData.(uint16), true
	case instructions.Jsr:
		return e.Result.InstructionData.(uint16), true
	}

	if e.Result.Defn.IsBranch() {
		offset := int8(e.Result.InstructionData.(uint8))
		return uint16(int32(e.Next()) + int32(offset)), true
	}

	return 0, false
}

// endsSequence returns true if execution cannot continue to the following
// instruction.
func (e Entry) endsSequence() bool {
	if e.Result.Defn == nil {
		return true
	}

	switch e.Result.Defn.Operator {
	case instructions.Jmp, instructions.Rts, instructions.Rti, instructions.Brk:
		return true
	}

	return false
}

// Field returns a single part of the entry. Used when columnating output.
func (e Entry) Field(f Field) string {
	switch f {
	case FieldAddress:
		return fmt.Sprintf("$%04x", e.Result.Address)
	case FieldBytecode:
		if e.Result.Defn == nil {
			return fmt.Sprintf("%02x", e.Result.InstructionData)
		}
		return e.Result.ByteCode()
	case FieldOperator:
		if e.Result.Defn == nil {
			return "???"
		}
		return e.Result.Defn.Operator.String()
	case FieldOperand:
		return e.Result.Operand()
	}
	return ""
}

// Field identifies a part of a disassembly entry.
type Field int

// List of entry fields.
const (
	FieldAddress Field = iota
	FieldBytecode
	FieldOperator
	FieldOperand
)
