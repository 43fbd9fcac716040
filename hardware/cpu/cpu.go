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

import (
	"fmt"

	"github.com/jetsetilly/famicore/hardware/cpu/execution"
	"github.com/jetsetilly/famicore/hardware/cpu/instructions"
	"github.com/jetsetilly/famicore/hardware/cpu/registers"
	"github.com/jetsetilly/famicore/hardware/memory"
)

// Addresses of the interrupt vectors.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
	BRK   = IRQ
)

// CPU implements the 6502 as found in the Famicom. Register logic is
// implemented by the Register type in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// scratch register for read-modify-write instructions that target memory
	acc8 registers.Register

	mem          *memory.Memory
	instructions []*instructions.Definition

	// true from Reset() until the next call to ExecuteInstruction()
	reset bool

	// LastResult describes the most recently executed instruction. It is only
	// updated by ExecuteInstruction(). Calling an instruction function
	// directly does not change it
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// Registers and memory are zeroed and the stack pointer is 0xff.
func NewCPU() *CPU {
	return &CPU{
		mem:          memory.NewMemory(),
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0xff),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "acc8"),
		instructions: instructions.GetDefinitions(),
		reset:        true,
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset restores the stack pointer to 0xff. Memory, the other registers and
// the status flags are not touched. Use LoadPCIndirect(Reset) to start
// execution at the RESET vector.
func (mc *CPU) Reset() {
	mc.SP.Load(0xff)
	mc.LastResult.Reset()
	mc.reset = true
}

// HasReset returns true if no instruction has been executed since the CPU was
// created or last reset.
func (mc *CPU) HasReset() bool {
	return mc.reset
}

// Read returns the byte at address.
func (mc *CPU) Read(address uint16) uint8 {
	return mc.mem.Read(address)
}

// Write stores value at address.
func (mc *CPU) Write(address uint16, value uint8) {
	mc.mem.Write(address, value)
}

// Peek is an implementation of bus.DebuggerBus.
func (mc *CPU) Peek(address uint16) uint8 {
	return mc.mem.Peek(address)
}

// Poke is an implementation of bus.DebuggerBus.
func (mc *CPU) Poke(address uint16, value uint8) {
	mc.mem.Poke(address, value)
}

// Dump returns a hex dump of memory. See memory.Dump() for details.
func (mc *CPU) Dump(origin uint16, length int, width int) string {
	return mc.mem.Dump(origin, length, width)
}

// read16 returns the little-endian sixteen bit value at address.
func (mc *CPU) read16(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// LoadPCIndirect loads the contents of indirectAddress into the PC. The
// vector is stored low byte first.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) {
	mc.PC.Load(mc.read16(indirectAddress))
}

// LoadPC loads directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}
