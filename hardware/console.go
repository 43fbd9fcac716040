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

package hardware

import (
	"io"

	"github.com/jetsetilly/famicore/hardware/controller"
	"github.com/jetsetilly/famicore/hardware/cpu"
	"github.com/jetsetilly/famicore/hardware/preferences"
	"github.com/jetsetilly/famicore/loader"
	"github.com/jetsetilly/famicore/logger"
)

// Console is the main container for the emulated components.
type Console struct {
	CPU *cpu.CPU
	Pad *controller.Pad

	// preferences can be nil, in which case Run() has no instruction limit
	// and does not stop on BRK
	Prefs *preferences.Preferences

	// if not nil each executed instruction is written to Trace
	Trace io.Writer

	// the number of instructions executed since the last Reset()
	Count int
}

// NewConsole creates a new Console and everything associated with it.
func NewConsole(prefs *preferences.Preferences) *Console {
	return &Console{
		CPU:   cpu.NewCPU(),
		Pad:   controller.NewPad(),
		Prefs: prefs,
	}
}

// AttachImage loads the program image and attaches it to memory. The program
// counter is set by the loader.
func (con *Console) AttachImage(ld *loader.Loader) error {
	if err := ld.Load(); err != nil {
		return err
	}
	if err := ld.Attach(con.CPU); err != nil {
		return err
	}
	con.Count = 0
	return nil
}

// Reset the CPU and load the PC from the RESET vector, if it is non-zero.
// Memory is not cleared.
func (con *Console) Reset() {
	con.CPU.Reset()
	if con.CPU.Peek(cpu.Reset) != 0 || con.CPU.Peek(cpu.Reset+1) != 0 {
		con.CPU.LoadPCIndirect(cpu.Reset)
	}
	con.Count = 0
	logger.Logf(logger.Allow, "console", "reset: PC=%s", con.CPU.PC)
}
