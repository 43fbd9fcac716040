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

package monitor

import (
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/cpu/execution"
	"github.com/jetsetilly/famicore/hardware/cpu/registers"
	"github.com/jetsetilly/famicore/paths"
)

// vizState is the part of the CPU that is graphed. Memory is not included.
type vizState struct {
	PC         *registers.ProgramCounter
	A          *registers.Register
	X          *registers.Register
	Y          *registers.Register
	SP         *registers.StackPointer
	Status     *registers.StatusRegister
	LastResult *execution.Result
}

// viz writes a graphviz description of the CPU registers to the named file.
// If the filename is empty a unique filename is created. The filename is
// returned.
func (mon *Monitor) viz(filename string) (string, error) {
	if filename == "" {
		filename = paths.UniqueFilename("viz", "") + ".dot"
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", curated.Errorf("monitor: viz: %v", err)
	}
	defer f.Close()

	mc := mon.con.CPU
	memviz.Map(f, &vizState{
		PC:         &mc.PC,
		A:          &mc.A,
		X:          &mc.X,
		Y:          &mc.Y,
		SP:         &mc.SP,
		Status:     &mc.Status,
		LastResult: &mc.LastResult,
	})

	return filename, nil
}
