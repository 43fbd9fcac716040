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
	"fmt"

	"github.com/jetsetilly/famicore/curated"
)

// State indicates whether Run() should continue.
type State int

// List of valid State values.
const (
	Running State = iota
	Ending
)

// Reasons for Run() returning without error.
const (
	StoppedByCheck = "stopped"
	StoppedAtBRK   = "BRK"
	StoppedAtLimit = "instruction limit"
)

// Step executes a single instruction.
func (con *Console) Step() error {
	err := con.CPU.ExecuteInstruction()
	if con.CPU.LastResult.Final {
		con.Count++
		if con.Trace != nil {
			fmt.Fprintln(con.Trace, con.CPU.LastResult.String())
		}
	}
	if err != nil {
		return curated.Errorf("console: %v", err)
	}
	return nil
}

// atBRK returns true if the next instruction is a BRK.
func (con *Console) atBRK() bool {
	return con.CPU.Peek(con.CPU.PC.Address()) == 0x00
}

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every instruction and can be nil. The reason for
// stopping is returned.
func (con *Console) Run(continueCheck func() (State, error)) (string, error) {
	if continueCheck == nil {
		continueCheck = func() (State, error) { return Running, nil }
	}

	var limit int
	var stopBRK bool
	if con.Prefs != nil {
		limit = con.Prefs.MaxInstructions.Get().(int)
		stopBRK = con.Prefs.StopBRK.Get().(bool)
	}

	start := con.Count

	for {
		if stopBRK && con.atBRK() {
			return StoppedAtBRK, nil
		}
		if limit > 0 && con.Count-start >= limit {
			return StoppedAtLimit, nil
		}

		if err := con.Step(); err != nil {
			return "", err
		}

		state, err := continueCheck()
		if err != nil {
			return "", err
		}
		if state == Ending {
			return StoppedByCheck, nil
		}
	}
}
