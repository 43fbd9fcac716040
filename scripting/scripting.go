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

package scripting

import (
	"fmt"
	"io"
	"math"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware"
	"github.com/jetsetilly/famicore/hardware/controller"
	"github.com/jetsetilly/famicore/logger"
)

// the default number of instructions for cpu.run()
const defaultRunLimit = 100000

// Script is a Lua environment attached to a console.
type Script struct {
	con    *hardware.Console
	output io.Writer
	L      *lua.LState
}

// NewScript is the preferred method of initialisation for the Script type.
// Close() should be called when the Script is no longer required.
func NewScript(con *hardware.Console, output io.Writer) *Script {
	scr := &Script{
		con:    con,
		output: output,
		L:      lua.NewState(),
	}

	scr.L.SetGlobal("cpu", scr.L.SetFuncs(scr.L.NewTable(), map[string]lua.LGFunction{
		"step":    scr.cpuStep,
		"run":     scr.cpuRun,
		"reg":     scr.cpuReg,
		"setreg":  scr.cpuSetReg,
		"flag":    scr.cpuFlag,
		"setflag": scr.cpuSetFlag,
		"reset":   scr.cpuReset,
	}))

	scr.L.SetGlobal("mem", scr.L.SetFuncs(scr.L.NewTable(), map[string]lua.LGFunction{
		"read":  scr.memRead,
		"write": scr.memWrite,
		"load":  scr.memLoad,
	}))

	scr.L.SetGlobal("pad", scr.L.SetFuncs(scr.L.NewTable(), map[string]lua.LGFunction{
		"press":   scr.padPress,
		"release": scr.padRelease,
		"strobe":  scr.padStrobe,
		"read":    scr.padRead,
	}))

	scr.L.SetGlobal("log", scr.L.NewFunction(scr.log))
	scr.L.SetGlobal("print", scr.L.NewFunction(scr.print))

	return scr
}

// Close the Lua environment.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunFile runs the Lua script in the named file.
func (scr *Script) RunFile(filename string) error {
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf("scripting: %v", err)
	}
	return nil
}

// RunString runs the Lua source.
func (scr *Script) RunString(source string) error {
	if err := scr.L.DoString(source); err != nil {
		return curated.Errorf("scripting: %v", err)
	}
	return nil
}

// checkAddress returns the argument at n as a sixteen bit address.
// isInteger returns true if the number has no fractional part.
func isInteger(v lua.LNumber) bool {
	return float64(v) == math.Trunc(float64(v))
}

// checkInteger returns the argument at n. Numbers with a fractional part are
// rejected rather than truncated.
func checkInteger(L *lua.LState, n int) int {
	v := L.CheckNumber(n)
	if !isInteger(v) {
		L.ArgError(n, "integer expected")
	}
	return int(v)
}

func checkAddress(L *lua.LState, n int) uint16 {
	v := checkInteger(L, n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, "address out of range")
	}
	return uint16(v)
}

// checkByte returns the argument at n as an eight bit value.
func checkByte(L *lua.LState, n int) uint8 {
	v := checkInteger(L, n)
	if v < 0 || v > 0xff {
		L.ArgError(n, "value out of range")
	}
	return uint8(v)
}

func checkButton(L *lua.LState, n int) controller.Button {
	b, err := controller.ParseButton(L.CheckString(n))
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return b
}

func (scr *Script) cpuStep(L *lua.LState) int {
	n := L.OptInt(1, 1)
	for i := 0; i < n; i++ {
		if err := scr.con.Step(); err != nil {
			L.RaiseError("%v", err)
		}
	}
	return 0
}

func (scr *Script) cpuRun(L *lua.LState) int {
	n := L.OptInt(1, defaultRunLimit)
	for i := 0; i < n; i++ {
		if scr.con.CPU.Peek(scr.con.CPU.PC.Address()) == 0x00 {
			L.Push(lua.LString(hardware.StoppedAtBRK))
			return 1
		}
		if err := scr.con.Step(); err != nil {
			L.RaiseError("%v", err)
		}
	}
	L.Push(lua.LString(hardware.StoppedAtLimit))
	return 1
}

func (scr *Script) cpuReg(L *lua.LState) int {
	v, err := scr.con.CPU.GetRegister(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) cpuSetReg(L *lua.LState) int {
	v := checkInteger(L, 2)
	if v < 0 || v > 0xffff {
		L.ArgError(2, "value out of range")
	}
	if err := scr.con.CPU.SetRegister(L.CheckString(1), uint16(v)); err != nil {
		L.ArgError(1, err.Error())
	}
	return 0
}

func (scr *Script) cpuFlag(L *lua.LState) int {
	f, err := scr.con.CPU.GetFlag(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
	}
	L.Push(lua.LBool(f))
	return 1
}

func (scr *Script) cpuSetFlag(L *lua.LState) int {
	if err := scr.con.CPU.SetFlag(L.CheckString(1), L.CheckBool(2)); err != nil {
		L.ArgError(1, err.Error())
	}
	return 0
}

func (scr *Script) cpuReset(L *lua.LState) int {
	scr.con.Reset()
	return 0
}

func (scr *Script) memRead(L *lua.LState) int {
	L.Push(lua.LNumber(scr.con.CPU.Peek(checkAddress(L, 1))))
	return 1
}

func (scr *Script) memWrite(L *lua.LState) int {
	scr.con.CPU.Poke(checkAddress(L, 1), checkByte(L, 2))
	return 0
}

func (scr *Script) memLoad(L *lua.LState) int {
	addr := checkAddress(L, 1)
	tbl := L.CheckTable(2)

	n := tbl.Len()
	if int(addr)+n > 0x10000 {
		L.ArgError(2, "data runs past end of memory")
	}

	// memory is not touched unless every entry is valid
	data := make([]uint8, n)
	for i := range data {
		v, ok := tbl.RawGetInt(i + 1).(lua.LNumber)
		if !ok || !isInteger(v) || v < 0 || v > 0xff {
			L.ArgError(2, fmt.Sprintf("entry %d is not a byte", i+1))
		}
		data[i] = uint8(v)
	}

	for i, v := range data {
		scr.con.CPU.Poke(addr+uint16(i), v)
	}

	return 0
}

func (scr *Script) padPress(L *lua.LState) int {
	scr.con.Pad.Press(checkButton(L, 1))
	return 0
}

func (scr *Script) padRelease(L *lua.LState) int {
	scr.con.Pad.Release(checkButton(L, 1))
	return 0
}

func (scr *Script) padStrobe(L *lua.LState) int {
	scr.con.Pad.Strobe(checkByte(L, 1))
	return 0
}

func (scr *Script) padRead(L *lua.LState) int {
	L.Push(lua.LNumber(scr.con.Pad.Read()))
	return 1
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, L.CheckString(1), L.CheckString(2))
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}
