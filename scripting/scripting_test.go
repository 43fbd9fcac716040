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

package scripting_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/famicore/hardware"
	"github.com/jetsetilly/famicore/hardware/controller"
	"github.com/jetsetilly/famicore/logger"
	"github.com/jetsetilly/famicore/scripting"
	"github.com/jetsetilly/famicore/test"
)

func newScript(t *testing.T) (*scripting.Script, *hardware.Console, *test.CompareWriter) {
	t.Helper()
	con := hardware.NewConsole(nil)
	w := &test.CompareWriter{}
	scr := scripting.NewScript(con, w)
	t.Cleanup(scr.Close)
	return scr, con, w
}

func TestMemory(t *testing.T) {
	scr, con, w := newScript(t)

	err := scr.RunString(`
		mem.load(0x0600, {0xa9, 0x10, 0x00})
		mem.write(0x0200, 0x42)
		print(mem.read(0x0601), mem.read(0x0200))
	`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, con.CPU.Peek(0x0600), 0xa9)
	test.ExpectEquality(t, con.CPU.Peek(0x0602), 0x00)
	test.ExpectEquality(t, con.CPU.Peek(0x0200), 0x42)
	test.ExpectEquality(t, w.String(), "16\t66\n")
}

func TestMemoryErrors(t *testing.T) {
	scr, con, _ := newScript(t)

	test.ExpectFailure(t, scr.RunString(`mem.write(0x10000, 1)`))
	test.ExpectFailure(t, scr.RunString(`mem.write(0x0200, 256)`))
	test.ExpectFailure(t, scr.RunString(`mem.write(0x0200, 1.5)`))
	test.ExpectFailure(t, scr.RunString(`mem.read(0x0200.5)`))
	test.ExpectFailure(t, scr.RunString(`mem.load(0xffff, {1, 2})`))

	// a bad entry leaves memory untouched
	test.ExpectFailure(t, scr.RunString(`mem.load(0x0200, {1, "x"})`))
	test.ExpectEquality(t, con.CPU.Peek(0x0200), 0x00)
	test.ExpectFailure(t, scr.RunString(`mem.load(0x0200, {1, 2, 1.5})`))
	test.ExpectEquality(t, con.CPU.Peek(0x0200), 0x00)
	test.ExpectEquality(t, con.CPU.Peek(0x0201), 0x00)
}

func TestProgram(t *testing.T) {
	scr, con, w := newScript(t)

	err := scr.RunString(`
		mem.load(0x0600, {0xa2, 0x05, 0xa9, 0x00, 0x18, 0x69, 0x03, 0xca, 0xd0, 0xfa, 0x8d, 0x00, 0x02, 0x00})
		cpu.setreg("PC", 0x0600)
		cpu.step()
		print(cpu.reg("X"))
		print(cpu.run())
		print(mem.read(0x0200), cpu.flag("Z"), cpu.flag("C"))
	`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, con.CPU.PC.Address(), 0x060d)

	lines := w.Lines()
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "5")
	test.ExpectEquality(t, lines[1], hardware.StoppedAtBRK)
	test.ExpectEquality(t, lines[2], "15\ttrue\tfalse")
}

func TestRegisters(t *testing.T) {
	scr, con, _ := newScript(t)

	err := scr.RunString(`
		cpu.setreg("a", 0x80)
		cpu.setreg("SP", 0x10)
		cpu.setflag("C", true)
		assert(cpu.reg("A") == 0x80)
		assert(cpu.flag("carry") == true)
	`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, con.CPU.A.Value(), 0x80)
	test.ExpectEquality(t, con.CPU.SP.Value(), 0x10)
	test.ExpectSuccess(t, con.CPU.Status.Carry)

	test.ExpectFailure(t, scr.RunString(`cpu.reg("Q")`))
	test.ExpectFailure(t, scr.RunString(`cpu.flag("Q")`))
	test.ExpectFailure(t, scr.RunString(`cpu.setreg("PC", -1)`))
}

func TestReset(t *testing.T) {
	scr, con, _ := newScript(t)

	err := scr.RunString(`
		mem.load(0xfffc, {0x00, 0xc0})
		cpu.reset()
	`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, con.CPU.PC.Address(), 0xc000)
}

func TestUnimplemented(t *testing.T) {
	scr, _, w := newScript(t)

	// the error can be caught by the script
	err := scr.RunString(`
		mem.write(0x0600, 0x02)
		cpu.setreg("PC", 0x0600)
		local ok, msg = pcall(cpu.step)
		print(ok)
	`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w.String(), "false\n")

	// or left to end the script
	err = scr.RunString(`
		cpu.setreg("PC", 0x0600)
		cpu.step()
	`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "unimplemented instruction"))
}

func TestPad(t *testing.T) {
	scr, con, w := newScript(t)

	err := scr.RunString(`
		pad.press("A")
		pad.press("start")
		pad.strobe(1)
		pad.strobe(0)
		local s = ""
		for i = 1, 8 do
			s = s .. pad.read()
		end
		print(s)
		pad.release("a")
	`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w.String(), "10010000\n")
	test.ExpectFailure(t, con.Pad.IsPressed(controller.A))
	test.ExpectSuccess(t, con.Pad.IsPressed(controller.Start))

	test.ExpectFailure(t, scr.RunString(`pad.press("turbo")`))
}

func TestLog(t *testing.T) {
	scr, _, _ := newScript(t)

	logger.Clear()
	test.DemandSuccess(t, scr.RunString(`log("script", "hello")`))

	w := &test.CompareWriter{}
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "script: hello\n")
}

func TestRunFile(t *testing.T) {
	scr, _, w := newScript(t)

	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(`print("file")`), 0o644))
	test.DemandSuccess(t, scr.RunFile(fn))
	test.ExpectEquality(t, w.String(), "file\n")

	test.ExpectFailure(t, scr.RunFile(filepath.Join(t.TempDir(), "missing.lua")))
}
