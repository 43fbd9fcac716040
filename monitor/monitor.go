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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/disassembly"
	"github.com/jetsetilly/famicore/hardware"
	"github.com/jetsetilly/famicore/hardware/controller"
	"github.com/jetsetilly/famicore/logger"
)

// Sentinal error patterns.
const (
	UnknownCommand = "monitor: unknown command (%s)"
	InvalidNumber  = "monitor: invalid number (%s)"
	MissingArgs    = "monitor: %s: missing arguments"
)

// the default number of instructions for RUN
const defaultRunLimit = 100000

// the default number of instructions for DISASM
const defaultDisasmCount = 10

// Monitor is an interactive front end to the console.
type Monitor struct {
	con    *hardware.Console
	output io.Writer

	// number of bytes per line in memory dumps
	dumpWidth int

	// whether the prompt should be printed before reading a command
	prompt bool

	// set by the QUIT command
	quit bool

	// opens the input for the KEYS command. replaced in tests
	openKeys func() (keyInput, error)
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(con *hardware.Console, output io.Writer) *Monitor {
	mon := &Monitor{
		con:       con,
		output:    output,
		dumpWidth: dumpWidth(output),
		prompt:    isTerminal(output),
		openKeys:  openTTY,
	}
	return mon
}

// Run reads commands from input until QUIT or the end of input.
func (mon *Monitor) Run(input io.Reader) error {
	scanner := bufio.NewScanner(input)

	for !mon.quit {
		if mon.prompt {
			mon.printf("[%s] > ", mon.con.CPU.PC)
		}

		if !scanner.Scan() {
			break // for loop
		}

		if err := mon.Execute(scanner.Text()); err != nil {
			mon.printf("* %v\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("monitor: %v", err)
	}

	return nil
}

func (mon *Monitor) printf(format string, args ...any) {
	fmt.Fprintf(mon.output, format, args...)
}

// parseNumber accepts hexadecimal values, with or without a 0x or $ prefix,
// and decimal values prefixed with #.
func parseNumber(s string) (int, error) {
	var v int64
	var err error

	switch {
	case strings.HasPrefix(s, "#"):
		v, err = strconv.ParseInt(s[1:], 10, 32)
	case strings.HasPrefix(s, "$"):
		v, err = strconv.ParseInt(s[1:], 16, 32)
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err = strconv.ParseInt(s[2:], 16, 32)
	default:
		v, err = strconv.ParseInt(s, 16, 32)
	}
	if err != nil {
		return 0, curated.Errorf(InvalidNumber, s)
	}

	return int(v), nil
}

func parseAddress(s string) (uint16, error) {
	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 0xffff {
		return 0, curated.Errorf(InvalidNumber, s)
	}
	return uint16(v), nil
}

func parseByte(s string) (uint8, error) {
	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 0xff {
		return 0, curated.Errorf(InvalidNumber, s)
	}
	return uint8(v), nil
}

// Execute a single command line.
func (mon *Monitor) Execute(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}

	cmd := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch cmd {
	case "STEP", "S":
		n := 1
		if len(args) > 0 {
			var err error
			n, err = parseNumber(args[0])
			if err != nil {
				return err
			}
		}
		return mon.step(n)

	case "RUN":
		n := defaultRunLimit
		if len(args) > 0 {
			var err error
			n, err = parseNumber(args[0])
			if err != nil {
				return err
			}
		}
		return mon.run(n)

	case "REGS", "R":
		mon.printf("%s\n", mon.con.CPU)

	case "MEM", "M":
		if len(args) == 0 {
			return curated.Errorf(MissingArgs, cmd)
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		length := 0x40
		if len(args) > 1 {
			length, err = parseNumber(args[1])
			if err != nil {
				return err
			}
		}
		mon.printf("%s", mon.con.CPU.Dump(addr, length, mon.dumpWidth))

	case "POKE":
		if len(args) < 2 {
			return curated.Errorf(MissingArgs, cmd)
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		for i, a := range args[1:] {
			v, err := parseByte(a)
			if err != nil {
				return err
			}
			mon.con.CPU.Poke(addr+uint16(i), v)
		}

	case "PC":
		if len(args) == 0 {
			return curated.Errorf(MissingArgs, cmd)
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		mon.con.CPU.LoadPC(addr)

	case "RESET":
		mon.con.Reset()
		mon.printf("%s\n", mon.con.CPU)

	case "DISASM", "D":
		addr := mon.con.CPU.PC.Address()
		n := defaultDisasmCount
		var err error
		if len(args) > 0 {
			addr, err = parseAddress(args[0])
			if err != nil {
				return err
			}
		}
		if len(args) > 1 {
			n, err = parseNumber(args[1])
			if err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			e := disassembly.Decode(mon.con.CPU, addr)
			mon.printf("%s\n", e)
			addr = e.Next()
		}

	case "PRESS", "RELEASE":
		if len(args) == 0 {
			return curated.Errorf(MissingArgs, cmd)
		}
		b, err := controller.ParseButton(args[0])
		if err != nil {
			return err
		}
		if cmd == "PRESS" {
			mon.con.Pad.Press(b)
		} else {
			mon.con.Pad.Release(b)
		}
		mon.printf("pad: %s\n", mon.con.Pad)

	case "PAD":
		mon.printf("pad: %s\n", mon.con.Pad)

	case "VIZ":
		fn := ""
		if len(args) > 0 {
			fn = args[0]
		}
		fn, err := mon.viz(fn)
		if err != nil {
			return err
		}
		mon.printf("graph written to %s\n", fn)

	case "KEYS":
		in, err := mon.openKeys()
		if err != nil {
			return err
		}
		defer in.Close()
		return mon.keys(in)

	case "LOG":
		n := 0x10
		if len(args) > 0 {
			var err error
			n, err = parseNumber(args[0])
			if err != nil {
				return err
			}
		}
		logger.Tail(mon.output, n)

	case "HELP", "?":
		mon.printf("%s\n", help)

	case "QUIT", "Q":
		mon.quit = true

	default:
		return curated.Errorf(UnknownCommand, tokens[0])
	}

	return nil
}

// step executes n instructions, printing each one.
func (mon *Monitor) step(n int) error {
	for i := 0; i < n; i++ {
		err := mon.con.Step()
		mon.printf("%s\n", mon.con.CPU.LastResult)
		if err != nil {
			return err
		}
	}
	return nil
}

// run executes until the next instruction is BRK or n instructions have been
// executed.
func (mon *Monitor) run(n int) error {
	for i := 0; i < n; i++ {
		if mon.con.CPU.Peek(mon.con.CPU.PC.Address()) == 0x00 {
			mon.printf("BRK at %s after %d instructions\n", mon.con.CPU.PC, i)
			return nil
		}
		if err := mon.con.Step(); err != nil {
			return err
		}
	}
	mon.printf("stopped after %d instructions\n", n)
	return nil
}

const help = `STEP [n]  RUN [n]  REGS  MEM addr [len]  POKE addr val...  PC addr  RESET
DISASM [addr] [n]  PRESS button  RELEASE button  PAD  VIZ [file]  KEYS
LOG [n]  HELP  QUIT`
