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

// Package monitor implements a line oriented machine code monitor for the
// emulated console. Commands are read from an io.Reader and output is written
// to an io.Writer, meaning the monitor can be driven by a terminal or by a
// test.
//
// Commands are case insensitive. Numbers are hexadecimal and may be prefixed
// with "0x" or "$". Decimal numbers are prefixed with "#".
//
//	STEP [n]            execute n instructions (default 1)
//	RUN [n]             execute until BRK or n instructions (default #100000)
//	REGS                show registers
//	MEM addr [len]      hex dump of memory
//	POKE addr val...    write bytes to memory
//	PC addr             set the program counter
//	RESET               reset the CPU
//	DISASM [addr] [n]   disassemble n instructions (default 10) from addr or PC
//	PRESS button        press controller button
//	RELEASE button      release controller button
//	PAD                 show the controller state
//	VIZ [file]          write a graphviz file of the CPU registers
//	KEYS                single keystroke stepping and controller input
//	LOG [n]             show the last n log entries (default 0x10)
//	HELP                list commands
//	QUIT                end the monitor
//
// The width of memory dumps is decided by the width of the terminal, if the
// output is a terminal.
package monitor
