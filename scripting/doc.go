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

// Package scripting runs Lua scripts that drive the emulated console. Scripts
// are run with gopher-lua and have access to three tables and a logging
// function:
//
//	cpu.step([n])          execute n instructions (default 1)
//	cpu.run([n])           execute until BRK or n instructions. returns the reason for stopping
//	cpu.reg(name)          value of register (PC, A, X, Y, SP, SR)
//	cpu.setreg(name, v)    load register
//	cpu.flag(name)         state of status flag (N, V, B, D, I, Z, C)
//	cpu.setflag(name, b)   set status flag
//	cpu.reset()            reset the CPU and load the RESET vector
//
//	mem.read(addr)         read byte without side effects
//	mem.write(addr, v)     write byte
//	mem.load(addr, {...})  write a table of bytes starting at addr
//
//	pad.press(button)      press controller button
//	pad.release(button)    release controller button
//	pad.strobe(v)          strobe the controller
//	pad.read()             read the next bit from the controller
//
//	log(tag, message)      add an entry to the central log
//
// The Lua print function writes to the output writer given to NewScript().
// Errors in the console (an unimplemented instruction for example) are raised
// as Lua errors and can be caught with pcall().
package scripting
