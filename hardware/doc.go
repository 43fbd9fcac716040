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

// Package hardware is the base package for the emulated machine. The Console
// type collects the CPU and the controller pad and provides the functions to
// run a program.
//
// The CPU is in the cpu sub-package. Memory is in the memory sub-package and
// is owned by the CPU. The controller is not mapped into memory. Scripts and
// the monitor press buttons and read the pad directly.
//
// The Run() function executes instructions until the continueCheck function
// says otherwise, an error occurs, the instruction limit in the preferences is
// reached or (when the StopBRK preference is set) a BRK instruction is about
// to be executed.
package hardware
