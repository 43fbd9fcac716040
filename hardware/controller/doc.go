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

// Package controller implements the standard Famicom control pad. The state
// of the eight buttons is latched into a shift register by a strobe and then
// read out one bit at a time, in the order A, B, Select, Start, Up, Down,
// Left, Right.
//
// The pad is not mapped into memory. The caller is responsible for calling
// Strobe() and Read() in response to accesses to the controller port.
package controller
