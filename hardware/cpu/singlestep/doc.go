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

// Package singlestep checks the CPU against the 6502 single-step tests
// created/maintained by Thom Harte.
//
// https://github.com/SingleStepTests/65x02
//
// The full tests are large and are not included in the repository. The
// testdata directory contains a small sample file in the same format. To run
// the full tests, download the files for the instructions you want from the
// 6502/v1 directory of the repository above and copy them into testdata.
// Every .json file in testdata is run.
//
// Only the final state of the registers and memory is compared. Instructions
// with documented differences from the 6502 are skipped, as are tests that
// begin with the decimal mode flag set.
package singlestep
