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
	"io"
	"os"

	"golang.org/x/term"
)

// the default number of bytes per line in memory dumps
const defaultDumpWidth = 16

// isTerminal returns true if the writer is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// dumpWidth decides the number of bytes per line in a memory dump from the
// width of the terminal. Each line has a six character address column and
// three characters per byte. The result is a power of two between 4 and 32.
func dumpWidth(w io.Writer) int {
	if !isTerminal(w) {
		return defaultDumpWidth
	}

	cols, _, err := term.GetSize(int(w.(*os.File).Fd()))
	if err != nil {
		return defaultDumpWidth
	}

	return widthForColumns(cols)
}

func widthForColumns(cols int) int {
	fit := (cols - 6) / 3
	for _, w := range []int{32, 16, 8} {
		if fit >= w {
			return w
		}
	}
	return 4
}
