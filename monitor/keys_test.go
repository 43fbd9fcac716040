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
	"strings"
	"testing"

	"github.com/jetsetilly/famicore/hardware"
	"github.com/jetsetilly/famicore/hardware/controller"
	"github.com/jetsetilly/famicore/test"
)

func TestKeys(t *testing.T) {
	con := hardware.NewConsole(nil)
	con.CPU.Poke(0x0600, 0xe8)
	con.CPU.Poke(0x0601, 0xe8)
	con.CPU.LoadPC(0x0600)

	w := &test.CompareWriter{}
	mon := NewMonitor(con, w)
	mon.openKeys = func() (keyInput, error) {
		return io.NopCloser(strings.NewReader(" wox ")), nil
	}

	test.DemandSuccess(t, mon.Execute("KEYS"))

	// the trailing space follows the exit key and is never read
	test.ExpectEquality(t, con.CPU.X.Value(), 0x01)
	test.ExpectSuccess(t, con.Pad.IsPressed(controller.Up))
	test.ExpectSuccess(t, con.Pad.IsPressed(controller.Start))

	lines := w.Lines()
	test.DemandEquality(t, len(lines), 4)
	test.ExpectEquality(t, lines[1], "$0600  e8        INX")
	test.ExpectEquality(t, lines[2], "pad: UP")
	test.ExpectEquality(t, lines[3], "pad: START UP")
}

func TestKeysToggle(t *testing.T) {
	con := hardware.NewConsole(nil)
	mon := NewMonitor(con, &test.CompareWriter{})

	test.DemandSuccess(t, mon.keys(strings.NewReader("dd")))
	test.ExpectFailure(t, con.Pad.IsPressed(controller.Right))
}

func TestWidthForColumns(t *testing.T) {
	test.ExpectEquality(t, widthForColumns(120), 32)
	test.ExpectEquality(t, widthForColumns(80), 16)
	test.ExpectEquality(t, widthForColumns(40), 8)
	test.ExpectEquality(t, widthForColumns(20), 4)
}
