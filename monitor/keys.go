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
	"errors"
	"io"

	"github.com/pkg/term"

	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/controller"
)

// keyInput is the source of keystrokes for the KEYS command.
type keyInput interface {
	io.Reader
	Close() error
}

// tty is the controlling terminal in cbreak mode.
type tty struct {
	t *term.Term
}

func openTTY() (keyInput, error) {
	t, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf("monitor: keys: %v", err)
	}
	return &tty{t: t}, nil
}

func (k *tty) Read(p []byte) (int, error) {
	return k.t.Read(p)
}

// Close restores the terminal to the mode it was in before it was opened.
func (k *tty) Close() error {
	if err := k.t.Restore(); err != nil {
		_ = k.t.Close()
		return curated.Errorf("monitor: keys: %v", err)
	}
	return k.t.Close()
}

// keys reads single keystrokes. Space or return steps one instruction, R
// shows the registers and the controller keys toggle the corresponding
// button. X or escape returns to the command line.
func (mon *Monitor) keys(in io.Reader) error {
	mon.printf("keys: space to step, r for registers, x to exit\n")

	b := make([]byte, 1)
	for {
		_, err := in.Read(b)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf("monitor: keys: %v", err)
		}

		switch b[0] {
		case 'x', 'X', 0x1b:
			return nil
		case ' ', '\n', '\r':
			if err := mon.step(1); err != nil {
				return err
			}
		case 'r', 'R':
			mon.printf("%s\n", mon.con.CPU)
		default:
			if btn, ok := controller.KeyMap[b[0]]; ok {
				if mon.con.Pad.IsPressed(btn) {
					mon.con.Pad.Release(btn)
				} else {
					mon.con.Pad.Press(btn)
				}
				mon.printf("pad: %s\n", mon.con.Pad)
			}
		}
	}
}
