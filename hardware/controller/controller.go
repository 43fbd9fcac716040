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

package controller

import (
	"strings"

	"github.com/jetsetilly/famicore/curated"
)

// Button is a single button on the pad. The value of each button is its bit
// in the shift register.
type Button uint8

// List of buttons in shift order.
const (
	A      Button = 0x01
	B      Button = 0x02
	Select Button = 0x04
	Start  Button = 0x08
	Up     Button = 0x10
	Down   Button = 0x20
	Left   Button = 0x40
	Right  Button = 0x80
)

// Buttons lists every button in shift order.
var Buttons = []Button{A, B, Select, Start, Up, Down, Left, Right}

func (b Button) String() string {
	switch b {
	case A:
		return "A"
	case B:
		return "B"
	case Select:
		return "SELECT"
	case Start:
		return "START"
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	}
	return "unknown button"
}

// UnknownButton is returned by ParseButton() if the name is not recognised.
const UnknownButton = "controller: unknown button (%s)"

// ParseButton returns the Button with the name s. Case insensitive.
func ParseButton(s string) (Button, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, b := range Buttons {
		if b.String() == s {
			return b, nil
		}
	}
	return 0, curated.Errorf(UnknownButton, s)
}

// KeyMap maps keyboard keys to buttons. Used by interactive front ends.
var KeyMap = map[byte]Button{
	'w': Up,
	's': Down,
	'a': Left,
	'd': Right,
	'q': A,
	'e': B,
	'p': Select,
	'o': Start,
}

// Pad is a standard control pad.
type Pad struct {
	state uint8
	shift uint8
}

// NewPad is the preferred method of initialisation for the Pad type.
func NewPad() *Pad {
	return &Pad{}
}

func (pad *Pad) String() string {
	s := strings.Builder{}
	for _, b := range Buttons {
		if pad.IsPressed(b) {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(b.String())
		}
	}
	if s.Len() == 0 {
		return "none"
	}
	return s.String()
}

// Press a button.
func (pad *Pad) Press(b Button) {
	pad.state |= uint8(b)
}

// Release a button.
func (pad *Pad) Release(b Button) {
	pad.state &^= uint8(b)
}

// IsPressed returns true if the button is currently pressed.
func (pad *Pad) IsPressed(b Button) bool {
	return pad.state&uint8(b) == uint8(b)
}

// State returns the current state of all buttons.
func (pad *Pad) State() uint8 {
	return pad.state
}

// Strobe latches the state of the buttons into the shift register if bit
// zero of value is set.
func (pad *Pad) Strobe(value uint8) {
	if value&0x01 == 0x01 {
		pad.shift = pad.state
	}
}

// Read returns the next bit of the shift register. Zero is shifted in so
// that once all eight buttons have been read, further reads return zero.
func (pad *Pad) Read() uint8 {
	bit := pad.shift & 0x01
	pad.shift >>= 1
	return bit
}
