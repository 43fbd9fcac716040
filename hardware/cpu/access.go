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

package cpu

import (
	"strings"

	"github.com/jetsetilly/famicore/curated"
)

// Sentinal error patterns for register and flag access by name.
const (
	UnknownRegister = "cpu: unknown register (%s)"
	UnknownFlag     = "cpu: unknown flag (%s)"
)

// GetRegister returns the value of the named register. Names are the register
// labels (PC, A, X, Y, SP, SR) and are case insensitive.
func (mc *CPU) GetRegister(name string) (uint16, error) {
	switch strings.ToUpper(name) {
	case "PC":
		return mc.PC.Address(), nil
	case "A":
		return uint16(mc.A.Value()), nil
	case "X":
		return uint16(mc.X.Value()), nil
	case "Y":
		return uint16(mc.Y.Value()), nil
	case "SP":
		return uint16(mc.SP.Value()), nil
	case "SR":
		return uint16(mc.Status.Value()), nil
	}
	return 0, curated.Errorf(UnknownRegister, name)
}

// SetRegister loads the named register. Eight bit registers take the low byte
// of value.
func (mc *CPU) SetRegister(name string, value uint16) error {
	switch strings.ToUpper(name) {
	case "PC":
		mc.PC.Load(value)
	case "A":
		mc.A.Load(uint8(value))
	case "X":
		mc.X.Load(uint8(value))
	case "Y":
		mc.Y.Load(uint8(value))
	case "SP":
		mc.SP.Load(uint8(value))
	case "SR":
		mc.Status.Load(uint8(value))
	default:
		return curated.Errorf(UnknownRegister, name)
	}
	return nil
}

// flag returns a pointer to the named status flag. Flags are named with a
// single letter (N, V, B, D, I, Z, C) or with the full name of the flag.
func (mc *CPU) flag(name string) *bool {
	switch strings.ToUpper(name) {
	case "N", "NEGATIVE":
		return &mc.Status.Negative
	case "V", "OVERFLOW":
		return &mc.Status.Overflow
	case "B", "BREAK":
		return &mc.Status.Break
	case "D", "DECIMAL", "DECIMALMODE":
		return &mc.Status.DecimalMode
	case "I", "INTERRUPT", "INTERRUPTDISABLE":
		return &mc.Status.InterruptDisable
	case "Z", "ZERO":
		return &mc.Status.Zero
	case "C", "CARRY":
		return &mc.Status.Carry
	}
	return nil
}

// GetFlag returns the state of the named status flag.
func (mc *CPU) GetFlag(name string) (bool, error) {
	f := mc.flag(name)
	if f == nil {
		return false, curated.Errorf(UnknownFlag, name)
	}
	return *f, nil
}

// SetFlag sets the state of the named status flag.
func (mc *CPU) SetFlag(name string, value bool) error {
	f := mc.flag(name)
	if f == nil {
		return curated.Errorf(UnknownFlag, name)
	}
	*f = value
	return nil
}
