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
	"fmt"

	"github.com/jetsetilly/famicore/hardware/cpu/registers"
)

// TargetKind identifies what a Target refers to.
type TargetKind int

// List of target kinds.
const (
	TargetA TargetKind = iota
	TargetX
	TargetY
	TargetMemory
)

// Target is the operand of the shift and rotate instructions. It refers either
// to one of the eight bit registers or to a memory address. The addressing
// mode decides which.
type Target struct {
	Kind    TargetKind
	Address uint16
}

// Targets for the eight bit registers.
var (
	AccumulatorTarget = Target{Kind: TargetA}
	XTarget           = Target{Kind: TargetX}
	YTarget           = Target{Kind: TargetY}
)

// MemoryTarget returns a Target for a memory address.
func MemoryTarget(address uint16) Target {
	return Target{Kind: TargetMemory, Address: address}
}

func (t Target) String() string {
	switch t.Kind {
	case TargetA:
		return "A"
	case TargetX:
		return "X"
	case TargetY:
		return "Y"
	}
	return fmt.Sprintf("$%04x", t.Address)
}

// modify applies f to the value referred to by the target and sets the
// zero/negative flags from the new value. The carry flag is set to the value
// returned by f.
func (mc *CPU) modify(t Target, f func(r *registers.Register) bool) {
	var r *registers.Register

	switch t.Kind {
	case TargetA:
		r = &mc.A
	case TargetX:
		r = &mc.X
	case TargetY:
		r = &mc.Y
	default:
		mc.acc8.Load(mc.mem.Read(t.Address))
		r = &mc.acc8
	}

	mc.Status.Carry = f(r)
	mc.Status.UpdateZeroNegative(r.Value())

	if t.Kind == TargetMemory {
		mc.mem.Write(t.Address, r.Value())
	}
}
