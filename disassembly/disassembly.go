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

package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/memory/bus"
)

// Sentinal error patterns.
const (
	InvalidRange = "disassembly: invalid range (%#04x with length %d)"
)

// Disassembly represents the decoded instructions of a range of memory.
type Disassembly struct {
	origin  uint16
	entries []Entry
}

// FromMemory decodes every address in the range as though it were the start of
// an instruction. The range must not run past the end of memory.
func FromMemory(mem bus.DebuggerBus, origin uint16, length int) (*Disassembly, error) {
	if length <= 0 || int(origin)+length > 0x10000 {
		return nil, curated.Errorf(InvalidRange, origin, length)
	}

	dsm := &Disassembly{
		origin:  origin,
		entries: make([]Entry, length),
	}

	for i := range dsm.entries {
		dsm.entries[i] = Decode(mem, origin+uint16(i))
	}

	return dsm, nil
}

// inRange returns the index of the address in the entries slice.
func (dsm *Disassembly) inRange(address uint16) (int, bool) {
	if address < dsm.origin {
		return 0, false
	}
	idx := int(address - dsm.origin)
	return idx, idx < len(dsm.entries)
}

// Get returns the entry for the address.
func (dsm *Disassembly) Get(address uint16) (Entry, bool) {
	idx, ok := dsm.inRange(address)
	if !ok {
		return Entry{}, false
	}
	return dsm.entries[idx], true
}

// Bless follows the flow of the program from each start address and promotes
// every entry it reaches. Jump, subroutine and branch targets are followed
// when they fall inside the disassembled range.
func (dsm *Disassembly) Bless(starts ...uint16) {
	pending := append([]uint16{}, starts...)

	for len(pending) > 0 {
		a := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		for {
			idx, ok := dsm.inRange(a)
			if !ok {
				break
			}

			e := &dsm.entries[idx]
			if e.Level == EntryLevelBlessed || e.Result.Defn == nil {
				break
			}

			// instruction must fit in the range
			if _, ok := dsm.inRange(a + uint16(e.Result.Defn.Bytes()) - 1); !ok {
				break
			}

			e.Level = EntryLevelBlessed

			if t, ok := e.target(); ok {
				pending = append(pending, t)
			}

			if e.endsSequence() {
				break
			}

			next := e.Next()

			// stop if the address has wrapped around
			if next < a {
				break
			}
			a = next
		}
	}
}

// Blessed returns all blessed entries in address order.
func (dsm *Disassembly) Blessed() []Entry {
	var b []Entry
	for _, e := range dsm.entries {
		if e.Level == EntryLevelBlessed {
			b = append(b, e)
		}
	}
	return b
}

// Write the disassembly to the io.Writer. If blessedOnly is false then the
// range is output linearly, each entry beginning at the address following the
// previous entry, and entries that are not blessed are marked with an
// asterisk.
func (dsm *Disassembly) Write(w io.Writer, blessedOnly bool) error {
	s := strings.Builder{}

	if blessedOnly {
		for _, e := range dsm.Blessed() {
			s.WriteString(fmt.Sprintf("%s\n", e))
		}
	} else {
		idx := 0
		for idx < len(dsm.entries) {
			e := dsm.entries[idx]
			mark := " "
			if e.Level != EntryLevelBlessed {
				mark = "*"
			}
			s.WriteString(fmt.Sprintf("%s %s\n", mark, e))
			idx += int(e.Next() - e.Result.Address)
		}
	}

	_, err := io.WriteString(w, s.String())
	if err != nil {
		return curated.Errorf("disassembly: %v", err)
	}

	return nil
}
