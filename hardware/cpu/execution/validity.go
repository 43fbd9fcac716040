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

package execution

import (
	"github.com/jetsetilly/famicore/curated"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: execution has no instruction definition")
	}

	if r.ByteCount != r.Defn.Bytes() {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes())
	}

	if r.BranchSuccess && !r.Defn.IsBranch() {
		return curated.Errorf("cpu: branch success flag set for non-branch instruction %#02x [%s]", r.Defn.OpCode, r.Defn.Operator)
	}

	switch r.Defn.Bytes() {
	case 1:
		if r.InstructionData != nil {
			return curated.Errorf("cpu: unexpected instruction data for single byte instruction %#02x", r.Defn.OpCode)
		}
	case 2:
		if _, ok := r.InstructionData.(uint8); !ok {
			return curated.Errorf("cpu: instruction data for %#02x is not an 8bit value", r.Defn.OpCode)
		}
	case 3:
		if _, ok := r.InstructionData.(uint16); !ok {
			return curated.Errorf("cpu: instruction data for %#02x is not a 16bit value", r.Defn.OpCode)
		}
	}

	return nil
}
