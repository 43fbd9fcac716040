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

package preferences

import (
	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/prefs"
)

// Sentinel error returned when an address preference is outside the range
// allowed for it.
const (
	OutOfRange = "preferences: %s out of range (%#x)"
)

// the name of the preferences file in the resource directory
const DefaultPrefsFile = "preferences"

// Preferences defines and collates the preference values used when running a
// program.
type Preferences struct {
	dsk *prefs.Disk

	// the address at which a raw binary image is loaded
	Origin prefs.Int

	// explicit entry point. a negative value indicates that the loader should
	// decide the entry point
	Entry prefs.Int

	// the maximum number of instructions to execute. zero means no limit
	MaxInstructions prefs.Int

	// print each instruction as it is executed
	Trace prefs.Bool

	// stop execution when a BRK instruction is reached
	StopBRK prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The values are loaded from the file at the path and the
// file is created if it does not exist.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	// defaults are set before adding to the disk so that command line values
	// take precedence
	p.SetDefaults()

	// hooks are installed before adding to the disk so that command line
	// values are also checked
	p.Origin.SetHookPre(func(v prefs.Value) error {
		if a := v.(int); a < 0 || a > 0xffff {
			return curated.Errorf(OutOfRange, "origin", a)
		}
		return nil
	})
	p.Entry.SetHookPre(func(v prefs.Value) error {
		if a := v.(int); a < -1 || a > 0xffff {
			return curated.Errorf(OutOfRange, "entry", a)
		}
		return nil
	})

	err = p.dsk.Add("famicore.origin", &p.Origin)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("famicore.entry", &p.Entry)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("famicore.maxinstructions", &p.MaxInstructions)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("famicore.trace", &p.Trace)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("famicore.stopbrk", &p.StopBRK)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Origin.Set(0x0600)
	_ = p.Entry.Set(-1)
	_ = p.MaxInstructions.Set(0)
	_ = p.Trace.Set(false)
	_ = p.StopBRK.Set(true)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
