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

package preferences_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/preferences"
	"github.com/jetsetilly/famicore/prefs"
	"github.com/jetsetilly/famicore/test"
)

func TestDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), preferences.DefaultPrefsFile)

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Origin.Get(), prefs.Value(0x0600))
	test.ExpectEquality(t, p.Entry.Get(), prefs.Value(-1))
	test.ExpectEquality(t, p.MaxInstructions.Get(), prefs.Value(0))
	test.ExpectEquality(t, p.Trace.Get(), prefs.Value(false))
	test.ExpectEquality(t, p.StopBRK.Get(), prefs.Value(true))

	// file is created on first use
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "famicore.origin :: 1536"))
	test.ExpectSuccess(t, strings.Contains(string(data), "famicore.stopbrk :: true"))
}

func TestSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), preferences.DefaultPrefsFile)

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.Trace.Set(true))
	test.ExpectSuccess(t, p.Origin.Set(0xc000))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Trace.Get(), prefs.Value(true))
	test.ExpectEquality(t, q.Origin.Get(), prefs.Value(0xc000))

	q.SetDefaults()
	test.ExpectEquality(t, q.Trace.Get(), prefs.Value(false))
	test.DemandSuccess(t, q.Load())
	test.ExpectEquality(t, q.Trace.Get(), prefs.Value(true))
}

func TestCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), preferences.DefaultPrefsFile)

	prefs.PushCommandLineStack("famicore.maxinstructions::1000; famicore.unknown::1")
	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.MaxInstructions.Get(), prefs.Value(1000))

	// unused prefs are returned by the pop
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "famicore.unknown::1")
}

func TestAddressRange(t *testing.T) {
	fn := filepath.Join(t.TempDir(), preferences.DefaultPrefsFile)

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)

	// out of range values are rejected and the previous value is kept
	err = p.Origin.Set("0x12345")
	test.ExpectSuccess(t, curated.Is(err, preferences.OutOfRange))
	test.ExpectEquality(t, p.Origin.Get(), prefs.Value(0x0600))
	test.ExpectFailure(t, p.Origin.Set(-1))

	err = p.Entry.Set(0x10000)
	test.ExpectSuccess(t, curated.Is(err, preferences.OutOfRange))
	test.ExpectEquality(t, p.Entry.Get(), prefs.Value(-1))
	test.ExpectFailure(t, p.Entry.Set(-2))

	// limits of the range are allowed
	test.ExpectSuccess(t, p.Origin.Set(0xffff))
	test.ExpectSuccess(t, p.Origin.Set(0))
	test.ExpectSuccess(t, p.Entry.Set(0xffff))
	test.ExpectSuccess(t, p.Entry.Set(-1))
}

func TestAddressRangeCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), preferences.DefaultPrefsFile)

	prefs.PushCommandLineStack("famicore.origin::0x12345")
	_, err := preferences.NewPreferences(fn)
	prefs.PopCommandLineStack()
	test.ExpectSuccess(t, curated.Has(err, preferences.OutOfRange))
}
