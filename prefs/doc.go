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

// Package prefs facilitates the storage of preferential values in the
// Famicore system. It is intended to be used for values that should persist
// between sessions. A preference value is one of the types defined in this
// package (Bool, Int and String) and is associated with a key on a Disk
// instance.
//
//	dsk, err := prefs.NewDisk(path)
//	var trace prefs.Bool
//	err = dsk.Add("famicore.trace", &trace)
//	err = dsk.Load(true)
//
// The disk file is a plain text file. The first line is the
// WarningBoilerPlate string. Every following line is a key/value pair
// separated by " :: ". Keys not added to a Disk instance are preserved when
// the file is saved, meaning more than one Disk instance can share a file.
//
// Preferences can also be specified on the command line with a string of the
// form:
//
//	key::value; key::value
//
// The string is pushed onto the command line stack with
// PushCommandLineStack(). A value on the top of the stack is applied when the
// key is added to a Disk and again whenever the Disk is loaded, so command
// line values take precedence over values on disk.
package prefs
