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

// Package paths contains functions to prepare paths to Famicore resources.
//
// The ResourcePath() function prepends the base resource path to the supplied
// resource. For example, the path to the preferences file:
//
//	p, err := paths.ResourcePath("", "preferences")
//
// If the directory ".famicore" exists in the program's current directory then
// that is the base path. Otherwise the user's config directory is used, as
// returned by os.UserConfigDir() from the standard library. On a modern Linux
// system the example above returns:
//
//	/home/user/.config/famicore/preferences
//
// ResourcePath() creates the directory part of the path if it does not
// already exist.
package paths
