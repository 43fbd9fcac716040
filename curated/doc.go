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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// pattern and a list of values in the same way as fmt.Errorf().
//
// The pattern is remembered and is what distinguishes one curated error from
// another. Patterns that are worth testing for should be stored as named
// constants in the package that creates them. For example, the loader package
// defines:
//
//	const ImageTooLarge = "loader: image too large (%d bytes at %#04x)"
//
// and a caller can check for that specific failure with:
//
//	if curated.Is(err, loader.ImageTooLarge) {
//		...
//	}
//
// The Has() function is similar but searches the entire chain of wrapped
// curated errors.
//
// The Error() function normalises the error chain, removing duplicate
// adjacent parts. Chains are thought of as being composed of parts separated
// by the sub-string ": ". This means that a function can wrap an error with
// its own context without worrying whether the error it received was already
// wrapped with the same context. So rather than:
//
//	cpu: cpu: unimplemented instruction (0x02) at (0xc000)
//
// the message will be:
//
//	cpu: unimplemented instruction (0x02) at (0xc000)
//
// Curated errors implement Unwrap() so that errors.Is() and errors.As() from
// the standard library can see through to any non-curated error given as a
// value.
package curated
