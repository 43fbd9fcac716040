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

// Package loader is used to specify the program image that is to be attached
// to the emulated CPU.
//
// When the image is ready to be loaded into the emulator, the Load() function
// should be used. The Load() function handles loading of data from different
// sources. Currently local files and data over HTTP are supported.
//
// Two image formats are understood. A raw binary is copied to memory at the
// origin address. An iNES file (extension .nes or a file beginning with the
// iNES magic number) using mapper zero has its program ROM copied to 0x8000.
// A 16KB program ROM is mirrored at 0xc000.
//
// The simplest use of the loader:
//
//	ld := loader.NewLoader("test.bin", 0x0600)
//	err := ld.Load()
//	if err != nil {
//		return err
//	}
//	err = ld.Attach(mc)
//
// The Attach() function sets the program counter. If an entry point has been
// specified then that is used. Otherwise the RESET vector is used if it is
// non-zero and the origin address if it is not.
package loader
