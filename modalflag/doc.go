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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes, each with its own set of flags.
//
// Arguments are given to a Modes instance with NewArgs() and then processed
// with Parse(). Non-flag arguments can be retrieved after parsing with the
// RemainingArgs() or GetArg() functions.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "MONITOR", "SCRIPT", "DISASM")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After Parse() the first remaining argument is checked against the list of
// sub-modes. If it matches then that becomes the current Mode() and is
// removed from the remaining arguments. If it doesn't match then the first
// sub-mode in the list is the current mode. Mode comparisons are case
// insensitive.
//
// The flags for the chosen mode are added after calling NewMode() and the
// arguments parsed again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		origin := md.AddString("origin", "0x0600", "load address")
//		p, err := md.Parse()
//		...
//	}
//
// Help is printed to the Output writer when the -help flag is given.
package modalflag
