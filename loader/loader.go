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

package loader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/memory/bus"
	"github.com/jetsetilly/famicore/logger"
)

// Sentinal error patterns.
const (
	ImageTooLarge     = "loader: image too large (%d bytes at %#04x)"
	UnexpectedHash    = "loader: unexpected hash value"
	UnsupportedScheme = "loader: unsupported URL scheme (%s)"
	UnsupportedMapper = "loader: unsupported iNES mapper (%d)"
	InvalidINES       = "loader: invalid iNES file (%s)"
	NotLoaded         = "loader: nothing loaded"
	InvalidEntry      = "loader: invalid entry point (%#x)"
)

// List of recognised formats.
const (
	FormatAuto   = "AUTO"
	FormatBinary = "BIN"
	FormatINES   = "NES"
)

// the iNES magic number
var inesMagic = []byte{'N', 'E', 'S', 0x1a}

// address of the RESET vector
const resetVector = uint16(0xfffc)

// Machine is the interface to the emulated machine required by Attach().
type Machine interface {
	bus.DebuggerBus
	LoadPC(address uint16)
}

// Loader is used to specify the program image to use when Attach()ing to the
// CPU.
type Loader struct {
	// filename of image to load.
	Filename string

	// image format. empty string or "AUTO" indicates that the format should
	// be decided from the data
	Format string

	// address at which a raw binary is loaded
	Origin uint16

	// explicit entry point. a negative value indicates that the entry point
	// should be decided by Attach()
	Entry int

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte

	// the number of bytes from Origin that hold the image after a successful
	// Attach(). for iNES images this includes the mirror of a single bank
	Length int
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The format is decided by the file extension.
func NewLoader(filename string, origin uint16) Loader {
	ld := Loader{
		Filename: filename,
		Format:   FormatAuto,
		Origin:   origin,
		Entry:    -1,
	}

	switch strings.ToUpper(path.Ext(filename)) {
	case ".NES":
		ld.Format = FormatINES
	case ".BIN", ".PRG", ".ROM":
		ld.Format = FormatBinary
	}

	return ld
}

// ShortName returns a shortened version of the filename.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the image data. Filenames with a valid scheme will use that method to
// load the data. Currently supported schemes are HTTP and local files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("loader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("loader: %v", resp.Status)
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("loader: %v", err)
		}

	case "file", "":
		data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf("loader: %v", err)
		}

	default:
		// single letter schemes are windows drive letters
		if len(scheme) == 1 {
			data, err = os.ReadFile(ld.Filename)
			if err != nil {
				return curated.Errorf("loader: %v", err)
			}
			break
		}
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	// the loader is left untouched if the data is rejected
	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(UnexpectedHash)
	}

	ld.Data = data
	ld.Hash = hash

	logger.Logf(logger.Allow, "loader", "%s: %d bytes (sha1 %s)", ld.ShortName(), len(ld.Data), ld.Hash)

	return nil
}

// isINES returns true if the data should be treated as an iNES file.
func (ld Loader) isINES() bool {
	switch ld.Format {
	case FormatINES:
		return true
	case FormatBinary:
		return false
	}
	return bytes.HasPrefix(ld.Data, inesMagic)
}

// Attach the loaded image to the machine and set the program counter.
func (ld *Loader) Attach(mc Machine) error {
	if !ld.HasLoaded() {
		return curated.Errorf(NotLoaded)
	}

	if ld.Entry > 0xffff {
		return curated.Errorf(InvalidEntry, ld.Entry)
	}

	if ld.isINES() {
		if err := ld.attachINES(mc); err != nil {
			return err
		}
	} else {
		if err := copyImage(mc, ld.Origin, ld.Data); err != nil {
			return err
		}
		ld.Length = len(ld.Data)
	}

	entry := ld.entryPoint(mc)
	mc.LoadPC(entry)

	logger.Logf(logger.Allow, "loader", "%s: entry point %#04x", ld.ShortName(), entry)

	return nil
}

// entryPoint decides where execution begins.
func (ld Loader) entryPoint(mc Machine) uint16 {
	if ld.Entry >= 0 {
		return uint16(ld.Entry)
	}

	v := uint16(mc.Peek(resetVector+1))<<8 | uint16(mc.Peek(resetVector))
	if v != 0 {
		return v
	}

	return ld.Origin
}

// copyImage copies data into memory at origin. The image must not run past the
// end of the address space.
func copyImage(mc Machine, origin uint16, data []byte) error {
	if int(origin)+len(data) > 0x10000 {
		return curated.Errorf(ImageTooLarge, len(data), origin)
	}
	for i, b := range data {
		mc.Poke(origin+uint16(i), b)
	}
	return nil
}

// attachINES copies the program ROM of an iNES file into memory.
func (ld *Loader) attachINES(mc Machine) error {
	const headerLen = 16
	const trainerLen = 512
	const prgBank = 16384

	if len(ld.Data) < headerLen || !bytes.HasPrefix(ld.Data, inesMagic) {
		return curated.Errorf(InvalidINES, "missing header")
	}

	hdr := ld.Data[:headerLen]
	prgBanks := int(hdr[4])
	mapper := hdr[6]>>4 | hdr[7]&0xf0
	if mapper != 0 {
		return curated.Errorf(UnsupportedMapper, mapper)
	}

	start := headerLen
	if hdr[6]&0x04 == 0x04 {
		start += trainerLen
	}

	if prgBanks < 1 || prgBanks > 2 {
		return curated.Errorf(InvalidINES, fmt.Sprintf("%d program banks", prgBanks))
	}

	end := start + prgBanks*prgBank
	if len(ld.Data) < end {
		return curated.Errorf(InvalidINES, "truncated program ROM")
	}
	prg := ld.Data[start:end]

	ld.Origin = 0x8000
	if err := copyImage(mc, 0x8000, prg); err != nil {
		return err
	}
	ld.Length = 2 * prgBank

	// a single bank is mirrored in the upper half of the ROM area
	if prgBanks == 1 {
		if err := copyImage(mc, 0xc000, prg); err != nil {
			return err
		}
	}

	return nil
}
