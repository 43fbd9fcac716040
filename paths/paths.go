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

package paths

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/famicore/curated"
)

// the name of the resource directory when it is in the current directory. in
// the user's config directory the leading period is removed
const baseResourcePath = ".famicore"

// ResourcePath returns the path to the resource in the resource directory. The
// path is made up of the directory part and the filename part, either of
// which can be empty. The directory part is created if necessary.
func ResourcePath(dir string, file string) (string, error) {
	base := getBasePath()

	d := filepath.Join(base, dir)
	if err := os.MkdirAll(d, 0o700); err != nil {
		return "", curated.Errorf("paths: %v", err)
	}

	return filepath.Join(d, file), nil
}

// getBasePath returns baseResourcePath if it exists in the current directory.
// otherwise the path in the user's config directory is returned.
func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(cfg, baseResourcePath[1:])
}
