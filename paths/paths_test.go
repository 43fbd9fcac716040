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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jetsetilly/famicore/paths"
	"github.com/jetsetilly/famicore/test"
)

func TestPaths(t *testing.T) {
	// run in a temporary directory containing the base resource directory so
	// that the user's config directory is not touched
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	tmp := t.TempDir()
	test.DemandSuccess(t, os.Chdir(tmp))
	test.DemandSuccess(t, os.Mkdir(".famicore", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".famicore", "foo", "bar", "baz"))

	// directory part has been created
	info, err := os.Stat(filepath.Join(".famicore", "foo", "bar"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".famicore", "preferences"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".famicore")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("viz", "prog")
	test.ExpectSuccess(t, regexp.MustCompile(`^viz_prog_\d{8}_\d{6}$`).MatchString(fn))

	fn = paths.UniqueFilename("viz", "")
	test.ExpectSuccess(t, regexp.MustCompile(`^viz_\d{8}_\d{6}$`).MatchString(fn))
}
