// This file is part of tasgen.
//
// tasgen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tasgen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tasgen.  If not, see <https://www.gnu.org/licenses/>.

package colorterm_test

import (
	"os"
	"testing"

	"github.com/hltas/tasgen/colorterm"
	"github.com/hltas/tasgen/test"
)

func TestPens(t *testing.T) {
	test.ExpectEquality(t, colorterm.Pens["red"], "\033[91m")
	test.ExpectEquality(t, colorterm.DimPens["red"], "\033[2;31m")
	test.ExpectEquality(t, colorterm.NormalPen, "\033[0m")
}

func TestRegularFileIsNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "colorterm")
	test.DemandSuccess(t, err)
	defer f.Close()

	test.ExpectFailure(t, colorterm.IsTerminal(f))
	test.ExpectFailure(t, colorterm.IsTerminal(nil))
}
