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

package performance_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hltas/tasgen/performance"
	"github.com/hltas/tasgen/test"
)

func TestNoProfile(t *testing.T) {
	dir := t.TempDir()

	var ran bool
	err := performance.RunProfiler(false, dir, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(filepath.Join(dir, performance.CPUProfile))
	test.ExpectSuccess(t, errors.Is(err, os.ErrNotExist))
}

func TestProfile(t *testing.T) {
	dir := t.TempDir()

	err := performance.RunProfiler(true, dir, func() error {
		return nil
	})
	test.DemandSuccess(t, err)

	_, err = os.Stat(filepath.Join(dir, performance.CPUProfile))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(filepath.Join(dir, performance.MemProfile))
	test.ExpectSuccess(t, err)
}

func TestProfileRunError(t *testing.T) {
	runErr := errors.New("run error")
	err := performance.RunProfiler(true, t.TempDir(), func() error {
		return runErr
	})
	test.ExpectEquality(t, err, runErr)
}
