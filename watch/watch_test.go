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

package watch_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hltas/tasgen/test"
	"github.com/hltas/tasgen/watch"
)

// how long to wait for a build before failing the test
const timeout = 5 * time.Second

func waitForBuild(t *testing.T, builds chan int) int {
	t.Helper()
	select {
	case n := <-builds:
		return n
	case <-time.After(timeout):
		t.Fatalf("no build after %v", timeout)
	}
	return 0
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "bhop.tas")
	test.DemandSuccess(t, os.WriteFile(script, []byte("10\n"), 0644))

	builds := make(chan int, 10)
	quit := make(chan bool)
	done := make(chan error)

	var n int
	go func() {
		done <- watch.Watch(script, quit, func() error {
			n++
			builds <- n
			if n == 2 {
				return errors.New("build errors do not stop the watch")
			}
			return nil
		})
	}()

	// the initial build
	test.ExpectEquality(t, waitForBuild(t, builds), 1)

	// changing another file in the directory does not cause a build
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "other.tas"), []byte("1\n"), 0644))

	test.DemandSuccess(t, os.WriteFile(script, []byte("20\n"), 0644))
	test.ExpectEquality(t, waitForBuild(t, builds), 2)

	test.DemandSuccess(t, os.WriteFile(script, []byte("30\n"), 0644))
	test.ExpectEquality(t, waitForBuild(t, builds), 3)

	close(quit)
	select {
	case err := <-done:
		test.ExpectSuccess(t, err)
	case <-time.After(timeout):
		t.Fatalf("watch did not end after quit")
	}
}

func TestWatchSettles(t *testing.T) {
	defer func(s time.Duration) { watch.Settle = s }(watch.Settle)
	watch.Settle = 200 * time.Millisecond

	dir := t.TempDir()
	script := filepath.Join(dir, "bhop.tas")
	test.DemandSuccess(t, os.WriteFile(script, []byte("10\n"), 0644))

	builds := make(chan int, 10)
	quit := make(chan bool)
	done := make(chan error)
	defer func() {
		close(quit)
		<-done
	}()

	var n int
	go func() {
		done <- watch.Watch(script, quit, func() error {
			n++
			builds <- n
			return nil
		})
	}()

	test.ExpectEquality(t, waitForBuild(t, builds), 1)

	for round := 2; round <= 3; round++ {
		// a burst of writes is a single rebuild
		for i := 0; i < 5; i++ {
			test.DemandSuccess(t, os.WriteFile(script, []byte("20\n"), 0644))
		}
		test.ExpectEquality(t, waitForBuild(t, builds), round)

		select {
		case n := <-builds:
			t.Fatalf("unexpected build %d", n)
		case <-time.After(3 * watch.Settle):
		}
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := watch.Watch(filepath.Join(t.TempDir(), "missing", "bhop.tas"), nil, func() error {
		return nil
	})
	test.ExpectFailure(t, err)
}
