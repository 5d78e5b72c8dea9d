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

package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hltas/tasgen/curated"
	"github.com/hltas/tasgen/logger"
)

// WatchError is the pattern for errors returned by Watch().
const WatchError = "watch: %v"

// Settle is how long to wait after the last change to the file before
// rebuilding. Editors often produce several events for a single save.
var Settle = 100 * time.Millisecond

// Build is called by Watch() every time the file changes. Errors are logged
// but do not stop the watch.
type Build func() error

// Watch calls build once immediately and then again every time the file
// changes. It returns when the quit channel receives a value or is closed.
func Watch(filename string, quit <-chan bool, build Build) error {
	filename, err := filepath.Abs(filename)
	if err != nil {
		return curated.Errorf(WatchError, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return curated.Errorf(WatchError, err)
	}
	defer watcher.Close()

	err = watcher.Add(filepath.Dir(filename))
	if err != nil {
		return curated.Errorf(WatchError, err)
	}

	rebuild := func() {
		if err := build(); err != nil {
			logger.Logf(logger.Allow, "watch", "%s: %v", filepath.Base(filename), err)
			return
		}
		logger.Logf(logger.Allow, "watch", "%s: rebuilt", filepath.Base(filename))
	}

	rebuild()

	// the settle timer is created stopped and is only started by a change to
	// the file
	settle := time.NewTimer(Settle)
	if !settle.Stop() {
		<-settle.C
	}
	defer settle.Stop()

	for {
		select {
		case <-quit:
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return curated.Errorf(WatchError, "events channel closed")
			}
			if filepath.Clean(ev.Name) != filename {
				continue // for loop
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue // for loop
			}
			// a tick left in the channel by an earlier settle would cause
			// an extra rebuild
			if !settle.Stop() {
				select {
				case <-settle.C:
				default:
				}
			}
			settle.Reset(Settle)

		case err, ok := <-watcher.Errors:
			if !ok {
				return curated.Errorf(WatchError, "errors channel closed")
			}
			logger.Logf(logger.Allow, "watch", "%v", err)

		case <-settle.C:
			rebuild()
		}
	}
}
