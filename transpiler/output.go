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

package transpiler

import (
	"io"
)

// Commands written to the output.
const (
	Wait    = "wait"
	UseDown = "+use"
	UseUp   = "-use"
	HandOff = "exec waitscript.cfg"
)

// output writes command lines and counts them. the first write error is
// sticky and all writes after it are ignored.
type output struct {
	w        io.Writer
	err      error
	lines    int
	handOffs int
}

func (out *output) emit(s string) {
	if out.err != nil {
		return
	}
	_, out.err = io.WriteString(out.w, s+"\n")
	if out.err == nil {
		out.lines++
	}
}

// emitN writes the line n times. nothing is written if n is less than one.
func (out *output) emitN(s string, n int) {
	for i := 0; i < n && out.err == nil; i++ {
		out.emit(s)
	}
}

func (out *output) handOff() {
	out.emit(HandOff)
	if out.err == nil {
		out.handOffs++
	}
}
