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

package logger

import (
	"io"
	"strings"

	"github.com/hltas/tasgen/colorterm"
)

// Colorizer writes the first line of each message in bright red and any
// following lines in a dimmer red. It is intended for diagnostic output that is
// going to a terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	l := strings.Split(strings.TrimSpace(string(p)), "\n")

	s := strings.Builder{}
	s.WriteString(colorterm.Pens["red"])
	s.WriteString(l[0])
	s.WriteString(colorterm.NormalPen)
	s.WriteString("\n")

	if len(l) > 1 {
		s.WriteString(colorterm.DimPens["red"])
		for _, t := range l[1:] {
			s.WriteString(t)
			s.WriteString("\n")
		}
		s.WriteString(colorterm.NormalPen)
	}

	_, err := io.WriteString(c.out, s.String())
	if err != nil {
		return 0, err
	}

	// report the length of p rather than what was written so that callers
	// don't think the write was short
	return len(p), nil
}
