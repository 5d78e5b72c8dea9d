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

package colorterm

import (
	"fmt"
	"strings"
)

// ansi colour.
const (
	colRed    = 1
	colGreen  = 2
	colYellow = 3
	colCyan   = 6
)

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// ansi attribute.
const (
	attrBold = 1
	attrDim  = 2
)

// Pens is the table of colours to be used for text.
var Pens = map[string]string{
	"red":    build(targetBrightPen, colRed),
	"green":  build(targetBrightPen, colGreen),
	"yellow": build(targetBrightPen, colYellow),
	"cyan":   build(targetBrightPen, colCyan),
}

// DimPens is the table of pastel colours to be used for text.
var DimPens = map[string]string{
	"red":    build(targetPen, colRed, attrDim),
	"green":  build(targetPen, colGreen, attrDim),
	"yellow": build(targetPen, colYellow, attrDim),
	"cyan":   build(targetPen, colCyan, attrDim),
}

// BoldPen is the CSI sequence for bold text in the default colour.
var BoldPen = fmt.Sprintf("\033[%dm", attrBold)

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

func build(target int, col int, attrs ...int) string {
	s := strings.Builder{}
	s.WriteString("\033[")
	for _, a := range attrs {
		s.WriteString(fmt.Sprintf("%d;", a))
	}
	s.WriteString(fmt.Sprintf("%d%dm", target, col))
	return s.String()
}
