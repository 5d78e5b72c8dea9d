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
	"strconv"

	"github.com/hltas/tasgen/curated"
)

// RepeatMacro is a parsed @U directive:
//
//	@U <wait-before> <iterations> [<hold>]
type RepeatMacro struct {
	WaitBefore int
	Iterations int

	// number of frames +use is held for. defaults to one
	Hold int
}

// ParseRepeat parses the tokens of an @U line, including the @U token itself.
// Arguments are checked in order so a malformed argument is reported before a
// missing one that follows it. Tokens after the hold argument are ignored.
func ParseRepeat(tokens []string) (RepeatMacro, error) {
	args := tokens[1:]

	arg := func(i int) (int, error) {
		if i >= len(args) {
			return 0, curated.Errorf(MacroArity)
		}
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return 0, curated.Errorf(MalformedMacroArgument)
		}
		return v, nil
	}

	var r RepeatMacro
	var err error

	r.WaitBefore, err = arg(0)
	if err != nil {
		return RepeatMacro{}, err
	}

	r.Iterations, err = arg(1)
	if err != nil {
		return RepeatMacro{}, err
	}

	r.Hold = 1
	if len(args) > 2 {
		r.Hold, err = arg(2)
		if err != nil {
			return RepeatMacro{}, err
		}
	}

	return r, nil
}

// Lines returns the number of lines the macro expands to.
func (r RepeatMacro) Lines() int {
	if r.Iterations < 1 {
		return 0
	}
	return r.Iterations * (max(r.WaitBefore, 0) + max(r.Hold, 0) + 2)
}

func (r RepeatMacro) expand(out *output) {
	for i := 0; i < r.Iterations; i++ {
		out.emitN(Wait, r.WaitBefore)
		out.emit(UseDown)
		out.emitN(Wait, r.Hold)
		out.emit(UseUp)
	}
}
