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

import "strings"

// Class is the result of classifying an input line.
type Class int

// List of valid Class values.
const (
	// blank lines and comments
	Skip Class = iota

	// the @U directive
	Repeat

	// a strafe-angle command that arms the pending adjustment
	Trigger

	// anything else. the line may still turn out to be a passthrough line if
	// it does not evaluate as a postfix expression
	Expression
)

func (c Class) String() string {
	switch c {
	case Skip:
		return "skip"
	case Repeat:
		return "repeat"
	case Trigger:
		return "trigger"
	case Expression:
		return "expression"
	}
	return "unknown"
}

// RepeatDirective is the first token of a repeat line.
const RepeatDirective = "@U"

// the commands that begin a strafe-angle adjustment
var triggers = []string{"tas_sba", "tas_s2y"}

// IsTrigger returns true if the command is one of the strafe-angle commands.
func IsTrigger(cmd string) bool {
	for _, t := range triggers {
		if cmd == t {
			return true
		}
	}
	return false
}

// Classify the line. The returned tokens are the white space separated fields
// of the line and are nil for Skip lines.
func Classify(line string) (Class, []string) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
		return Skip, nil
	}

	toks := strings.Fields(line)
	switch {
	case toks[0] == RepeatDirective:
		return Repeat, toks
	case IsTrigger(toks[0]):
		return Trigger, toks
	}

	return Expression, toks
}
