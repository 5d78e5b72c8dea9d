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

// Patterns for the curated errors returned by the transpiler. All of them are
// fatal to a transpilation.
const (
	MalformedMacroArgument = "Wrong argument type to @U"
	MacroArity             = "@U needs two or three arguments"
	ExpressionArity        = "Wrong number of operators: %s"
	ExpressionBelowMinimum = "Expression evaluates to < 1: %s"
	ExpressionTooLarge     = "Expression evaluates to more waits than can be written: %s"

	// LineError wraps all the above with the number of the offending line
	LineError = "line %d: %v"

	ReadError  = "reading input: %v"
	WriteError = "writing output: %v"
)
