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

// Package transpiler expands a TAS script into a literal sequence of console
// commands, suitable for exec'ing from the game console.
//
// The script language is line based. Leading and trailing white space is
// ignored. Blank lines and lines beginning with // or # are comments.
//
// A line of integers and the + and - operators is a postfix expression. The
// value of the expression is the number of frames to wait and the line is
// replaced by that many wait commands. For example, the following produces
// two wait commands:
//
//	5 3 -
//
// Integers in an expression are not limited in size. An expression must leave
// exactly one value and the value must be at least one and no more than the
// largest int. Any of these conditions failing is fatal to the transpilation.
//
// Lines that are not expressions (because they contain something other than
// integers and operators, or because an operator has nothing to work on) are
// passed through to the output unchanged. This is how regular console commands
// are written:
//
//	+duck
//	10
//	-duck
//
// The @U directive repeats a use key press:
//
//	@U <wait-before> <iterations> [<hold>]
//
// For each iteration, wait-before wait commands are written, followed by +use,
// hold wait commands (one if not specified) and then -use.
//
// The strafe-angle commands, tas_sba and tas_s2y, are passed through unchanged
// but they arm a pending adjustment for the next processed line (comments and
// blank lines do not count). If that line is an expression then the first wait
// is followed by the command
//
//	exec waitscript.cfg
//
// and the remaining waits are written as normal. If the line is the single
// word wait then the same exec command is written after it. Any other line
// clears the adjustment without writing the exec command, and another
// strafe-angle command simply arms the adjustment again.
//
// Note that the output of the transpiler is not, in general, valid input to
// the transpiler and so transpiling the output a second time has no meaning.
package transpiler
