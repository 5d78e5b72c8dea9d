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

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with Errorf(), which looks like fmt.Errorf() but keeps
// hold of the formatting pattern. The pattern is the identity of the error.
//
//	const BelowMinimum = "Expression evaluates to < 1: %s"
//
//	e := curated.Errorf(BelowMinimum, "1 2 + 3 -")
//
//	if curated.Is(e, BelowMinimum) {
//		fmt.Println("true")
//	}
//
// Has() is similar but searches the whole chain of curated errors. This is
// useful when an error has been given more context on the way up:
//
//	f := curated.Errorf("line %d: %v", 12, e)
//
//	if curated.Has(f, BelowMinimum) {
//		fmt.Println("true")
//	}
//
// Formatting happens in the Error() function. When neighbouring parts of the
// message (separated by ": ") are the same, only one is kept. So the
// following:
//
//	e := curated.Errorf("transpiler: %v", curated.Errorf("transpiler: %v", "bad line"))
//
// prints as:
//
//	transpiler: bad line
package curated
