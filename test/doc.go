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

// Package test bundles helper functions that remove common boilerplate from
// tests written for the standard go test harness.
//
// The Expect functions report a failure and let the test continue. The Demand
// functions are fatal to the test and should be used when the value being
// tested is needed by later parts of the test. For example, demanding that the
// number of output lines is correct before iterating over them.
//
// Success and failure values depend on the type of the value:
//
//	bool	true is success, false is failure
//	error	nil is success, non-nil is failure
//	nil	always success
//
// The nil case deserves a mention. Because a nil error is passed as an
// untyped nil, the nil type must be treated as success.
//
// The Writer type implements io.Writer and is useful for capturing output
// and comparing it with an expected string.
package test
