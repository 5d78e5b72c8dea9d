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

// Pending records whether a strafe-angle adjustment is waiting for the next
// processed line.
type Pending int

// List of valid Pending values.
const (
	Idle Pending = iota
	Armed
)

func (p Pending) String() string {
	switch p {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	}
	return "unknown"
}
