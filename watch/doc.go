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

// Package watch rebuilds the output of a script every time the script file is
// saved. It is the basis of the WATCH mode and is useful when iterating over
// a long TAS script in one window with the game running in another.
//
// The directory containing the file is watched rather than the file itself.
// Many editors save by writing a new file and renaming it over the old one and
// a watch on the file would be lost when that happens.
package watch
