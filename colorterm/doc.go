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

// Package colorterm decides whether diagnostic output is going to a terminal
// and provides the ANSI pens used to colour it.
//
// Terminal detection is done by asking for the termios attributes of the file
// descriptor. Only a terminal will answer.
package colorterm
