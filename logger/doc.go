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

// Package logger is the central logging facility for tasgen. Log entries are
// tagged with the name of the component that made them and kept in a bounded
// in-memory list. The list can be written out in full or in part (Tail) at any
// time and entries can be echoed to an io.Writer as they are made.
//
// Every log request carries a Permission. Components that always want their
// entries recorded use logger.Allow.
//
// Consecutive identical entries are merged and marked with a repeat count.
package logger
