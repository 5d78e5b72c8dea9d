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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds program modes (and sub-modes), each of which can have its
// own set of flags.
//
// Unlike flag.FlagSet, the arguments are given with NewArgs() and Parse() is
// called with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("TRANSPILE", "WATCH", "VERSION")
//	p, err := md.Parse()
//
// The first sub-mode is the default and is chosen if the first argument after
// the flags is not the name of a sub-mode. Sub-mode comparisons are case
// insensitive. Once the mode has been decided, NewMode() prepares for the flags
// of that mode and Parse() is called again:
//
//	switch md.Mode() {
//	case "WATCH":
//		md.NewMode()
//		output := md.AddString("o", "", "output file")
//		p, err := md.Parse()
//		...
//	}
//
// The result of Parse() should be checked before continuing. ParseHelp means
// that help was requested and has already been printed to the Output field.
// ParseError means the arguments were not understood.
//
// Non-flag arguments that remain after the flags and sub-mode are available
// with RemainingArgs() and GetArg().
package modalflag
