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

package transpiler_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hltas/tasgen/curated"
	"github.com/hltas/tasgen/test"
	"github.com/hltas/tasgen/transpiler"
)

func TestParseRepeat(t *testing.T) {
	r, err := transpiler.ParseRepeat(strings.Fields("@U 2 3"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, transpiler.RepeatMacro{WaitBefore: 2, Iterations: 3, Hold: 1})

	r, err = transpiler.ParseRepeat(strings.Fields("@U 2 3 5"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, transpiler.RepeatMacro{WaitBefore: 2, Iterations: 3, Hold: 5})

	// anything after the hold argument is not looked at
	r, err = transpiler.ParseRepeat(strings.Fields("@U 2 3 5 x"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Hold, 5)
}

func TestParseRepeatErrors(t *testing.T) {
	tests := []struct {
		line    string
		pattern string
	}{
		{"@U", transpiler.MacroArity},
		{"@U 2", transpiler.MacroArity},
		{"@U x", transpiler.MalformedMacroArgument},
		{"@U 2 x", transpiler.MalformedMacroArgument},
		{"@U 2 3 x", transpiler.MalformedMacroArgument},
		{"@U 2.0 3", transpiler.MalformedMacroArgument},
	}

	for _, tt := range tests {
		_, err := transpiler.ParseRepeat(strings.Fields(tt.line))
		test.ExpectSuccess(t, curated.Is(err, tt.pattern), tt.line)
	}
}

func TestRepeatExpansion(t *testing.T) {
	tw := &test.Writer{}
	_, err := transpiler.ProcessLine(tw, "@U 2 3 5", transpiler.Idle)
	test.DemandSuccess(t, err)

	var want []string
	for i := 0; i < 3; i++ {
		want = append(want, "wait", "wait", "+use")
		want = append(want, waits(5)...)
		want = append(want, "-use")
	}

	test.DemandEquality(t, len(tw.Lines()), 27)
	if diff := cmp.Diff(want, tw.Lines()); diff != "" {
		t.Errorf("@U 2 3 5 mismatch (-want +got):\n%s", diff)
	}
}

func TestRepeatDefaultHold(t *testing.T) {
	for a := 0; a < 5; a++ {
		for n := 0; n < 5; n++ {
			r := transpiler.RepeatMacro{WaitBefore: a, Iterations: n, Hold: 1}

			tw := &test.Writer{}
			_, err := transpiler.ProcessLine(tw, strings.Join([]string{"@U", itoa(a), itoa(n)}, " "), transpiler.Idle)
			test.DemandSuccess(t, err)

			want := []string{}
			for i := 0; i < n; i++ {
				want = append(want, waits(a)...)
				want = append(want, "+use", "wait", "-use")
			}

			lines := tw.Lines()
			test.ExpectEquality(t, len(lines), r.Lines(), a, n)
			if diff := cmp.Diff(want, lines); diff != "" {
				t.Errorf("@U %d %d mismatch (-want +got):\n%s", a, n, diff)
			}
		}
	}
}

func TestRepeatNegativeCounts(t *testing.T) {
	tw := &test.Writer{}
	_, err := transpiler.ProcessLine(tw, "@U 2 -1", transpiler.Idle)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tw.String(), "")

	tw.Clear()
	_, err = transpiler.ProcessLine(tw, "@U -3 1 -1", transpiler.Idle)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tw.String(), "+use\n-use\n")
}

func TestRepeatErrorWritesNothing(t *testing.T) {
	tw := &test.Writer{}
	_, err := transpiler.ProcessLine(tw, "@U 2 3 x", transpiler.Idle)
	test.ExpectSuccess(t, curated.Is(err, transpiler.MalformedMacroArgument))
	test.ExpectEquality(t, tw.String(), "")
}
