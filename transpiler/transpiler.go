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

import (
	"bufio"
	"io"
	"strings"

	"github.com/hltas/tasgen/curated"
	"github.com/hltas/tasgen/logger"
)

// longest input line accepted by Transpile()
const maxLineLength = 1024 * 1024

// Stats about a transpilation.
type Stats struct {
	Lines    int
	Skipped  int
	Emitted  int
	Repeats  int
	Triggers int
	HandOffs int

	// adjustments that were armed but cleared by a line that could not
	// accept the hand-off
	Dropped int
}

// Transpiler processes a script one line at a time and writes the expanded
// commands to an io.Writer.
type Transpiler struct {
	bw    *bufio.Writer
	out   output
	state Pending
	stats Stats

	// line number of the most recent trigger line
	armedAt int
}

// NewTranspiler is the preferred method of initialisation for the Transpiler
// type.
func NewTranspiler(w io.Writer) *Transpiler {
	tr := &Transpiler{
		bw: bufio.NewWriter(w),
	}
	tr.out.w = tr.bw
	return tr
}

// State returns the current pending adjustment state.
func (tr *Transpiler) State() Pending {
	return tr.state
}

// Stats returns the statistics for all lines processed so far.
func (tr *Transpiler) Stats() Stats {
	s := tr.stats
	s.Emitted = tr.out.lines
	s.HandOffs = tr.out.handOffs
	return s
}

// Transpile reads lines from r until the end of input or until a fatal error.
// Output is flushed after every input line so everything written before a
// fatal line remains valid.
//
// The pending adjustment state carries over between calls to Transpile() on
// the same Transpiler.
func (tr *Transpiler) Transpile(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	for scanner.Scan() {
		if err := tr.Line(scanner.Text()); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(ReadError, err)
	}

	s := tr.Stats()
	logger.Logf(logger.Allow, "transpiler", "%d lines read (%d skipped), %d lines written", s.Lines, s.Skipped, s.Emitted)
	logger.Logf(logger.Allow, "transpiler", "%d @U expansions, %d hand-offs, %d dropped adjustments", s.Repeats, s.HandOffs, s.Dropped)

	return nil
}

// Line processes a single line of input. Errors are wrapped with the line
// number, counting from one for the first line given to the Transpiler.
func (tr *Transpiler) Line(line string) error {
	tr.stats.Lines++
	ln := tr.stats.Lines

	class, _ := Classify(line)
	switch class {
	case Skip:
		tr.stats.Skipped++
	case Repeat:
		tr.stats.Repeats++
	case Trigger:
		tr.stats.Triggers++
	}

	prev := tr.state
	handOffs := tr.out.handOffs

	var err error
	tr.state, err = processLine(&tr.out, line, tr.state)

	// flush even if there has been an error
	if ferr := tr.bw.Flush(); ferr != nil && tr.out.err == nil {
		tr.out.err = ferr
	}

	if err != nil {
		return curated.Errorf(LineError, ln, err)
	}
	if tr.out.err != nil {
		return curated.Errorf(LineError, ln, curated.Errorf(WriteError, tr.out.err))
	}

	if prev == Armed && class != Skip {
		if class == Trigger {
			logger.Logf(logger.Allow, "transpiler", "line %d: re-armed adjustment from line %d", ln, tr.armedAt)
			tr.stats.Dropped++
		} else if tr.out.handOffs == handOffs {
			logger.Logf(logger.Allow, "transpiler", "line %d: adjustment armed at line %d dropped", ln, tr.armedAt)
			tr.stats.Dropped++
		}
	}
	if class == Trigger {
		tr.armedAt = ln
	}

	return nil
}

// ProcessLine processes a single line, writing any output to w. The state
// argument is the pending adjustment state left by the previous line and the
// returned state should be given to the next line.
func ProcessLine(w io.Writer, line string, state Pending) (Pending, error) {
	out := &output{w: w}
	next, err := processLine(out, line, state)
	if err != nil {
		return next, err
	}
	if out.err != nil {
		return next, curated.Errorf(WriteError, out.err)
	}
	return next, nil
}

func processLine(out *output, line string, state Pending) (Pending, error) {
	class, toks := Classify(line)
	line = strings.TrimSpace(line)

	switch class {
	case Skip:
		// blank lines and comments have no effect on the pending state
		return state, nil

	case Repeat:
		r, err := ParseRepeat(toks)
		if err != nil {
			return state, err
		}
		r.expand(out)

		// an armed adjustment is lost
		return Idle, nil

	case Trigger:
		out.emit(line)
		return Armed, nil
	}

	ev := Evaluate(toks)
	if !ev.IsExpression {
		out.emit(line)
		if state == Armed && line == Wait {
			out.handOff()
		}
		return Idle, nil
	}

	v, err := ev.Value(line)
	if err != nil {
		return state, err
	}

	if state == Armed {
		out.emit(Wait)
		out.handOff()
		v--
	}
	out.emitN(Wait, v)

	return Idle, nil
}
