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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/hltas/tasgen/colorterm"
	"github.com/hltas/tasgen/logger"
	"github.com/hltas/tasgen/modalflag"
	"github.com/hltas/tasgen/performance"
	"github.com/hltas/tasgen/statsview"
	"github.com/hltas/tasgen/transpiler"
	"github.com/hltas/tasgen/version"
	"github.com/hltas/tasgen/watch"
)

const scriptHelp = `Scripts are read line by line. Blank lines and lines beginning with // or #
are ignored.

  5 3 -              postfix expression. replaced by that many wait commands
  @U 2 3 [1]         wait 2, +use, wait 1, -use. repeated 3 times
  tas_sba, tas_s2y   passed through. the next line gets exec waitscript.cfg
                     after its first wait

Anything else is passed through unchanged.`

// exit values
const (
	exitOk        = 0
	exitArguments = 10
	exitError     = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, nil))
}

// launch the mode selected by the arguments and return the exit value. a nil
// quit channel means that WATCH mode will end on an interrupt signal.
func launch(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer, quit <-chan bool) int {
	// colourise error messages if they're going to a terminal
	if f, ok := stderr.(*os.File); ok && colorterm.IsTerminal(f) {
		stderr = logger.NewColorizer(f)
	}

	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.AddSubModes("TRANSPILE", "WATCH", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOk

	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitArguments
	}

	switch md.Mode() {
	case "TRANSPILE":
		err = transpile(md, stdin, stdout, stderr)

	case "WATCH":
		err = watchScript(md, stderr, quit)

	case "VERSION":
		err = showVersion(md, stdout)
	}

	if err != nil {
		fmt.Fprintf(stderr, "* error in %s mode: %v\n", md, err)
		return exitError
	}

	return exitOk
}

func transpile(md *modalflag.Modes, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	md.NewMode()
	md.AdditionalHelp(scriptHelp)

	output := md.AddString("o", "", "write output to file rather than stdout")
	log := md.AddBool("log", false, "echo log to stderr")
	profile := md.AddBool("profile", false, "write cpu and heap profiles to the current directory")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(stderr)
		defer logger.SetEcho(nil)
	}

	if stats != nil && *stats {
		statsview.Launch(stderr)
	}

	var script string
	switch len(md.RemainingArgs()) {
	case 0:
		script = "-"
	case 1:
		script = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return performance.RunProfiler(*profile, ".", func() error {
		return transpileFile(script, *output, stdin, stdout)
	})
}

// transpileFile reads the script from the named file and writes to the named
// output file. a script name of "-" means stdin and an empty output name means
// stdout.
func transpileFile(script string, output string, stdin io.Reader, stdout io.Writer) (rerr error) {
	in := stdin
	if script != "-" {
		f, err := os.Open(script)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out := stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = err
			}
		}()
		out = f
	}

	return transpiler.NewTranspiler(out).Transpile(in)
}

func watchScript(md *modalflag.Modes, stderr io.Writer, quit <-chan bool) error {
	md.NewMode()
	md.AdditionalHelp(scriptHelp)

	output := md.AddString("o", "", "output file (required)")
	log := md.AddBool("log", false, "echo log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *output == "" {
		return fmt.Errorf("output file required for %s mode", md)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("script file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(stderr)
		defer logger.SetEcho(nil)
	}

	if quit == nil {
		q := make(chan bool)
		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)
		defer signal.Stop(intChan)
		go func() {
			<-intChan
			close(q)
		}()
		quit = q
	}

	script := md.GetArg(0)
	if script == "-" {
		return fmt.Errorf("cannot watch stdin in %s mode", md)
	}

	return watch.Watch(script, quit, func() error {
		err := transpileFile(script, *output, nil, nil)
		if err != nil {
			fmt.Fprintf(stderr, "* %s: %v\n", script, err)
			return err
		}
		fmt.Fprintf(stderr, "! %s written\n", *output)
		return nil
	})
}

func showVersion(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	v, r, _ := version.Version()
	fmt.Fprintf(stdout, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(stdout, r)
	}

	return nil
}
