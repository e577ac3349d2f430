// This file is part of Tapedeck.
//
// Tapedeck is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tapedeck is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tapedeck.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/mholtby/tapedeck/curated"
	"github.com/mholtby/tapedeck/interpreter"
	"github.com/mholtby/tapedeck/interpreter/tape"
	"github.com/mholtby/tapedeck/logger"
	"github.com/mholtby/tapedeck/modalflag"
	"github.com/mholtby/tapedeck/performance"
	"github.com/mholtby/tapedeck/statsview"
	"github.com/mholtby/tapedeck/terminal"
	"github.com/mholtby/tapedeck/terminal/colorterm"
	"github.com/mholtby/tapedeck/terminal/plainterm"
	xterm "golang.org/x/term"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	step := md.AddBool("step", false, "pause for input after every step (program files only)")
	showMem := md.AddBool("showmem", false, "draw the tape window after every step")
	windowSize := md.AddInt("window", interpreter.DefaultWindowSize, "width of the tape window in cells")
	margin := md.AddInt("margin", interpreter.DefaultMargin, "cells between the head and a scrolling window edge")
	verbose := md.AddBool("verbose", false, "trace every instruction as it executes")
	raw := md.AddBool("raw", false, "write cells to output as numbers rather than characters")
	chunk := md.AddInt("chunk", tape.DefaultChunkSize, "tape growth increment in cells")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	termType := md.AddString("term", "COLOR", "terminal type for interactive sessions: COLOR, PLAIN")
	stateGraph := md.AddString("stategraph", "", "write a graphviz dot of the machine state to this file on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	config := interpreter.Config{
		StepByStep: *step,
		ShowMemory: *showMem,
		WindowSize: *windowSize,
		Margin:     *margin,
		Verbose:    *verbose,
		RawOutput:  *raw,
		ChunkSize:  *chunk,
	}

	// #ctrlc handling. the machine polls the channel between steps
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	var mach *interpreter.Machine

	if len(md.RemainingArgs()) == 0 {
		mach, err = session(md, config, *termType, intChan)
	} else {
		mach, err = runFiles(md, config, intChan)
	}
	if err != nil {
		return err
	}

	if *stateGraph != "" {
		if err := writeStateGraph(*stateGraph, mach); err != nil {
			return err
		}
	}

	return nil
}

// runFiles evaluates each program file in turn against a single machine, so
// later files see the tape exactly as the earlier files left it.
func runFiles(md *modalflag.Modes, config interpreter.Config, intChan chan os.Signal) (*interpreter.Machine, error) {
	config.FromFile = true

	mach, err := interpreter.NewMachine(config, os.Stdin, os.Stdout)
	if err != nil {
		return nil, err
	}
	mach.SetInterrupt(intChan)

	for _, fn := range md.RemainingArgs() {
		src, err := os.ReadFile(fn)
		if err != nil {
			return nil, err
		}

		steps, err := mach.Evaluate(string(src))
		if err != nil {
			return nil, err
		}

		fmt.Fprintf(md.Output, "Completed in %d steps.\n", steps)
	}

	return mach, nil
}

// session runs an interactive read-evaluate loop. every fragment of source is
// evaluated against the same machine.
func session(md *modalflag.Modes, config interpreter.Config, termType string, intChan chan os.Signal) (*interpreter.Machine, error) {
	var term terminal.Terminal

	switch strings.ToUpper(termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		// a colour terminal cannot drive termios over a pipe
		if xterm.IsTerminal(int(os.Stdin.Fd())) {
			term = &colorterm.ColorTerminal{}
		} else {
			term = &plainterm.PlainTerminal{}
		}
	}

	if err := term.Initialise(); err != nil {
		return nil, err
	}
	defer term.CleanUp()

	events := &terminal.ReadEvents{
		IntEvents: intChan,
	}

	// the machine reads the , instruction through the terminal. a second
	// reader on os.Stdin would fight the terminal for keypresses
	mach, err := interpreter.NewMachine(config, &termReader{term: term, events: events}, os.Stdout)
	if err != nil {
		return nil, err
	}
	mach.SetInterrupt(intChan)
	prompt := terminal.Prompt{Content: "bf> "}
	buffer := make([]byte, 4096)

	for {
		n, err := term.TermRead(buffer, prompt, events)
		if err != nil {
			if curated.IsAny(err) || errors.Is(err, io.EOF) {
				term.TermPrintLine(terminal.StyleFeedback, "Goodbye")
				return mach, nil
			}
			return nil, err
		}

		input := strings.TrimSpace(string(buffer[:n]))
		if input == "" {
			continue
		}

		steps, err := mach.Evaluate(input)
		if err != nil {
			term.TermPrintLine(terminal.StyleError, err.Error())
			continue
		}

		term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("Completed in %d steps.", steps))
	}
}

// termReader adapts a terminal to the io.Reader expected by the machine.
// every Read() is a fresh line of input with no prompt decoration.
type termReader struct {
	term   terminal.Terminal
	events *terminal.ReadEvents
}

func (tr *termReader) Read(p []byte) (int, error) {
	return tr.term.TermRead(p, terminal.Prompt{}, tr.events)
}

// writeStateGraph dumps the machine state as a graphviz dot file. useful for
// seeing how the tape has grown over a session.
func writeStateGraph(filename string, mach *interpreter.Machine) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, mach)

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	} else {
		stats = md.AddBool("statsview", false, "run stats server (not available in this build)")
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program file required for %s mode", md)
	case 1:
		return performance.Check(md.Output, *profile, *profile, md.GetArg(0), *duration)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}
