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

package interpreter

import (
	"bufio"
	"io"
	"os"

	"github.com/mholtby/tapedeck/curated"
	"github.com/mholtby/tapedeck/interpreter/program"
	"github.com/mholtby/tapedeck/interpreter/tape"
	"github.com/mholtby/tapedeck/interpreter/window"
	"github.com/mholtby/tapedeck/logger"
)

// error patterns for failures during evaluation. use with curated.Is() /
// curated.Has()
const (
	InputFormat   = "input: not a number (%s)"
	UserInterrupt = "user interrupt"
)

// DefaultWindowSize is the width of the display window in cells, unless the
// machine has been configured differently.
const DefaultWindowSize = 10

// DefaultMargin is how close the head may come to a window edge before the
// window scrolls.
const DefaultMargin = 2

// Config is the set of options recognised by the machine. The zero value of
// each field is a sensible default except for WindowSize, which falls back
// to DefaultWindowSize when zero.
type Config struct {
	// pause for a line of input after every step. only honoured when
	// FromFile is also set - pausing makes no sense when the program source
	// and the confirmation arrive on the same interactive stream
	StepByStep bool

	// draw the tape window after every step
	ShowMemory bool

	// dimensions of the display window. Margin must satisfy
	// 0 <= Margin <= WindowSize/2
	WindowSize int
	Margin     int

	// write a trace line describing every instruction as it executes
	Verbose bool

	// the . instruction writes the cell as a number rather than a character
	RawOutput bool

	// the program arrived from a file rather than an interactive session.
	// affects output buffering of the . instruction and enables StepByStep
	FromFile bool

	// tape growth increment. zero means tape.DefaultChunkSize
	ChunkSize int
}

// Machine executes prepared programs against a growable tape. The tape and
// the head position survive from one Evaluate() call to the next, which is
// what makes a session of separate source fragments behave as one continuous
// program.
//
// Machine is not safe for concurrent use. Execution is fully synchronous;
// the only blocking points are the , instruction and the step-by-step pause,
// both of which wait on the input reader.
type Machine struct {
	config Config

	tape   *tape.Tape
	window *window.Window

	// the program being executed by the current Evaluate() call
	prog *program.Program

	// head is the logical tape address the machine is operating on. pc
	// indexes the instruction stream
	head int
	pc   int

	input  *bufio.Reader
	output io.Writer

	// polled between steps. see SetInterrupt()
	interrupt <-chan os.Signal
}

// NewMachine is the preferred method of initialisation for the Machine type.
// The input reader services the , instruction and the step-by-step pause;
// the writer receives everything the machine emits.
func NewMachine(config Config, input io.Reader, output io.Writer) (*Machine, error) {
	if config.WindowSize == 0 {
		config.WindowSize = DefaultWindowSize
	}
	if config.ChunkSize < 1 {
		config.ChunkSize = tape.DefaultChunkSize
	}

	w, err := window.NewWindow(config.WindowSize, config.Margin, 0)
	if err != nil {
		return nil, curated.Errorf("interpreter: %v", err)
	}

	return &Machine{
		config: config,
		tape:   tape.NewTape(config.ChunkSize),
		window: w,
		input:  bufio.NewReader(input),
		output: output,
	}, nil
}

// SetInterrupt gives the machine a signal channel to poll between steps. A
// signal unwinds the current Evaluate() call with a UserInterrupt error,
// leaving the tape and head exactly as they were. A session that intends to
// continue can simply call Evaluate() again.
func (m *Machine) SetInterrupt(sig <-chan os.Signal) {
	m.interrupt = sig
}

// Head returns the logical address the machine is currently operating on.
func (m Machine) Head() int {
	return m.head
}

// TapeSize returns the number of cells currently allocated to the tape.
func (m Machine) TapeSize() int {
	return m.tape.Size()
}

// Evaluate a source fragment, returning the number of steps executed. The
// program counter and step count start from zero for every call but the tape
// and head carry over from the previous fragment.
//
// A malformed program is rejected before any instruction executes, so a
// failed call leaves the session state untouched. Errors from the ,
// instruction surface here too; whether they end the session is the
// caller's decision.
func (m *Machine) Evaluate(source string) (int, error) {
	m.pc = 0
	steps := 0

	prog, err := program.Process(source)
	if err != nil {
		return 0, curated.Errorf("interpreter: %v", err)
	}
	m.prog = prog

	for m.pc < m.prog.Len() {
		if m.interrupt != nil {
			select {
			case <-m.interrupt:
				return steps, curated.Errorf(UserInterrupt)
			default:
			}
		}

		steps++

		if err := m.dispatch(m.prog.At(m.pc)); err != nil {
			return steps, err
		}
		m.pc++

		if m.config.ShowMemory {
			m.showTape()
		}
		if m.config.StepByStep && m.config.FromFile {
			if err := m.stepPause(); err != nil {
				return steps, err
			}
		}
	}

	return steps, nil
}

// dispatch is total over the instruction alphabet. Process() filters the
// stream so the default case cannot occur; if it ever does the character is
// skipped and the broken invariant is noted in the log.
func (m *Machine) dispatch(ins byte) error {
	switch ins {
	case '<':
		m.moveLeft()
	case '>':
		m.moveRight()
	case '+':
		m.increase()
	case '-':
		m.decrease()
	case '.':
		m.write()
	case ',':
		return m.read()
	case '[':
		m.loopStart()
	case ']':
		m.loopEnd()
	default:
		logger.Logf("interpreter", "non-instruction character (%q) in instruction stream", ins)
	}
	return nil
}

// stepPause waits for a line of input before allowing the next step.
func (m *Machine) stepPause() error {
	io.WriteString(m.output, "Enter to continue to next step...")
	if _, err := m.input.ReadString('\n'); err != nil {
		return curated.Errorf("interpreter: %v", err)
	}
	return nil
}
