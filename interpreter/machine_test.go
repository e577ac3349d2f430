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

package interpreter_test

import (
	"os"
	"strings"
	"testing"

	"github.com/mholtby/tapedeck/curated"
	"github.com/mholtby/tapedeck/interpreter"
	"github.com/mholtby/tapedeck/interpreter/program"
	"github.com/mholtby/tapedeck/test"
)

// the conventional first program. taken from the wider brainfuck literature.
const helloWorld = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

func newTestMachine(t *testing.T, config interpreter.Config, input string) (*interpreter.Machine, *test.CompareWriter) {
	t.Helper()
	tw := &test.CompareWriter{}
	m, err := interpreter.NewMachine(config, strings.NewReader(input), tw)
	if err != nil {
		t.Fatal(err)
	}
	return m, tw
}

func TestHelloWorld(t *testing.T) {
	m, tw := newTestMachine(t, interpreter.Config{FromFile: true}, "")

	steps, err := m.Evaluate(helloWorld)
	test.ExpectedSuccess(t, err)

	// the trailing newline is the program's own doing. its final sequence
	// leaves a 10 in the current cell before the last write
	if !tw.Compare("Hello World!\n") {
		t.Errorf("unexpected program output (%s)", tw.String())
	}
	if steps <= 0 {
		t.Errorf("expected positive step count (%d)", steps)
	}
}

func TestWraparound(t *testing.T) {
	// 256 increments return the cell to zero
	m, tw := newTestMachine(t, interpreter.Config{FromFile: true, RawOutput: true}, "")
	_, err := m.Evaluate(strings.Repeat("+", 256) + ".")
	test.ExpectedSuccess(t, err)
	test.Equate(t, tw.String(), "0")

	// a single decrement of a zero cell gives 255, by modulo arithmetic
	m, tw = newTestMachine(t, interpreter.Config{FromFile: true, RawOutput: true}, "")
	_, err = m.Evaluate("-.")
	test.ExpectedSuccess(t, err)
	test.Equate(t, tw.String(), "255")
}

func TestSessionPersistence(t *testing.T) {
	// tape and head survive between Evaluate() calls on the same machine.
	// the program counter does not
	m, tw := newTestMachine(t, interpreter.Config{FromFile: true, RawOutput: true}, "")

	_, err := m.Evaluate("++")
	test.ExpectedSuccess(t, err)

	_, err = m.Evaluate(".")
	test.ExpectedSuccess(t, err)
	test.Equate(t, tw.String(), "2")
}

func TestStepCount(t *testing.T) {
	m, _ := newTestMachine(t, interpreter.Config{FromFile: true}, "")

	// an empty loop over a zero cell is a single step: the [ jumps straight
	// to the ] and the program counter moves past it
	steps, err := m.Evaluate("[]")
	test.ExpectedSuccess(t, err)
	test.Equate(t, steps, 1)

	// + [ - ] is four steps: the ] sees a zero cell and does not loop
	steps, err = m.Evaluate("+[-]")
	test.ExpectedSuccess(t, err)
	test.Equate(t, steps, 4)

	// comments cost nothing
	steps, err = m.Evaluate("no instructions at all")
	test.ExpectedSuccess(t, err)
	test.Equate(t, steps, 0)
}

func TestTapeGrowth(t *testing.T) {
	m, _ := newTestMachine(t, interpreter.Config{FromFile: true}, "")
	test.Equate(t, m.TapeSize(), 32)

	// moving to the last allocated cell does not grow the tape
	_, err := m.Evaluate(strings.Repeat(">", 31))
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.Head(), 31)
	test.Equate(t, m.TapeSize(), 32)

	// one more step does
	_, err = m.Evaluate(">")
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.TapeSize(), 64)

	// and a single step to the left of address zero grows the other end
	m, _ = newTestMachine(t, interpreter.Config{FromFile: true}, "")
	_, err = m.Evaluate("<")
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.Head(), -1)
	test.Equate(t, m.TapeSize(), 64)
}

func TestMalformedProgram(t *testing.T) {
	m, tw := newTestMachine(t, interpreter.Config{FromFile: true, RawOutput: true}, "")

	_, err := m.Evaluate("+")
	test.ExpectedSuccess(t, err)

	// a malformed fragment is rejected before any instruction executes...
	_, err = m.Evaluate("[-")
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Has(err, program.UnmatchedLoopStart), true)

	// ...so the session state is untouched and the session can continue
	_, err = m.Evaluate(".")
	test.ExpectedSuccess(t, err)
	test.Equate(t, tw.String(), "1")
}

func TestReadInstruction(t *testing.T) {
	// one line of input, parsed as an integer, stored modulo 256
	m, tw := newTestMachine(t, interpreter.Config{FromFile: true, RawOutput: true}, "300\n")
	_, err := m.Evaluate(",.")
	test.ExpectedSuccess(t, err)
	test.Equate(t, tw.String(), "44")

	// negative input wraps rather than going out of range
	m, tw = newTestMachine(t, interpreter.Config{FromFile: true, RawOutput: true}, "-1\n")
	_, err = m.Evaluate(",.")
	test.ExpectedSuccess(t, err)
	test.Equate(t, tw.String(), "255")
}

func TestReadInstructionBadInput(t *testing.T) {
	m, _ := newTestMachine(t, interpreter.Config{FromFile: true}, "forty\n")
	_, err := m.Evaluate(",")
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, interpreter.InputFormat), true)
}

func TestInterrupt(t *testing.T) {
	m, _ := newTestMachine(t, interpreter.Config{FromFile: true}, "")

	_, err := m.Evaluate("++")
	test.ExpectedSuccess(t, err)

	sig := make(chan os.Signal, 1)
	sig <- os.Interrupt
	m.SetInterrupt(sig)

	// the pending signal unwinds the call before the first step
	steps, err := m.Evaluate("+++")
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, interpreter.UserInterrupt), true)
	test.Equate(t, steps, 0)

	// the abandoned call did not disturb the tape
	m.SetInterrupt(nil)
	_, _ = m.Evaluate("")
	test.Equate(t, m.Head(), 0)
}

func TestShowMemory(t *testing.T) {
	m, tw := newTestMachine(t, interpreter.Config{
		FromFile:   true,
		ShowMemory: true,
		WindowSize: 4,
		Margin:     1,
	}, "")

	_, err := m.Evaluate("+")
	test.ExpectedSuccess(t, err)

	expected := "\n" +
		"  -1     0     1     2 \n" +
		"+-----+-----+-----+-----+\n" +
		"|  0  |  1  |  0  |  0  |\n" +
		"+-----+-----+-----+-----+\n" +
		"         ^\n"

	if !tw.Compare(expected) {
		t.Errorf("unexpected tape display:\n%s", tw.String())
	}
}

func TestVerboseTrace(t *testing.T) {
	m, tw := newTestMachine(t, interpreter.Config{FromFile: true, Verbose: true}, "")

	_, err := m.Evaluate(">")
	test.ExpectedSuccess(t, err)
	test.Equate(t, tw.String(), "moving head right from cell 0 to 1\n")
}

func TestBadConfig(t *testing.T) {
	// margin larger than half the window size is rejected
	_, err := interpreter.NewMachine(interpreter.Config{
		WindowSize: 10,
		Margin:     6,
	}, strings.NewReader(""), &test.CompareWriter{})
	test.ExpectedFailure(t, err)
}
