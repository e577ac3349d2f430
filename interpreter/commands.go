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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mholtby/tapedeck/curated"
)

// the < instruction. moves the head left, extending the tape and scrolling
// the window as required.
func (m *Machine) moveLeft() {
	if m.config.Verbose {
		fmt.Fprintf(m.output, "moving head left from cell %d to %d\n", m.head, m.head-1)
	}
	m.head--
	m.window.MoveLeft(m.head)
	if !m.tape.InBounds(m.head) {
		m.tape.ExtendLeft()
	}
}

// the > instruction. moves the head right, extending the tape and scrolling
// the window as required.
func (m *Machine) moveRight() {
	if m.config.Verbose {
		fmt.Fprintf(m.output, "moving head right from cell %d to %d\n", m.head, m.head+1)
	}
	m.head++
	m.window.MoveRight(m.head)
	if !m.tape.InBounds(m.head) {
		m.tape.ExtendRight()
	}
}

// the + instruction. uint8 arithmetic gives us the modulo 256 wraparound for
// free, in both directions.
func (m *Machine) increase() {
	if m.config.Verbose {
		fmt.Fprintln(m.output, "incrementing the current cell")
	}
	m.tape.Set(m.head, m.tape.Get(m.head)+1)
}

// the - instruction.
func (m *Machine) decrease() {
	if m.config.Verbose {
		fmt.Fprintln(m.output, "decrementing the current cell")
	}
	m.tape.Set(m.head, m.tape.Get(m.head)-1)
}

// the . instruction. the cell is written as a character unless RawOutput is
// set. interactive sessions get a newline after every write, file driven
// programs control their own layout.
func (m *Machine) write() {
	if m.config.Verbose {
		fmt.Fprintln(m.output, "writing cell to output")
	}

	v := m.tape.Get(m.head)
	if m.config.RawOutput {
		fmt.Fprintf(m.output, "%d", v)
	} else {
		fmt.Fprintf(m.output, "%c", v)
	}
	if !m.config.FromFile {
		io.WriteString(m.output, "\n")
	}
}

// the , instruction. blocks for one line of input and parses it as an
// integer, storing the value modulo 256. an unparsable line is an
// InputFormat error - the machine never substitutes a default value.
func (m *Machine) read() error {
	if m.config.Verbose {
		fmt.Fprintln(m.output, "waiting for input...")
	}

	s, err := m.input.ReadString('\n')
	if err != nil && s == "" {
		return curated.Errorf("interpreter: %v", err)
	}

	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil {
		return curated.Errorf(InputFormat, s)
	}

	// the double modulo wraps negative input into the 0-255 range
	m.tape.Set(m.head, uint8(((v%256)+256)%256))

	return nil
}

// the [ instruction. a zero cell jumps the program counter to the matching
// ], skipping the loop body.
func (m *Machine) loopStart() {
	if m.tape.Get(m.head) == 0 {
		if m.config.Verbose {
			fmt.Fprintf(m.output, "jumping to instruction %d\n", m.prog.Forward(m.pc))
		}
		m.pc = m.prog.Forward(m.pc)
	} else if m.config.Verbose {
		fmt.Fprintln(m.output, "current cell is not 0. not jumping")
	}
}

// the ] instruction. a non-zero cell jumps the program counter back to the
// matching [, continuing the loop.
func (m *Machine) loopEnd() {
	if m.tape.Get(m.head) != 0 {
		if m.config.Verbose {
			fmt.Fprintf(m.output, "jumping to instruction %d\n", m.prog.Backward(m.pc))
		}
		m.pc = m.prog.Backward(m.pc)
	} else if m.config.Verbose {
		fmt.Fprintln(m.output, "current cell is 0. not jumping")
	}
}
