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

package program

import (
	"strings"

	"github.com/mholtby/tapedeck/curated"
)

// Alphabet is the set of characters that are instructions. Any other
// character in a source fragment is a comment.
const Alphabet = "<>+-.,[]"

// error patterns for malformed programs. use with curated.Is() / curated.Has()
const (
	UnmatchedLoopEnd   = "malformed program: unmatched ] at instruction %d"
	UnmatchedLoopStart = "malformed program: unmatched [ at instruction %d"
)

// Program is an immutable instruction stream along with the loop jump table
// for that stream. Create with the Process() function.
type Program struct {
	instructions string

	// the jump table is a bijection between the index of every [ and the
	// index of its matching ]. stored as two maps so that lookup is constant
	// time in both directions.
	forward  map[int]int
	backward map[int]int
}

// Process source text into a Program. Characters outside the instruction
// alphabet are discarded before the loop brackets are matched, so comments
// cannot unbalance a program.
//
// Returns a curated error (UnmatchedLoopEnd or UnmatchedLoopStart) if the
// brackets do not balance.
func Process(source string) (*Program, error) {
	p := &Program{
		forward:  make(map[int]int),
		backward: make(map[int]int),
	}

	s := strings.Builder{}
	for _, c := range source {
		if strings.ContainsRune(Alphabet, c) {
			s.WriteRune(c)
		}
	}
	p.instructions = s.String()

	// stack of indexes of [ instructions that have not yet been matched
	opens := make([]int, 0, 8)

	for i := 0; i < len(p.instructions); i++ {
		switch p.instructions[i] {
		case '[':
			opens = append(opens, i)
		case ']':
			if len(opens) == 0 {
				return nil, curated.Errorf(UnmatchedLoopEnd, i)
			}
			o := opens[len(opens)-1]
			opens = opens[:len(opens)-1]
			p.forward[o] = i
			p.backward[i] = o
		}
	}

	if len(opens) > 0 {
		return nil, curated.Errorf(UnmatchedLoopStart, opens[len(opens)-1])
	}

	return p, nil
}

// String returns the filtered instruction stream.
func (p Program) String() string {
	return p.instructions
}

// Len returns the number of instructions in the stream.
func (p Program) Len() int {
	return len(p.instructions)
}

// At returns the instruction at the given index.
func (p Program) At(idx int) byte {
	return p.instructions[idx]
}

// Forward returns the index of the ] matching the [ at the given index.
// Process() guarantees a match for every [ in the stream.
func (p Program) Forward(idx int) int {
	return p.forward[idx]
}

// Backward returns the index of the [ matching the ] at the given index.
func (p Program) Backward(idx int) int {
	return p.backward[idx]
}
