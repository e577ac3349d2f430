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

package tape_test

import (
	"testing"

	"github.com/mholtby/tapedeck/interpreter/tape"
	"github.com/mholtby/tapedeck/test"
)

func TestInitialAllocation(t *testing.T) {
	tp := tape.NewTape(32)
	test.Equate(t, tp.Size(), 32)

	// the first chunk covers addresses 0 to 31
	test.Equate(t, tp.InBounds(0), true)
	test.Equate(t, tp.InBounds(31), true)
	test.Equate(t, tp.InBounds(32), false)
	test.Equate(t, tp.InBounds(-1), false)
}

func TestExtendRight(t *testing.T) {
	tp := tape.NewTape(32)
	tp.Set(31, 99)

	tp.ExtendRight()
	test.Equate(t, tp.Size(), 64)
	test.Equate(t, tp.InBounds(32), true)

	// existing cells unaffected by growth
	test.Equate(t, tp.Get(31), 99)

	// new cells are zeroed
	test.Equate(t, tp.Get(32), 0)
}

func TestExtendLeft(t *testing.T) {
	tp := tape.NewTape(32)
	tp.Set(0, 1)
	tp.Set(10, 2)

	tp.ExtendLeft()
	test.Equate(t, tp.Size(), 64)

	// logical addresses issued before the growth still resolve to the same
	// cells
	test.Equate(t, tp.Get(0), 1)
	test.Equate(t, tp.Get(10), 2)

	// one chunk of negative addresses is now in bounds
	test.Equate(t, tp.InBounds(-1), true)
	test.Equate(t, tp.InBounds(-32), true)
	test.Equate(t, tp.InBounds(-33), false)
	test.Equate(t, tp.Get(-1), 0)

	// negative addresses are real cells
	tp.Set(-5, 123)
	test.Equate(t, tp.Get(-5), 123)
}

func TestChunkMultiple(t *testing.T) {
	tp := tape.NewTape(32)
	for i := 0; i < 5; i++ {
		if i%2 == 0 {
			tp.ExtendLeft()
		} else {
			tp.ExtendRight()
		}
		test.Equate(t, tp.Size()%32, 0)
	}
	test.Equate(t, tp.Size(), 192)
}

func TestOutOfBoundsRead(t *testing.T) {
	tp := tape.NewTape(32)

	// reads outside the backing storage yield zero and do not grow the tape
	test.Equate(t, tp.Get(-100), 0)
	test.Equate(t, tp.Get(100), 0)
	test.Equate(t, tp.Size(), 32)
}

func TestSmallChunk(t *testing.T) {
	tp := tape.NewTape(4)
	test.Equate(t, tp.Size(), 4)
	tp.ExtendRight()
	test.Equate(t, tp.Size(), 8)

	// a nonsense chunk size falls back to the default
	tp = tape.NewTape(0)
	test.Equate(t, tp.Size(), tape.DefaultChunkSize)
}
