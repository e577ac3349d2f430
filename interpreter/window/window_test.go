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

package window_test

import (
	"testing"

	"github.com/mholtby/tapedeck/interpreter/tape"
	"github.com/mholtby/tapedeck/interpreter/window"
	"github.com/mholtby/tapedeck/test"
)

func TestMarginValidation(t *testing.T) {
	_, err := window.NewWindow(10, 2, 0)
	test.ExpectedSuccess(t, err)

	// margin of half the window size is the limit
	_, err = window.NewWindow(10, 5, 0)
	test.ExpectedSuccess(t, err)

	_, err = window.NewWindow(10, 6, 0)
	test.ExpectedFailure(t, err)

	_, err = window.NewWindow(10, -1, 0)
	test.ExpectedFailure(t, err)

	_, err = window.NewWindow(0, 0, 0)
	test.ExpectedFailure(t, err)
}

func TestInitialPosition(t *testing.T) {
	// window starts margin cells to the left of the head
	w, err := window.NewWindow(10, 2, 0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, w.Start, -2)
}

func TestScrollRight(t *testing.T) {
	w := &window.Window{Start: 0, Size: 10, Margin: 2}

	// head at address 8 is within the margin of the right edge (0 + 10 - 8
	// = 2 <= margin) so the window scrolls one cell
	w.MoveRight(8)
	test.Equate(t, w.Start, 1)

	// head well inside the window does not scroll it
	w.MoveRight(5)
	test.Equate(t, w.Start, 1)
}

func TestScrollLeft(t *testing.T) {
	w := &window.Window{Start: 0, Size: 10, Margin: 2}

	// head at address 1 is within the margin of the left edge
	w.MoveLeft(1)
	test.Equate(t, w.Start, -1)

	w.MoveLeft(5)
	test.Equate(t, w.Start, -1)
}

func TestScrollIsSingleStep(t *testing.T) {
	w := &window.Window{Start: 0, Size: 10, Margin: 2}

	// the window trails the head one cell per move, it never jumps
	for head := 8; head < 13; head++ {
		start := w.Start
		w.MoveRight(head)
		test.Equate(t, w.Start, start+1)
	}
}

func TestRender(t *testing.T) {
	tp := tape.NewTape(32)
	tp.Set(0, 10)
	tp.Set(3, 20)

	w := &window.Window{Start: -2, Size: 6, Margin: 2}
	cells, cursor := w.Render(tp, 0)

	test.Equate(t, len(cells), 6)
	test.Equate(t, cursor, 2)

	// addresses to the left of allocated storage display as zero
	test.Equate(t, cells[0].Address, -2)
	test.Equate(t, cells[0].Value, 0)

	test.Equate(t, cells[2].Address, 0)
	test.Equate(t, cells[2].Value, 10)
	test.Equate(t, cells[5].Address, 3)
	test.Equate(t, cells[5].Value, 20)
}
