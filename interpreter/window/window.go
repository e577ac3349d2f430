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

package window

import (
	"github.com/mholtby/tapedeck/curated"
	"github.com/mholtby/tapedeck/interpreter/tape"
)

// error patterns returned by NewWindow()
const (
	InvalidWindowSize = "window: size must be at least one cell (%d)"
	InvalidMargin     = "window: margin (%d) must be between 0 and half the window size (%d)"
)

// Cell is one displayable tape cell, as returned by the Render() function.
type Cell struct {
	Address int
	Value   uint8
}

// Window is the range of tape addresses currently on display. The window
// trails the head: whenever the head moves to within Margin cells of either
// edge the window scrolls one cell in that direction, matching the single
// cell step of the head itself.
//
// The window never affects program semantics. It is updated on every head
// movement whether or not anything is being displayed, so that switching the
// display on mid-session shows a sensibly positioned window.
type Window struct {
	Start  int
	Size   int
	Margin int
}

// NewWindow is the preferred method of initialisation for the Window type.
// The margin must satisfy 0 <= margin <= size/2, anything else would cause
// the window to chase its own scrolling.
func NewWindow(size int, margin int, head int) (*Window, error) {
	if size < 1 {
		return nil, curated.Errorf(InvalidWindowSize, size)
	}
	if margin < 0 || margin > size/2 {
		return nil, curated.Errorf(InvalidMargin, margin, size/2)
	}
	return &Window{
		Start:  head - margin,
		Size:   size,
		Margin: margin,
	}, nil
}

// MoveLeft notes that the head has moved one cell left, scrolling the window
// if the head is now within Margin cells of the left edge.
func (w *Window) MoveLeft(head int) {
	if head-w.Start < w.Margin {
		w.Start--
	}
}

// MoveRight notes that the head has moved one cell right, scrolling the
// window if the head is now within Margin cells of the right edge.
func (w *Window) MoveRight(head int) {
	if w.Start+w.Size-head <= w.Margin {
		w.Start++
	}
}

// Render returns the (address, value) pair for every cell in the window,
// along with the head's offset into that range. This is the only contract
// the window owes whatever is doing the actual drawing.
func (w Window) Render(t *tape.Tape, head int) ([]Cell, int) {
	cells := make([]Cell, w.Size)
	for i := 0; i < w.Size; i++ {
		cells[i] = Cell{
			Address: w.Start + i,
			Value:   t.Get(w.Start + i),
		}
	}
	return cells, head - w.Start
}
