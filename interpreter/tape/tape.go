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

package tape

import (
	"fmt"

	"github.com/mholtby/tapedeck/logger"
)

// DefaultChunkSize is the number of cells the tape grows by unless the
// machine has been configured with a different chunk size.
const DefaultChunkSize = 32

// Tape is the byte addressable memory of the machine. The tape grows in
// chunks, in either direction, as the head moves beyond the edge of the
// allocated cells.
//
// Addresses are logical and may be negative. The origin value translates a
// logical address to an index into the backing storage. Growth to the left
// adjusts the origin so that previously issued logical addresses continue to
// resolve to the same cell.
type Tape struct {
	cells  []uint8
	origin int
	chunk  int
}

// NewTape is the preferred method of initialisation for the Tape type. One
// chunk of cells is allocated immediately, meaning that logical addresses 0
// to chunk-1 are valid from the outset.
func NewTape(chunk int) *Tape {
	if chunk < 1 {
		chunk = DefaultChunkSize
	}
	return &Tape{
		cells: make([]uint8, chunk),
		chunk: chunk,
	}
}

func (t Tape) String() string {
	return fmt.Sprintf("%d cells (origin %d)", len(t.cells), t.origin)
}

// Get returns the value of the cell at the logical address. Addresses outside
// the backing storage return zero. This is for the benefit of the display
// window, which can legitimately overlap the edge of the allocated cells -
// the read does not cause the tape to grow.
func (t Tape) Get(address int) uint8 {
	p := address + t.origin
	if p < 0 || p >= len(t.cells) {
		return 0
	}
	return t.cells[p]
}

// Set the value of the cell at the logical address. The machine guarantees
// that the tape has grown to cover the head's address before any write, so
// unlike Get() there is no bounds handling.
func (t *Tape) Set(address int, value uint8) {
	t.cells[address+t.origin] = value
}

// InBounds returns true if the logical address resolves to an index inside
// the backing storage.
func (t Tape) InBounds(address int) bool {
	p := address + t.origin
	return p >= 0 && p < len(t.cells)
}

// ExtendLeft grows the tape by one chunk of zeroed cells at the low end. The
// origin shifts by the chunk size so existing logical addresses are
// unaffected.
func (t *Tape) ExtendLeft() {
	cells := make([]uint8, len(t.cells)+t.chunk)
	copy(cells[t.chunk:], t.cells)
	t.cells = cells
	t.origin += t.chunk
	logger.Logf("tape", "extended left to %d cells", len(t.cells))
}

// ExtendRight grows the tape by one chunk of zeroed cells at the high end.
func (t *Tape) ExtendRight() {
	t.cells = append(t.cells, make([]uint8, t.chunk)...)
	logger.Logf("tape", "extended right to %d cells", len(t.cells))
}

// Size returns the number of allocated cells. Always a multiple of the chunk
// size.
func (t Tape) Size() int {
	return len(t.cells)
}
