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

// Package tape implements the growable memory of the machine. The tape is a
// sequence of byte sized cells, extensible at both ends in fixed size
// chunks. Cells are addressed logically: address zero is wherever the head
// started and addresses to the left of it are negative.
//
// Growth is reactive. The machine extends the tape immediately after a head
// movement that would otherwise leave the head outside the allocated cells,
// and at no other time.
package tape
