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
	"io"
	"strconv"
	"strings"
)

// showTape draws the window into the tape as a bordered box: a row of
// addresses, the cell values, and a marker under the head.
//
//	   30    31    32    33
//	+-----+-----+-----+-----+
//	|  0  | 104 |  33 |  0  |
//	+-----+-----+-----+-----+
//	         ^
func (m *Machine) showTape() {
	cells, cursor := m.window.Render(m.tape, m.head)

	s := strings.Builder{}
	border := strings.Repeat("+-----", len(cells)) + "+\n"

	s.WriteString("\n")
	for i, c := range cells {
		if i == 0 {
			s.WriteString("  ")
		} else {
			s.WriteString("   ")
		}
		s.WriteString(centre(strconv.Itoa(c.Address), 3))
	}
	s.WriteString("\n")

	s.WriteString(border)
	for _, c := range cells {
		s.WriteString("| ")
		s.WriteString(centre(strconv.Itoa(int(c.Value)), 3))
		s.WriteString(" ")
	}
	s.WriteString("|\n")
	s.WriteString(border)

	s.WriteString(strings.Repeat("      ", cursor))
	s.WriteString("   ^\n")

	io.WriteString(m.output, s.String())
}

// centre s in a field of the given width. excess padding goes on the right.
func centre(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := width - len(s)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
