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

package colorterm

import (
	"github.com/mholtby/tapedeck/terminal"
	"github.com/mholtby/tapedeck/terminal/colorterm/easyterm/ansi"
)

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	ct.Terminal.Print("\r")

	switch style {
	case terminal.StyleFeedback:
		ct.Terminal.Print(ansi.DimPens["white"])
	case terminal.StyleHelp:
		ct.Terminal.Print(ansi.DimPens["white"])
	case terminal.StyleError:
		ct.Terminal.Print(ansi.Pens["red"])
		ct.Terminal.Print("* ")
	}

	ct.Terminal.Print(s)
	ct.Terminal.Print(ansi.NormalPen)
	ct.Terminal.Print("\n")
}
