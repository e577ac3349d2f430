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
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mholtby/tapedeck/curated"
	"github.com/mholtby/tapedeck/terminal"
	"github.com/mholtby/tapedeck/terminal/colorterm/easyterm"
	"github.com/mholtby/tapedeck/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(buffer []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	// ctrl-c and friends are read as plain keypresses while in raw mode. the
	// terminal is restored whatever happens during the editing loop.
	ct.RawMode()
	defer ct.CanonicalMode()

	inputLen := 0
	cursorPos := 0
	renderedLen := 0

	// liveHistory is a record of the input line as it was before the most
	// recent trip through the command history
	historyIdx := len(ct.commandHistory)
	liveHistory := make([]byte, 0)

	// the prompt is printed once. the edit cursor is stored immediately after
	// it so the input line can be redrawn in place.
	ct.Print("\r")
	ct.Print(prompt.String())
	ct.Print(ansi.CursorStore)

	// redraw the input line and place the cursor. previous renders may have
	// been longer so the difference is blanked with spaces.
	render := func() {
		ct.Print(ansi.CursorRestore)
		ct.Print(string(buffer[:inputLen]))
		if inputLen < renderedLen {
			ct.Print(strings.Repeat(" ", renderedLen-inputLen))
		}
		renderedLen = inputLen
		ct.Print(ansi.CursorRestore)
		ct.Print(ansi.CursorMove(cursorPos))
	}

	var intEvents chan os.Signal
	if events != nil {
		intEvents = events.IntEvents
	}

	for {
		var read readRune

		select {
		case read = <-ct.reader.ch:
			if read.err != nil {
				return inputLen, read.err
			}
		case <-intEvents:
			ct.Print("\r\n")
			return 0, curated.Errorf(terminal.UserInterrupt)
		}

		switch read.r {
		case easyterm.KeyInterrupt:
			ct.Print("\r\n")
			return 0, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEndOfFile:
			ct.Print("\r\n")
			return 0, curated.Errorf(terminal.UserAbort)

		case easyterm.KeyTab:
			// no completion in this terminal

		case easyterm.KeyCarriageReturn, easyterm.KeyNewline:
			ct.Print("\r\n")

			if inputLen > 0 {
				nh := make([]byte, inputLen)
				copy(nh, buffer[:inputLen])
				ct.commandHistory = append(ct.commandHistory, command{input: nh})
			}

			buffer[inputLen] = '\n'
			return inputLen + 1, nil

		case easyterm.KeyEsc:
			read = <-ct.reader.ch
			if read.err != nil {
				return inputLen, read.err
			}

			switch read.r {
			case easyterm.EscCursor:
				read = <-ct.reader.ch
				if read.err != nil {
					return inputLen, read.err
				}

				switch read.r {
				case easyterm.CursorUp:
					if historyIdx > 0 {
						if historyIdx == len(ct.commandHistory) {
							liveHistory = make([]byte, inputLen)
							copy(liveHistory, buffer[:inputLen])
						}
						historyIdx--
						inputLen = copy(buffer, ct.commandHistory[historyIdx].input)
						cursorPos = inputLen
						render()
					}

				case easyterm.CursorDown:
					if historyIdx < len(ct.commandHistory) {
						historyIdx++
						if historyIdx == len(ct.commandHistory) {
							inputLen = copy(buffer, liveHistory)
						} else {
							inputLen = copy(buffer, ct.commandHistory[historyIdx].input)
						}
						cursorPos = inputLen
						render()
					}

				case easyterm.CursorForward:
					if cursorPos < inputLen {
						cursorPos++
						ct.Print(ansi.CursorForwardOne)
					}

				case easyterm.CursorBackward:
					if cursorPos > 0 {
						cursorPos--
						ct.Print(ansi.CursorBackwardOne)
					}

				case easyterm.EscHome:
					cursorPos = 0
					render()

				case easyterm.EscEnd:
					cursorPos = inputLen
					render()

				case easyterm.EscDelete:
					// swallow the trailing tilde
					read = <-ct.reader.ch
					if read.err != nil {
						return inputLen, read.err
					}
					if cursorPos < inputLen {
						copy(buffer[cursorPos:], buffer[cursorPos+1:inputLen])
						inputLen--
						render()
					}
				}
			}

		case easyterm.KeyBackspace:
			if cursorPos > 0 {
				copy(buffer[cursorPos-1:], buffer[cursorPos:inputLen])
				inputLen--
				cursorPos--
				render()
			}

		default:
			if unicode.IsPrint(read.r) && inputLen+utf8.RuneLen(read.r) < len(buffer)-1 {
				copy(buffer[cursorPos+read.n:], buffer[cursorPos:inputLen])
				utf8.EncodeRune(buffer[cursorPos:], read.r)
				inputLen += read.n
				cursorPos += read.n
				render()
			}
		}
	}
}
