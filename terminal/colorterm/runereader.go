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
	"bufio"
	"io"
)

// reading from the input stream happens in its own goroutine. this allows
// TermRead() to select between keypresses and other events.
type runeReader struct {
	ch chan readRune
}

type readRune struct {
	r   rune
	n   int
	err error
}

func initRuneReader(input io.Reader) runeReader {
	rr := runeReader{
		ch: make(chan readRune),
	}

	reader := bufio.NewReader(input)

	go func() {
		for {
			r, n, err := reader.ReadRune()
			rr.ch <- readRune{r, n, err}
			if err != nil {
				return
			}
		}
	}()

	return rr
}
