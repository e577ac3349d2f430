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

package easyterm_test

import (
	"os"
	"testing"

	"github.com/mholtby/tapedeck/terminal/colorterm/easyterm"
	"github.com/mholtby/tapedeck/test"
)

func TestInitialiseRequiresFiles(t *testing.T) {
	term := &easyterm.Terminal{}

	err := term.Initialise(nil, nil)
	test.ExpectedFailure(t, err)

	err = term.Initialise(os.Stdin, nil)
	test.ExpectedFailure(t, err)
}
