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

package terminal

// Style is used to hint to the terminal how a line should be displayed.
// Terminals with no display capability are free to ignore the hint.
type Style int

// List of terminal styles.
const (
	// information from the session itself, the step count report for example
	StyleFeedback Style = iota

	// help text
	StyleHelp

	// an error. terminals must display these even when silenced
	StyleError
)
