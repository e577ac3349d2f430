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

// Package terminal defines the operations required by the interactive
// session front-end. Two implementations are provided in sub-packages:
// plainterm, an unadorned terminal that works with any reader and writer;
// and colorterm, a posix terminal with colour output, line editing and
// input history.
//
// The session loop in the main package talks only to the interfaces defined
// here and does not care which implementation it has been given.
package terminal
