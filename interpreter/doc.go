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

// Package interpreter is the machine at the centre of the project. A Machine
// executes programs written in the eight instruction tape language against a
// growable tape, one instruction per step.
//
//	>  move the head right      <  move the head left
//	+  increment the cell       -  decrement the cell
//	.  write the cell           ,  read a number into the cell
//	[  jump past ] if zero      ]  jump back to [ if not zero
//
// Cell arithmetic is modulo 256 in both directions. Source text is prepared
// by the program package before execution begins; a malformed program never
// executes at all.
//
// A Machine persists its tape and head position across Evaluate() calls.
// The command line program relies on this to offer an interactive session
// where each entered fragment continues from the state the previous one left
// behind.
//
// The machine can optionally display a scrolling window into the tape after
// every step, trace each instruction as it executes, and pause for
// confirmation between steps. None of these affect program semantics.
package interpreter
