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

// Package program prepares source text for the machine. Preparation is in
// two parts: filtering the text down to the eight character instruction
// alphabet; and matching every loop bracket with its partner.
//
// Bracket matching happens once, before the first instruction executes. A
// program with unbalanced brackets is rejected at this stage and never runs.
// The resulting jump table can be read in both directions ([ to ] and ] to
// [) in constant time.
package program
