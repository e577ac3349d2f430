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

// Package test contains helper functions to remove common boilerplate from
// the project's unit tests.
//
// The Equate() function compares like-typed values for equality, with a
// couple of convenient exceptions for numeric literals.
//
// ExpectedFailure() and ExpectedSuccess() test a bool or error value for the
// named condition.
//
// CompareWriter is an implementation of io.Writer that can be used to capture
// what a function has written and to compare it with an expected string.
package test
