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

package performance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mholtby/tapedeck/performance"
	"github.com/mholtby/tapedeck/test"
)

func writeProgram(t *testing.T, source string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "program.b")
	if err := os.WriteFile(fn, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestCheck(t *testing.T) {
	fn := writeProgram(t, "+++[-]")

	tw := &test.CompareWriter{}
	err := performance.Check(tw, false, false, fn, "50ms")
	test.ExpectedSuccess(t, err)

	if !strings.Contains(tw.String(), "steps per second") {
		t.Errorf("unexpected report (%s)", tw.String())
	}
}

func TestCheckNoInstructions(t *testing.T) {
	// a program of nothing but comments executes zero steps per pass and
	// can never be interrupted. Check() must refuse it rather than spin
	fn := writeProgram(t, "this program has no instructions")

	tw := &test.CompareWriter{}
	err := performance.Check(tw, false, false, fn, "50ms")
	test.ExpectedFailure(t, err)
}
